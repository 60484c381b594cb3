package repositories

import (
	"errors"

	"github.com/gigflow/gigflow-go/db"
	"github.com/gigflow/gigflow-go/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateBid surfaces the (gig_id, freelancer_id) unique index so a
	// double submission loses even when both requests passed the existence
	// check.
	ErrDuplicateBid = errors.New("duplicate bid")

	// ErrGigNotOpen and ErrBidNotPending report a conditional status update
	// that matched zero rows.
	ErrGigNotOpen    = errors.New("gig is not open")
	ErrBidNotPending = errors.New("bid is not pending")
)

const uniqueViolationCode = "23505"

type BidRepo interface {
	CreateBid(bid *models.Bid) error
	GetBidByID(id uint) (models.Bid, error)
	GetBidResolved(id uint) (models.Bid, error)
	ListBidsByGig(gigID uint) ([]models.Bid, error)
	ListBidsByFreelancer(freelancerID uint) ([]models.Bid, error)
	HasBid(gigID, freelancerID uint) (bool, error)
	CountBidsForGig(gigID uint) (int64, error)
	ExecuteHire(gigID, bidID uint) ([]models.Bid, error)
}

type DBBidRepo struct{}

func (r *DBBidRepo) CreateBid(bid *models.Bid) error {
	err := db.DB.Create(bid).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicateBid
	}
	return err
}

func (r *DBBidRepo) GetBidByID(id uint) (models.Bid, error) {
	var bid models.Bid
	err := db.DB.First(&bid, id).Error
	return bid, err
}

func (r *DBBidRepo) GetBidResolved(id uint) (models.Bid, error) {
	var bid models.Bid
	err := db.DB.Preload("Gig").Preload("Freelancer").First(&bid, id).Error
	return bid, err
}

func (r *DBBidRepo) ListBidsByGig(gigID uint) ([]models.Bid, error) {
	var bids []models.Bid
	err := db.DB.Where("gig_id = ?", gigID).Preload("Freelancer").Order("create_at desc").Find(&bids).Error
	return bids, err
}

func (r *DBBidRepo) ListBidsByFreelancer(freelancerID uint) ([]models.Bid, error) {
	var bids []models.Bid
	err := db.DB.Where("freelancer_id = ?", freelancerID).Preload("Gig").Order("create_at desc").Find(&bids).Error
	return bids, err
}

func (r *DBBidRepo) HasBid(gigID, freelancerID uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Bid{}).
		Where("gig_id = ? AND freelancer_id = ?", gigID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBBidRepo) CountBidsForGig(gigID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Bid{}).Where("gig_id = ?", gigID).Count(&count).Error
	return count, err
}

// ExecuteHire performs the hire state change as one transaction: the gig moves
// open→assigned, the winning bid pending→hired, and every other pending bid on
// the gig pending→rejected. Both single-row transitions are conditional
// updates; zero affected rows means another request got there first and the
// whole transaction rolls back. Returns the bids that were rejected.
func (r *DBBidRepo) ExecuteHire(gigID, bidID uint) ([]models.Bid, error) {
	var rejected []models.Bid

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Gig{}).
			Where("g_id = ? AND status = ?", gigID, models.GigStatusOpen).
			Update("status", models.GigStatusAssigned)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGigNotOpen
		}

		res = tx.Model(&models.Bid{}).
			Where("b_id = ? AND status = ?", bidID, models.BidStatusPending).
			Update("status", models.BidStatusHired)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBidNotPending
		}

		if err := tx.Where("gig_id = ? AND b_id <> ? AND status = ?", gigID, bidID, models.BidStatusPending).
			Find(&rejected).Error; err != nil {
			return err
		}

		if len(rejected) > 0 {
			if err := tx.Model(&models.Bid{}).
				Where("gig_id = ? AND b_id <> ? AND status = ?", gigID, bidID, models.BidStatusPending).
				Update("status", models.BidStatusRejected).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range rejected {
		rejected[i].Status = models.BidStatusRejected
	}
	return rejected, nil
}
