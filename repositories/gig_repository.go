package repositories

import (
	"github.com/gigflow/gigflow-go/db"
	"github.com/gigflow/gigflow-go/models"
)

type GigRepo interface {
	CreateGig(gig *models.Gig) error
	GetGigByID(id uint) (models.Gig, error)
	ListOpenGigs(search string, limit, offset int) ([]models.Gig, int64, error)
	ListGigsByOwner(ownerID uint, limit, offset int) ([]models.Gig, int64, error)
	UpdateGig(gig *models.Gig) error
	DeleteGig(id uint) error
}

type DBGigRepo struct{}

func (r *DBGigRepo) CreateGig(gig *models.Gig) error {
	return db.DB.Create(gig).Error
}

func (r *DBGigRepo) GetGigByID(id uint) (models.Gig, error) {
	var gig models.Gig
	err := db.DB.Preload("Owner").First(&gig, id).Error
	return gig, err
}

func (r *DBGigRepo) ListOpenGigs(search string, limit, offset int) ([]models.Gig, int64, error) {
	var gigs []models.Gig
	var total int64

	q := db.DB.Model(&models.Gig{}).Where("status = ?", models.GigStatusOpen)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Owner").Order("create_at desc").Limit(limit).Offset(offset).Find(&gigs).Error
	return gigs, total, err
}

func (r *DBGigRepo) ListGigsByOwner(ownerID uint, limit, offset int) ([]models.Gig, int64, error) {
	var gigs []models.Gig
	var total int64

	q := db.DB.Model(&models.Gig{}).Where("owner_id = ?", ownerID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Owner").Order("create_at desc").Limit(limit).Offset(offset).Find(&gigs).Error
	return gigs, total, err
}

func (r *DBGigRepo) UpdateGig(gig *models.Gig) error {
	return db.DB.Save(gig).Error
}

func (r *DBGigRepo) DeleteGig(id uint) error {
	return db.DB.Delete(&models.Gig{}, id).Error
}
