package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gigflow/gigflow-go/dto"
	"github.com/gigflow/gigflow-go/models"
	"github.com/gigflow/gigflow-go/repositories"
	"github.com/gigflow/gigflow-go/utils"
	"github.com/gigflow/gigflow-go/websocket"
)

var (
	ErrBidNotFound   = errors.New("bid not found")
	ErrBidNotPending = errors.New("bid is no longer pending")
	ErrOwnGigBid     = errors.New("cannot bid on your own gig")
	ErrDuplicateBid  = errors.New("you have already bid on this gig")
	ErrInvalidBid    = errors.New("message and a positive price are required")
)

type BidService struct {
	repos    *repositories.Repos
	notifier Notifier
}

func NewBidService(repos *repositories.Repos, notifier Notifier) *BidService {
	return &BidService{repos: repos, notifier: notifier}
}

// SubmitBid validates and records a freelancer's bid against an open gig.
// Checks run in a fixed order so each failure mode is reported distinctly.
// The gig itself is untouched.
func (s *BidService) SubmitBid(freelancerID uint, input dto.CreateBidDTO) (models.Bid, error) {
	if strings.TrimSpace(input.Message) == "" || input.Price <= 0 {
		return models.Bid{}, ErrInvalidBid
	}

	gig, err := s.repos.Gig.GetGigByID(input.GigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bid{}, ErrGigNotFound
		}
		return models.Bid{}, err
	}
	if gig.Status != models.GigStatusOpen {
		return models.Bid{}, ErrGigNotOpen
	}
	if gig.OwnerID == freelancerID {
		return models.Bid{}, ErrOwnGigBid
	}

	exists, err := s.repos.Bid.HasBid(input.GigID, freelancerID)
	if err != nil {
		return models.Bid{}, err
	}
	if exists {
		return models.Bid{}, ErrDuplicateBid
	}

	bid := models.Bid{
		GigID:        input.GigID,
		FreelancerID: freelancerID,
		Message:      input.Message,
		Price:        input.Price,
		Status:       models.BidStatusPending,
	}
	if err := s.repos.Bid.CreateBid(&bid); err != nil {
		// The unique index backstops the existence check above.
		if errors.Is(err, repositories.ErrDuplicateBid) {
			return models.Bid{}, ErrDuplicateBid
		}
		return models.Bid{}, err
	}

	return s.repos.Bid.GetBidResolved(bid.BID)
}

// ListBidsForGig returns the bids on a gig, newest first. Gig owner only.
func (s *BidService) ListBidsForGig(gigID, requesterID uint) ([]models.Bid, error) {
	gig, err := s.repos.Gig.GetGigByID(gigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	if gig.OwnerID != requesterID {
		return nil, ErrNotGigOwner
	}

	return s.repos.Bid.ListBidsByGig(gigID)
}

// ListMyBids returns the freelancer's own bids with gig summaries, newest first.
func (s *BidService) ListMyBids(freelancerID uint) ([]models.Bid, error) {
	return s.repos.Bid.ListBidsByFreelancer(freelancerID)
}

// Hire promotes one pending bid to hired, closes its gig, rejects every other
// pending bid on that gig, and notifies the affected freelancers. The state
// change is a single transaction; notification delivery is best-effort and
// cannot undo it.
func (s *BidService) Hire(c *gin.Context, bidID, requesterID uint) (models.Bid, error) {
	bid, err := s.repos.Bid.GetBidByID(bidID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bid{}, ErrBidNotFound
		}
		return models.Bid{}, err
	}
	if bid.Status != models.BidStatusPending {
		return models.Bid{}, ErrBidNotPending
	}

	gig, err := s.repos.Gig.GetGigByID(bid.GigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bid{}, ErrGigNotFound
		}
		return models.Bid{}, err
	}
	if gig.OwnerID != requesterID {
		return models.Bid{}, ErrNotGigOwner
	}
	if gig.Status != models.GigStatusOpen {
		return models.Bid{}, ErrGigNotOpen
	}

	// A concurrent hire on the same gig loses here, not above: the
	// conditional updates inside the transaction are the mutual-exclusion
	// point.
	rejected, err := s.repos.Bid.ExecuteHire(gig.GID, bid.BID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrGigNotOpen):
			return models.Bid{}, ErrGigNotOpen
		case errors.Is(err, repositories.ErrBidNotPending):
			return models.Bid{}, ErrBidNotPending
		default:
			return models.Bid{}, err
		}
	}

	s.notifier.Publish(bid.FreelancerID, websocket.Event{
		Event:    websocket.EventHired,
		Message:  fmt.Sprintf("Congratulations! You have been hired for \"%s\"!", gig.Title),
		Type:     "hired",
		GigTitle: gig.Title,
		GigID:    gig.GID,
		BidID:    bid.BID,
	})
	for _, loser := range rejected {
		s.notifier.Publish(loser.FreelancerID, websocket.Event{
			Event:    websocket.EventBidRejected,
			Message:  fmt.Sprintf("Unfortunately, you were not selected for \"%s\". Better luck next time!", gig.Title),
			Type:     "rejected",
			GigTitle: gig.Title,
			GigID:    gig.GID,
			BidID:    loser.BID,
		})
	}

	utils.LogAuditWithConsole(c, s.repos.Audit, "hire", "bid", fmt.Sprintf("b_id=%d", bid.BID), bid, nil)

	return s.repos.Bid.GetBidResolved(bid.BID)
}
