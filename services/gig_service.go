package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gigflow/gigflow-go/dto"
	"github.com/gigflow/gigflow-go/models"
	"github.com/gigflow/gigflow-go/repositories"
	"github.com/gigflow/gigflow-go/utils"
)

var (
	ErrGigNotFound = errors.New("gig not found")
	ErrNotGigOwner = errors.New("not authorized for this gig")
	ErrGigNotOpen  = errors.New("gig is already assigned")
	ErrGigHasBids  = errors.New("gig already has bids")
)

type GigService struct {
	repos *repositories.Repos
}

func NewGigService(repos *repositories.Repos) *GigService {
	return &GigService{repos: repos}
}

func (s *GigService) ListOpenGigs(query dto.GigQueryDTO) ([]models.Gig, int64, error) {
	offset := (query.Page - 1) * query.Limit
	return s.repos.Gig.ListOpenGigs(query.Search, query.Limit, offset)
}

func (s *GigService) ListGigsByOwner(ownerID uint, query dto.GigQueryDTO) ([]models.Gig, int64, error) {
	offset := (query.Page - 1) * query.Limit
	return s.repos.Gig.ListGigsByOwner(ownerID, query.Limit, offset)
}

func (s *GigService) GetGig(id uint) (models.Gig, error) {
	gig, err := s.repos.Gig.GetGigByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Gig{}, ErrGigNotFound
		}
		return models.Gig{}, err
	}
	return gig, nil
}

func (s *GigService) CreateGig(c *gin.Context, ownerID uint, input dto.CreateGigDTO) (models.Gig, error) {
	gig := models.Gig{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		OwnerID:     ownerID,
		Status:      models.GigStatusOpen,
	}
	if err := s.repos.Gig.CreateGig(&gig); err != nil {
		return models.Gig{}, err
	}

	utils.LogAuditWithConsole(c, s.repos.Audit, "create", "gig", fmt.Sprintf("g_id=%d", gig.GID), nil, gig)

	return s.GetGig(gig.GID)
}

// UpdateGig mutates title/description/budget. Owner only, and only while the
// gig is still open.
func (s *GigService) UpdateGig(c *gin.Context, id, requesterID uint, input dto.UpdateGigDTO) (models.Gig, error) {
	gig, err := s.GetGig(id)
	if err != nil {
		return models.Gig{}, err
	}
	if gig.OwnerID != requesterID {
		return models.Gig{}, ErrNotGigOwner
	}
	if gig.Status != models.GigStatusOpen {
		return models.Gig{}, ErrGigNotOpen
	}

	oldGig := gig

	if input.Title != nil {
		gig.Title = *input.Title
	}
	if input.Description != nil {
		gig.Description = *input.Description
	}
	if input.Budget != nil {
		gig.Budget = *input.Budget
	}

	if err := s.repos.Gig.UpdateGig(&gig); err != nil {
		return models.Gig{}, err
	}

	utils.LogAuditWithConsole(c, s.repos.Audit, "update", "gig", fmt.Sprintf("g_id=%d", gig.GID), oldGig, gig)

	return gig, nil
}

// DeleteGig removes an open gig. Once any bid exists the gig is pinned: a bid
// must never outlive its gig unresolved, so deletion is refused instead of
// cascading.
func (s *GigService) DeleteGig(c *gin.Context, id, requesterID uint) error {
	gig, err := s.GetGig(id)
	if err != nil {
		return err
	}
	if gig.OwnerID != requesterID {
		return ErrNotGigOwner
	}
	if gig.Status != models.GigStatusOpen {
		return ErrGigNotOpen
	}

	count, err := s.repos.Bid.CountBidsForGig(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGigHasBids
	}

	if err := s.repos.Gig.DeleteGig(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, s.repos.Audit, "delete", "gig", fmt.Sprintf("g_id=%d", gig.GID), gig, nil)

	return nil
}
