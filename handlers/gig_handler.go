package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigflow/gigflow-go/dto"
	"github.com/gigflow/gigflow-go/response"
	"github.com/gigflow/gigflow-go/services"
	"github.com/gigflow/gigflow-go/utils"
)

type GigHandler struct {
	service *services.GigService
}

func NewGigHandler(service *services.GigService) *GigHandler {
	return &GigHandler{service: service}
}

// GetGigs godoc
// @Summary List open gigs
// @Tags gigs
// @Produce json
// @Param search query string false "Match against title and description"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.GigListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/gigs [get]
func (h *GigHandler) GetGigs(c *gin.Context) {
	var query dto.GigQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	gigs, total, err := h.service.ListOpenGigs(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while fetching gigs"})
		return
	}

	c.JSON(http.StatusOK, response.GigListResponse{
		Gigs:        gigs,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(query.Limit))),
		CurrentPage: query.Page,
	})
}

// GetMyGigs godoc
// @Summary List the requester's own gigs
// @Tags gigs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.GigListResponse
// @Router /api/gigs/my-gigs [get]
func (h *GigHandler) GetMyGigs(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var query dto.GigQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	gigs, total, err := h.service.ListGigsByOwner(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while fetching your gigs"})
		return
	}

	c.JSON(http.StatusOK, response.GigListResponse{
		Gigs:        gigs,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(query.Limit))),
		CurrentPage: query.Page,
	})
}

// GetGigByID godoc
// @Summary Fetch a single gig
// @Tags gigs
// @Produce json
// @Param id path int true "Gig ID"
// @Success 200 {object} response.GigResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/gigs/{id} [get]
func (h *GigHandler) GetGigByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid gig ID"})
		return
	}

	gig, err := h.service.GetGig(id)
	if err != nil {
		if errors.Is(err, services.ErrGigNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Gig not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while fetching gig"})
		}
		return
	}

	c.JSON(http.StatusOK, response.GigResponse{Message: "OK", Gig: gig})
}

// CreateGig godoc
// @Summary Post a new gig
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.CreateGigDTO true "Gig fields"
// @Success 201 {object} response.GigResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/gigs [post]
func (h *GigHandler) CreateGig(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateGigDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "All fields are required and budget must be greater than 0"})
		return
	}

	gig, err := h.service.CreateGig(c, userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while creating gig"})
		return
	}

	c.JSON(http.StatusCreated, response.GigResponse{Message: "Gig created successfully", Gig: gig})
}

// UpdateGig godoc
// @Summary Update an open gig
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gig ID"
// @Param input body dto.UpdateGigDTO true "Fields to update"
// @Success 200 {object} response.GigResponse
// @Failure 400 {object} response.ErrorResponse "Gig already assigned"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/gigs/{id} [put]
func (h *GigHandler) UpdateGig(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid gig ID"})
		return
	}

	var input dto.UpdateGigDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	gig, err := h.service.UpdateGig(c, id, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGigNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Gig not found"})
		case errors.Is(err, services.ErrNotGigOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not authorized to update this gig"})
		case errors.Is(err, services.ErrGigNotOpen):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Cannot update a gig that is already assigned"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while updating gig"})
		}
		return
	}

	c.JSON(http.StatusOK, response.GigResponse{Message: "Gig updated successfully", Gig: gig})
}

// DeleteGig godoc
// @Summary Delete an open gig without bids
// @Tags gigs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gig ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Gig assigned or has bids"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/gigs/{id} [delete]
func (h *GigHandler) DeleteGig(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid gig ID"})
		return
	}

	if err := h.service.DeleteGig(c, id, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrGigNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Gig not found"})
		case errors.Is(err, services.ErrNotGigOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not authorized to delete this gig"})
		case errors.Is(err, services.ErrGigNotOpen):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Cannot delete a gig that is already assigned"})
		case errors.Is(err, services.ErrGigHasBids):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Cannot delete a gig that already has bids"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while deleting gig"})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Gig deleted successfully"})
}
