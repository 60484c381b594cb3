package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigflow/gigflow-go/dto"
	"github.com/gigflow/gigflow-go/response"
	"github.com/gigflow/gigflow-go/services"
	"github.com/gigflow/gigflow-go/utils"
)

type BidHandler struct {
	service *services.BidService
}

func NewBidHandler(service *services.BidService) *BidHandler {
	return &BidHandler{service: service}
}

// CreateBid godoc
// @Summary Submit a bid on an open gig
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.CreateBidDTO true "Bid fields"
// @Success 201 {object} response.BidResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input, own gig, duplicate, or gig not open"
// @Failure 404 {object} response.ErrorResponse "Gig not found"
// @Router /api/bids [post]
func (h *BidHandler) CreateBid(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateBidDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "All fields are required and price must be greater than 0"})
		return
	}

	bid, err := h.service.SubmitBid(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBid):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrGigNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Gig not found"})
		case errors.Is(err, services.ErrGigNotOpen):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Cannot bid on a gig that is already assigned"})
		case errors.Is(err, services.ErrOwnGigBid):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Cannot bid on your own gig"})
		case errors.Is(err, services.ErrDuplicateBid):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "You have already bid on this gig"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while creating bid"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.BidResponse{Message: "Bid created successfully", Bid: bid})
}

// GetBidsByGig godoc
// @Summary List bids for a gig (owner only), newest first
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param gigId path int true "Gig ID"
// @Success 200 {object} response.BidListResponse
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Gig not found"
// @Router /api/bids/{gigId} [get]
func (h *BidHandler) GetBidsByGig(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	gigID, err := utils.ParseIDParam(c, "gigId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid gig ID"})
		return
	}

	bids, err := h.service.ListBidsForGig(gigID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGigNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Gig not found"})
		case errors.Is(err, services.ErrNotGigOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not authorized to view bids for this gig"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while fetching bids"})
		}
		return
	}

	c.JSON(http.StatusOK, response.BidListResponse{Bids: bids})
}

// GetMyBids godoc
// @Summary List the requester's own bids, newest first
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.BidListResponse
// @Router /api/bids/my-bids [get]
func (h *BidHandler) GetMyBids(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	bids, err := h.service.ListMyBids(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while fetching your bids"})
		return
	}

	c.JSON(http.StatusOK, response.BidListResponse{Bids: bids})
}

// HireBid godoc
// @Summary Hire the freelancer behind a pending bid
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param bidId path int true "Bid ID"
// @Success 200 {object} response.BidResponse
// @Failure 400 {object} response.ErrorResponse "Bid not pending or gig already assigned"
// @Failure 403 {object} response.ErrorResponse "Not the gig owner"
// @Failure 404 {object} response.ErrorResponse "Bid or gig not found"
// @Router /api/bids/{bidId}/hire [patch]
func (h *BidHandler) HireBid(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	bidID, err := utils.ParseIDParam(c, "bidId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid bid ID"})
		return
	}

	bid, err := h.service.Hire(c, bidID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBidNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Bid not found"})
		case errors.Is(err, services.ErrGigNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Associated gig not found"})
		case errors.Is(err, services.ErrBidNotPending):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "This bid is no longer pending"})
		case errors.Is(err, services.ErrNotGigOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not authorized to hire for this gig"})
		case errors.Is(err, services.ErrGigNotOpen):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "This gig is already assigned"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while hiring freelancer"})
		}
		return
	}

	c.JSON(http.StatusOK, response.BidResponse{Message: "Freelancer hired successfully", Bid: bid})
}
