package response

import "github.com/gigflow/gigflow-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type GigResponse struct {
	Message string     `json:"message"`
	Gig     models.Gig `json:"gig"`
}

type GigListResponse struct {
	Gigs        []models.Gig `json:"gigs"`
	Total       int64        `json:"total"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

type BidResponse struct {
	Message string     `json:"message"`
	Bid     models.Bid `json:"bid"`
}

type BidListResponse struct {
	Bids []models.Bid `json:"bids"`
}
