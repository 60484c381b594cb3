package dto

type CreateBidDTO struct {
	GigID   uint    `json:"gigId" binding:"required"`
	Message string  `json:"message" binding:"required,max=500"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}
