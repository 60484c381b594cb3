package dto

type CreateGigDTO struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=1000"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

type UpdateGigDTO struct {
	Title       *string  `json:"title" binding:"omitempty,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Budget      *float64 `json:"budget" binding:"omitempty,gt=0"`
}

type GigQueryDTO struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
