package models

import "time"

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusHired    BidStatus = "hired"
	BidStatusRejected BidStatus = "rejected"
)

// Bid carries a composite unique index so the store itself refuses a second
// bid from the same freelancer on the same gig.
type Bid struct {
	BID          uint      `gorm:"primaryKey;column:b_id" json:"id"`
	GigID        uint      `gorm:"not null;uniqueIndex:idx_gig_freelancer" json:"gigId"`
	Gig          *Gig      `gorm:"foreignKey:GigID;references:GID" json:"gig,omitempty"`
	FreelancerID uint      `gorm:"not null;uniqueIndex:idx_gig_freelancer" json:"freelancerId"`
	Freelancer   *User     `gorm:"foreignKey:FreelancerID;references:UID" json:"freelancer,omitempty"`
	Message      string    `gorm:"size:500;not null" json:"message"`
	Price        float64   `gorm:"not null" json:"price"`
	Status       BidStatus `gorm:"type:bid_status;default:'pending';not null" json:"status"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"-"`
}
