package models

import "time"

type GigStatus string

const (
	GigStatusOpen     GigStatus = "open"
	GigStatusAssigned GigStatus = "assigned"
)

type Gig struct {
	GID         uint      `gorm:"primaryKey;column:g_id" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	OwnerID     uint      `gorm:"not null;index" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID;references:UID" json:"owner,omitempty"`
	Status      GigStatus `gorm:"type:gig_status;default:'open';not null" json:"status"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"-"`
}
