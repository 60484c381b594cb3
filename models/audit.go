package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	AID          uint           `gorm:"primaryKey;column:a_id" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"userId"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null" json:"resourceType"`
	ResourceID   string         `gorm:"size:50" json:"resourceId"`
	OldData      datatypes.JSON `json:"oldData,omitempty"`
	NewData      datatypes.JSON `json:"newData,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ipAddress"`
	UserAgent    string         `gorm:"size:255" json:"userAgent"`
	CreatedAt    time.Time      `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
}
