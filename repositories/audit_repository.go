package repositories

import (
	"github.com/gigflow/gigflow-go/db"
	"github.com/gigflow/gigflow-go/models"
)

type AuditRepo interface {
	CreateAuditLog(entry *models.AuditLog) error
	ListAuditLogsByUser(userID uint, limit int) ([]models.AuditLog, error)
}

type DBAuditRepo struct{}

func (r *DBAuditRepo) CreateAuditLog(entry *models.AuditLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBAuditRepo) ListAuditLogsByUser(userID uint, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.DB.Where("user_id = ?", userID).Order("create_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
