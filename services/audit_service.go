package services

import (
	"github.com/gigflow/gigflow-go/models"
	"github.com/gigflow/gigflow-go/repositories"
)

const auditQueryLimit = 100

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) GetLogsForUser(userID uint) ([]models.AuditLog, error) {
	return s.repos.Audit.ListAuditLogsByUser(userID, auditQueryLimit)
}
