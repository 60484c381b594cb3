package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/gigflow/gigflow-go/models"
	"github.com/gigflow/gigflow-go/repositories"
)

// LogAuditWithConsole records an audit entry in the background. Request data
// is extracted synchronously; the insert must not slow the request down.
var LogAuditWithConsole = func(c *gin.Context, repo repositories.AuditRepo, action, resourceType, resourceID string, oldData, newData interface{}) {
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(repo, userID, ip, ua, action, resourceType, resourceID, oldData, newData); err != nil {
			log.Printf("[audit] error: %v", err)
		}
	}()
}

var LogAudit = func(repo repositories.AuditRepo, userID uint, ip, ua, action, resourceType, resourceID string, before, after interface{}) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("[audit] marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("[audit] marshal newData error: %v", err)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      datatypes.JSON(oldData),
		NewData:      datatypes.JSON(newData),
		IPAddress:    ip,
		UserAgent:    ua,
	}

	return repo.CreateAuditLog(entry)
}
