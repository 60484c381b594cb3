package services

import (
	"github.com/gigflow/gigflow-go/repositories"
	"github.com/gigflow/gigflow-go/websocket"
)

// Notifier is the single capability the services need from the real-time
// layer. The hub implements it; tests substitute it.
type Notifier interface {
	Publish(userID uint, event websocket.Event)
}

type Services struct {
	User  *UserService
	Gig   *GigService
	Bid   *BidService
	Audit *AuditService
}

func New(repos *repositories.Repos, notifier Notifier) *Services {
	return &Services{
		User:  NewUserService(repos),
		Gig:   NewGigService(repos),
		Bid:   NewBidService(repos, notifier),
		Audit: NewAuditService(repos),
	}
}
