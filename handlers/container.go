package handlers

import "github.com/gigflow/gigflow-go/services"

type Handlers struct {
	Auth  *AuthHandler
	Gig   *GigHandler
	Bid   *BidHandler
	Audit *AuditHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:  NewAuthHandler(svc.User),
		Gig:   NewGigHandler(svc.Gig),
		Bid:   NewBidHandler(svc.Bid),
		Audit: NewAuditHandler(svc.Audit),
	}
}
