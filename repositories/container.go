package repositories

type Repos struct {
	User  UserRepo
	Gig   GigRepo
	Bid   BidRepo
	Audit AuditRepo
}

func New() *Repos {
	return &Repos{
		User:  &DBUserRepo{},
		Gig:   &DBGigRepo{},
		Bid:   &DBBidRepo{},
		Audit: &DBAuditRepo{},
	}
}
