package common

// Gig statuses
const (
	GigOpen     = "open"
	GigAssigned = "assigned"
)

// Bid statuses
const (
	BidPending  = "pending"
	BidHired    = "hired"
	BidRejected = "rejected"
)
