package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// db model, freelancer columns populated by join
type Bid struct {
	Id              uuid.UUID       `json:"id" db:"id"`
	GigId           uuid.UUID       `json:"gigId" db:"gig_id"`
	FreelancerId    uuid.UUID       `json:"freelancerId" db:"freelancer_id"`
	FreelancerName  string          `json:"freelancerName" db:"freelancer_name"`
	FreelancerEmail string          `json:"freelancerEmail" db:"freelancer_email"`
	Message         string          `json:"message" db:"message"`
	Price           decimal.Decimal `json:"price" db:"price"`
	Status          string          `json:"status" db:"status"`
	CreatedAt       string          `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateBidInput struct {
	GigId        string          // given
	FreelancerId string          // given
	Message      string          // given
	Price        decimal.Decimal // given
	// Status should be set: "pending"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type BidOutputModel struct {
	Id         string          `json:"id"`
	GigId      string          `json:"gigId"`
	Message    string          `json:"message"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	Freelancer UserOutputModel `json:"freelancer"`
	CreatedAt  string          `json:"createdAt"`
}
