package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// db model, owner and hired freelancer columns populated by joins
type Gig struct {
	Id          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Budget      decimal.Decimal `json:"budget" db:"budget"`
	Status      string          `json:"status" db:"status"`
	OwnerId     uuid.UUID       `json:"ownerId" db:"owner_id"`
	OwnerName   string          `json:"ownerName" db:"owner_name"`
	OwnerEmail  string          `json:"ownerEmail" db:"owner_email"`
	HiredBid    *HiredBid       `json:"hiredBid"`
	CreatedAt   string          `json:"createdAt" db:"created_at"`
}

// populated from the bid chosen for an assigned gig; nil while the gig is open
type HiredBid struct {
	Id              uuid.UUID
	Message         string
	Price           decimal.Decimal
	FreelancerId    uuid.UUID
	FreelancerName  string
	FreelancerEmail string
}

// service + repo input model
type CreateGigInput struct {
	Title       string          // given
	Description string          // given
	Budget      decimal.Decimal // given
	OwnerId     string          // given
	// Status should be set: "open"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type GigOutputModel struct {
	Id          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Budget      decimal.Decimal      `json:"budget"`
	Status      string               `json:"status"`
	Owner       UserOutputModel      `json:"owner"`
	HiredBid    *HiredBidOutputModel `json:"hiredBid,omitempty"`
	CreatedAt   string               `json:"createdAt"`
}

type HiredBidOutputModel struct {
	Id         string          `json:"id"`
	Message    string          `json:"message"`
	Price      decimal.Decimal `json:"price"`
	Freelancer UserOutputModel `json:"freelancer"`
}
