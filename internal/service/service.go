package service

import (
	"context"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/security"
	"time"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Auth interface {
	Register(ctx context.Context, name, email, password string) (*entity.UserOutputModel, string, time.Time, error)
	Login(ctx context.Context, email, password string) (*entity.UserOutputModel, string, time.Time, error)
	GetUserById(ctx context.Context, id string) (*entity.UserOutputModel, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput, actor *security.Identity) (*entity.GigOutputModel, error)
	GetGigs(ctx context.Context, searchTerm string) ([]entity.GigOutputModel, error)
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput, actor *security.Identity) (*entity.BidOutputModel, error)
	GetGigBids(ctx context.Context, gigId string, actor *security.Identity) ([]entity.BidOutputModel, error)
	HireBid(ctx context.Context, bidId string, actor *security.Identity) (*entity.BidOutputModel, error)
}

type Services struct {
	Diagnostics Diagnostics
	Auth        Auth
	Gig         Gig
	Bid         Bid
}

func NewServices(repos *repo.Repositories, tokens *security.TokenProvider) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Auth:        NewAuthService(repos, tokens),
		Gig:         NewGigService(repos),
		Bid:         NewBidService(repos),
	}
}
