package service

import (
	"context"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/security"
)

type GigService struct {
	gigRepo repo.Gig
}

func NewGigService(repos *repo.Repositories) *GigService {
	return &GigService{
		gigRepo: repos.Gig,
	}
}

func (s *GigService) CreateGig(ctx context.Context, input *entity.CreateGigInput, actor *security.Identity) (*entity.GigOutputModel, error) {
	if input.Title == "" || input.Description == "" || !input.Budget.IsPositive() {
		return nil, ErrInvalidGigInput
	}

	input.OwnerId = actor.UserId.String()
	id, err := s.gigRepo.CreateGig(ctx, input)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetGigs(ctx context.Context, searchTerm string) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetGigs(ctx, searchTerm)
	if err != nil {
		return nil, err
	}

	return mapGigs(gigs), nil
}
