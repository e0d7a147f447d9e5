package service

import (
	"context"
	"errors"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"
	"gig-marketplace-api/internal/security"
)

type BidService struct {
	bidRepo repo.Bid
	gigRepo repo.Gig
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{
		bidRepo: repos.Bid,
		gigRepo: repos.Gig,
	}
}

func (s *BidService) CreateBid(ctx context.Context, input *entity.CreateBidInput, actor *security.Identity) (*entity.BidOutputModel, error) {
	if input.Message == "" || !input.Price.IsPositive() {
		return nil, ErrInvalidBidInput
	}

	input.FreelancerId = actor.UserId.String()
	id, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrGigNotFound):
			return nil, ErrGigNotFound
		case errors.Is(err, repo_errors.ErrGigNotOpen):
			return nil, ErrGigNotOpen
		}

		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

// Bids of a gig are visible to its owner only.
func (s *BidService) GetGigBids(ctx context.Context, gigId string, actor *security.Identity) ([]entity.BidOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.OwnerId != actor.UserId {
		return nil, ErrNotGigOwner
	}

	bids, err := s.bidRepo.GetGigBids(ctx, gigId)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}

// HireBid runs the hiring transaction and maps its sentinels onto the tagged
// error taxonomy. The authorization and state checks live inside the
// transaction in the repo, not here.
func (s *BidService) HireBid(ctx context.Context, bidId string, actor *security.Identity) (*entity.BidOutputModel, error) {
	err := s.bidRepo.HireBid(ctx, bidId, actor.UserId.String())
	if err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrBidNotFound
		case errors.Is(err, repo_errors.ErrGigNotFound):
			return nil, ErrGigNotFound
		case errors.Is(err, repo_errors.ErrNotGigOwner):
			return nil, ErrNotGigOwner
		case errors.Is(err, repo_errors.ErrGigAlreadyAssigned):
			return nil, ErrGigAlreadyAssigned
		}

		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}
