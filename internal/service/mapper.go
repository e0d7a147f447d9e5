package service

import (
	"gig-marketplace-api/internal/entity"
)

func mapUser(u *entity.User) *entity.UserOutputModel {
	return &entity.UserOutputModel{
		Id:    u.Id.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func mapGig(g *entity.Gig) *entity.GigOutputModel {
	out := &entity.GigOutputModel{
		Id:          g.Id.String(),
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		Status:      g.Status,
		Owner: entity.UserOutputModel{
			Id:    g.OwnerId.String(),
			Name:  g.OwnerName,
			Email: g.OwnerEmail,
		},
		CreatedAt: g.CreatedAt,
	}

	if g.HiredBid != nil {
		out.HiredBid = &entity.HiredBidOutputModel{
			Id:      g.HiredBid.Id.String(),
			Message: g.HiredBid.Message,
			Price:   g.HiredBid.Price,
			Freelancer: entity.UserOutputModel{
				Id:    g.HiredBid.FreelancerId.String(),
				Name:  g.HiredBid.FreelancerName,
				Email: g.HiredBid.FreelancerEmail,
			},
		}
	}

	return out
}

func mapGigs(gigs []entity.Gig) []entity.GigOutputModel {
	s := make([]entity.GigOutputModel, 0)
	for _, gig := range gigs {
		s = append(s, *mapGig(&gig))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:      b.Id.String(),
		GigId:   b.GigId.String(),
		Message: b.Message,
		Price:   b.Price,
		Status:  b.Status,
		Freelancer: entity.UserOutputModel{
			Id:    b.FreelancerId.String(),
			Name:  b.FreelancerName,
			Email: b.FreelancerEmail,
		},
		CreatedAt: b.CreatedAt,
	}
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		s = append(s, *mapBid(&bid))
	}

	return s
}
