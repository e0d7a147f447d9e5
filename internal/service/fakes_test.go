package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"
	"gig-marketplace-api/internal/security"

	"github.com/google/uuid"
)

// in-memory store shared by the fake repos; mirrors the transactional
// semantics of the pgdb layer under one mutex
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	gigs  map[uuid.UUID]*entity.Gig
	bids  map[uuid.UUID]*entity.Bid
	clock int64
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]*entity.User),
		gigs:  make(map[uuid.UUID]*entity.Gig),
		bids:  make(map[uuid.UUID]*entity.Bid),
	}
}

func (s *memStore) nextTime() string {
	s.clock++

	return time.Unix(s.clock, 0).UTC().Format(time.RFC3339)
}

func (s *memStore) addUser(name string, email string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &entity.User{Id: uuid.New(), Name: name, Email: email, CreatedAt: s.nextTime()}
	s.users[user.Id] = user

	return user
}

func (s *memStore) identityOf(user *entity.User) *security.Identity {
	return &security.Identity{UserId: user.Id, Name: user.Name}
}

func newFakeRepositories(s *memStore) *repo.Repositories {
	return &repo.Repositories{
		User: &fakeUserRepo{s},
		Gig:  &fakeGigRepo{s},
		Bid:  &fakeBidRepo{s},
	}
}

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == input.Email {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    r.store.nextTime(),
	}
	r.store.users[user.Id] = user

	return user.Id, nil
}

func (r *fakeUserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	user, ok := r.store.users[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

type fakeGigRepo struct {
	store *memStore
}

func (r *fakeGigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	owner, ok := r.store.users[ownerUuid]
	if !ok {
		return uuid.Nil, fmt.Errorf("fake store: unknown owner %s", input.OwnerId)
	}

	gig := &entity.Gig{
		Id:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Status:      common.GigOpen,
		OwnerId:     owner.Id,
		OwnerName:   owner.Name,
		OwnerEmail:  owner.Email,
		CreatedAt:   r.store.nextTime(),
	}
	r.store.gigs[gig.Id] = gig

	return gig.Id, nil
}

func (r *fakeGigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.getGigLocked(id)
}

func (r *fakeGigRepo) getGigLocked(id string) (*entity.Gig, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	gig, ok := r.store.gigs[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	copied := *gig
	if gig.HiredBid != nil {
		hired := *gig.HiredBid
		copied.HiredBid = &hired
	}

	return &copied, nil
}

func (r *fakeGigRepo) GetGigs(ctx context.Context, searchTerm string) ([]entity.Gig, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gigs := make([]entity.Gig, 0)
	for _, gig := range r.store.gigs {
		if searchTerm != "" && !strings.Contains(strings.ToLower(gig.Title), strings.ToLower(searchTerm)) {
			continue
		}

		copied, _ := r.getGigLocked(gig.Id.String())
		gigs = append(gigs, *copied)
	}

	sort.Slice(gigs, func(i, j int) bool {
		if gigs[i].Status != gigs[j].Status {
			return gigs[i].Status > gigs[j].Status
		}

		return gigs[i].CreatedAt > gigs[j].CreatedAt
	})

	return gigs, nil
}

type fakeBidRepo struct {
	store *memStore
}

func (r *fakeBidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, repo_errors.ErrGigNotFound
	}

	gig, ok := r.store.gigs[gigUuid]
	if !ok {
		return uuid.Nil, repo_errors.ErrGigNotFound
	}

	if gig.Status != common.GigOpen {
		return uuid.Nil, repo_errors.ErrGigNotOpen
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	freelancer, ok := r.store.users[freelancerUuid]
	if !ok {
		return uuid.Nil, fmt.Errorf("fake store: unknown freelancer %s", input.FreelancerId)
	}

	bid := &entity.Bid{
		Id:              uuid.New(),
		GigId:           gig.Id,
		FreelancerId:    freelancer.Id,
		FreelancerName:  freelancer.Name,
		FreelancerEmail: freelancer.Email,
		Message:         input.Message,
		Price:           input.Price,
		Status:          common.BidPending,
		CreatedAt:       r.store.nextTime(),
	}
	r.store.bids[bid.Id] = bid

	return bid.Id, nil
}

func (r *fakeBidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	bid, ok := r.store.bids[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	copied := *bid

	return &copied, nil
}

func (r *fakeBidRepo) GetGigBids(ctx context.Context, gigId string) ([]entity.Bid, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	uuidForm, err := uuid.Parse(gigId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	bids := make([]entity.Bid, 0)
	for _, bid := range r.store.bids {
		if bid.GigId == uuidForm {
			bids = append(bids, *bid)
		}
	}

	sort.Slice(bids, func(i, j int) bool {
		return bids[i].CreatedAt < bids[j].CreatedAt
	})

	return bids, nil
}

func (r *fakeBidRepo) HireBid(ctx context.Context, bidId string, actorId string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	bid, ok := r.store.bids[bidUuid]
	if !ok {
		return repo_errors.ErrNotFound
	}

	gig, ok := r.store.gigs[bid.GigId]
	if !ok {
		return repo_errors.ErrGigNotFound
	}

	if gig.OwnerId.String() != actorId {
		return repo_errors.ErrNotGigOwner
	}

	if gig.Status == common.GigAssigned {
		return repo_errors.ErrGigAlreadyAssigned
	}

	gig.Status = common.GigAssigned
	gig.HiredBid = &entity.HiredBid{
		Id:              bid.Id,
		Message:         bid.Message,
		Price:           bid.Price,
		FreelancerId:    bid.FreelancerId,
		FreelancerName:  bid.FreelancerName,
		FreelancerEmail: bid.FreelancerEmail,
	}
	bid.Status = common.BidHired

	for _, other := range r.store.bids {
		if other.GigId == gig.Id && other.Id != bid.Id {
			other.Status = common.BidRejected
		}
	}

	return nil
}
