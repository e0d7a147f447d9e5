package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo/repo_errors"
	"gig-marketplace-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

const bidColumns = "bid.id, bid.gig_id, bid.freelancer_id, bid.message, bid.price, bid.status, bid.created_at, " +
	"freelancer.name, freelancer.email"

// CreateBid inserts the bid inside a transaction that holds a share lock on
// the gig row, so a concurrent hire cannot commit between the open-status
// check and the insert.
func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, repo_errors.ErrGigNotFound
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	lockGigSql, args, _ := r.SqlBuilder.
		Select("status").
		From("gig").
		Where("id = ?", gigUuid).
		Suffix("FOR SHARE").
		RunWith(tx).
		ToSql()

	var gigStatus string
	err = tx.QueryRow(lockGigSql, args...).Scan(&gigStatus)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, repo_errors.ErrGigNotFound
		}

		return uuid.Nil, err
	}

	if gigStatus != common.GigOpen {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, repo_errors.ErrGigNotOpen
	}

	createBidSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("gig_id", "freelancer_id", "message", "price", "status").
		Values(gigUuid, freelancerUuid, input.Message, input.Price, common.BidPending).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var bidId uuid.UUID
	err = tx.QueryRow(createBidSql, args...).Scan(&bidId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		InnerJoin("users freelancer on freelancer.id = bid.freelancer_id").
		Where("bid.id = ?", uuidForm).
		ToSql()

	var bid entity.Bid
	var createdAt time.Time
	row := r.Database.QueryRow(getBidSql, args...)
	err = row.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message, &bid.Price,
		&bid.Status, &createdAt, &bid.FreelancerName, &bid.FreelancerEmail)
	bid.CreatedAt = createdAt.Format(time.RFC3339)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &bid, repo_errors.ErrNotFound
		}

		return &bid, err
	}

	return &bid, nil
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId string) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(gigId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getGigBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		InnerJoin("users freelancer on freelancer.id = bid.freelancer_id").
		Where("bid.gig_id = ?", uuidForm).
		OrderBy("bid.created_at ASC").
		ToSql()

	rows, err := r.Database.Query(getGigBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		var bid entity.Bid
		var createdAt time.Time
		if err := rows.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message, &bid.Price,
			&bid.Status, &createdAt, &bid.FreelancerName, &bid.FreelancerEmail); err != nil {
			return bids, err
		}
		bid.CreatedAt = createdAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

// HireBid awards the gig behind bidId to that bid as a single transaction:
// the gig becomes assigned with hired_bid_id set, the chosen bid becomes
// hired, every other bid of the gig becomes rejected. The gig row is locked
// FOR UPDATE, so of two concurrent hires one waits, re-reads the status as
// assigned and fails here with ErrGigAlreadyAssigned.
func (r *BidRepo) HireBid(ctx context.Context, bidId string, actorId string) error {
	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select("gig_id").
		From("bid").
		Where("id = ?", bidUuid).
		RunWith(tx).
		ToSql()

	var gigId uuid.UUID
	err = tx.QueryRow(getBidSql, args...).Scan(&gigId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		if errors.Is(err, sql.ErrNoRows) {
			return repo_errors.ErrNotFound
		}

		return err
	}

	lockGigSql, args, _ := r.SqlBuilder.
		Select("owner_id, status").
		From("gig").
		Where("id = ?", gigId).
		Suffix("FOR UPDATE").
		RunWith(tx).
		ToSql()

	var ownerId uuid.UUID
	var gigStatus string
	err = tx.QueryRow(lockGigSql, args...).Scan(&ownerId, &gigStatus)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		if errors.Is(err, sql.ErrNoRows) {
			return repo_errors.ErrGigNotFound
		}

		return err
	}

	if ownerId.String() != actorId {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return repo_errors.ErrNotGigOwner
	}

	if gigStatus == common.GigAssigned {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return repo_errors.ErrGigAlreadyAssigned
	}

	assignGigSql, args, _ := r.SqlBuilder.
		Update("gig").
		Set("status", common.GigAssigned).
		Set("hired_bid_id", bidUuid).
		Where("id = ?", gigId).
		RunWith(tx).
		ToSql()

	if _, err := tx.Exec(assignGigSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	hireBidSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.BidHired).
		Where("id = ?", bidUuid).
		RunWith(tx).
		ToSql()

	if _, err := tx.Exec(hireBidSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	rejectOthersSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.BidRejected).
		Where("gig_id = ?", gigId).
		Where("id <> ?", bidUuid).
		RunWith(tx).
		ToSql()

	if _, err := tx.Exec(rejectOthersSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
