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
	"github.com/shopspring/decimal"
)

type GigRepo struct {
	*postgres.Postgres
}

func NewGigRepo(pgdb *postgres.Postgres) *GigRepo {
	return &GigRepo{pgdb}
}

const gigColumns = "gig.id, gig.title, gig.description, gig.budget, gig.status, gig.created_at, " +
	"owner.id, owner.name, owner.email, " +
	"hired.id, hired.message, hired.price, " +
	"freelancer.id, freelancer.name, freelancer.email"

func (r *GigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	createGigSql, args, _ := r.SqlBuilder.
		Insert("gig").
		Columns("title", "description", "budget", "status", "owner_id").
		Values(input.Title, input.Description, input.Budget, common.GigOpen, ownerUuid).
		Suffix("RETURNING id").
		ToSql()

	var gigId uuid.UUID
	err = r.Database.QueryRow(createGigSql, args...).Scan(&gigId)
	if err != nil {
		return uuid.Nil, err
	}

	return gigId, nil
}

func (r *GigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getGigSql, args, _ := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		InnerJoin("users owner on owner.id = gig.owner_id").
		LeftJoin("bid hired on hired.id = gig.hired_bid_id").
		LeftJoin("users freelancer on freelancer.id = hired.freelancer_id").
		Where("gig.id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRow(getGigSql, args...)
	gig, err := scanGigRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gig, repo_errors.ErrNotFound
		}

		return gig, err
	}

	return gig, nil
}

func (r *GigRepo) GetGigs(ctx context.Context, searchTerm string) ([]entity.Gig, error) {
	builder := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		InnerJoin("users owner on owner.id = gig.owner_id").
		LeftJoin("bid hired on hired.id = gig.hired_bid_id").
		LeftJoin("users freelancer on freelancer.id = hired.freelancer_id")

	if searchTerm != "" {
		builder = builder.Where("gig.title ilike ?", "%"+searchTerm+"%")
	}

	getGigsSql, args, _ := builder.
		OrderBy("gig.status DESC", "gig.created_at DESC").
		ToSql()

	rows, err := r.Database.Query(getGigsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := make([]entity.Gig, 0)
	for rows.Next() {
		gig, err := scanGigRow(rows)
		if err != nil {
			return gigs, err
		}
		gigs = append(gigs, *gig)
	}
	if err = rows.Err(); err != nil {
		return gigs, err
	}

	return gigs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGigRow(row rowScanner) (*entity.Gig, error) {
	var gig entity.Gig
	var createdAt time.Time
	var hiredBidId, freelancerId uuid.NullUUID
	var hiredMessage, freelancerName, freelancerEmail sql.NullString
	var hiredPrice decimal.NullDecimal

	err := row.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget, &gig.Status, &createdAt,
		&gig.OwnerId, &gig.OwnerName, &gig.OwnerEmail,
		&hiredBidId, &hiredMessage, &hiredPrice,
		&freelancerId, &freelancerName, &freelancerEmail)
	if err != nil {
		return &gig, err
	}
	gig.CreatedAt = createdAt.Format(time.RFC3339)

	if hiredBidId.Valid {
		gig.HiredBid = &entity.HiredBid{
			Id:              hiredBidId.UUID,
			Message:         hiredMessage.String,
			Price:           hiredPrice.Decimal,
			FreelancerId:    freelancerId.UUID,
			FreelancerName:  freelancerName.String,
			FreelancerEmail: freelancerEmail.String,
		}
	}

	return &gig, nil
}
