package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"

	"tinytally/internal/domain/children"
)

var childColumns = []string{
	"id", "owner_user_id",
	"name", "sex", "birth_date", "notes",
	"created_at", "updated_at",
}

var _ children.Repository = (*ChildRepo)(nil)

type ChildRepo struct {
	db *sql.DB
}

func NewChildRepo(db *sql.DB) *ChildRepo {
	return &ChildRepo{db: db}
}

func (r *ChildRepo) Create(ctx context.Context, c children.Child) error {
	_, err := exec(ctx, r.db, psql.Insert("children").
		Columns(childColumns...).
		Values(
			c.ID,
			c.OwnerUserID,
			c.Name,
			string(c.Sex),
			toNullTime(c.BirthDate),
			c.Notes,
			c.CreatedAt,
			c.UpdatedAt,
		))
	return err
}

func (r *ChildRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return children.Child{}, children.ErrNotFound
	}

	rows, err := query(ctx, r.db, psql.Select(childColumns...).
		From("children").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return children.Child{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return children.Child{}, err
		}
		return children.Child{}, children.ErrNotFound
	}
	return scanChild(rows)
}

func (r *ChildRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]children.Child, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := query(ctx, r.db, psql.Select(childColumns...).
		From("children").
		Where(squirrel.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]children.Child, 0)
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanChild(rows *sql.Rows) (children.Child, error) {
	var (
		c     children.Child
		sex   string
		birth sql.NullTime
	)
	if err := rows.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&sex,
		&birth,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return children.Child{}, children.ErrNotFound
		}
		return children.Child{}, err
	}
	c.Sex = children.Sex(sex)
	c.BirthDate = fromNullTime(birth)
	return c, nil
}
