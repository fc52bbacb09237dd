package postgres

import (
	"context"
	"database/sql"

	"github.com/eventboard/eventboard/internal/domain"
)

// UserDirectory is a read-only lookup; user management lives in another
// service.
type UserDirectory struct {
	db *sql.DB
}

func NewUserDirectory(db *sql.DB) *UserDirectory { return &UserDirectory{db: db} }

func (d *UserDirectory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.db.QueryRowContext(ctx, getUserSQL, id).Scan(&u.ID, &u.Name, &u.Email)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *UserDirectory) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx, userExistsSQL, id).Scan(&exists)
	return exists, err
}

type CategoryDirectory struct {
	db *sql.DB
}

func NewCategoryDirectory(db *sql.DB) *CategoryDirectory { return &CategoryDirectory{db: db} }

func (d *CategoryDirectory) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := d.db.QueryRowContext(ctx, getCategorySQL, id).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("category not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

func (r *LocationRepo) Save(ctx context.Context, c domain.Coordinates) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, insertLocationSQL, c.Lat, c.Lon).Scan(&id)
	return id, err
}

func (r *LocationRepo) Update(ctx context.Context, id int64, c domain.Coordinates) error {
	_, err := r.db.ExecContext(ctx, updateLocationSQL, id, c.Lat, c.Lon)
	return err
}
