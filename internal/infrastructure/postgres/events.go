// Package postgres is the database/sql persistence layer.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/eventboard/eventboard/internal/application/lifecycle"
	"github.com/eventboard/eventboard/internal/domain"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	return r.db.QueryRowContext(ctx, insertEventSQL,
		e.Title, e.Annotation, e.Description, e.CategoryID, e.EventDate, e.LocationID,
		e.Paid, e.ParticipantLimit, e.RequestModeration, e.InitiatorID, string(e.Status),
		e.CreatedOn, e.PublishedOn, e.Views,
	).Scan(&e.ID)
}

func (r *EventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return scanEvent(r.db.QueryRowContext(ctx, getEventSQL, id))
}

func (r *EventRepo) GetPublishedByID(ctx context.Context, id int64) (*domain.Event, error) {
	return scanEvent(r.db.QueryRowContext(ctx, getPublishedEventSQL, id))
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, updateEventSQL,
		e.ID,
		e.Title, e.Annotation, e.Description, e.CategoryID, e.EventDate,
		e.LocationID, e.Paid, e.ParticipantLimit, e.RequestModeration,
		string(e.Status), e.PublishedOn,
	)
	return err
}

func (r *EventRepo) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, incrementViewsSQL, id)
	return err
}

func (r *EventRepo) ListByInitiator(ctx context.Context, initiatorID int64, from, size int) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsByInitiatorSQL, initiatorID, size, from)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *EventRepo) FindAdmin(ctx context.Context, f lifecycle.AdminFilter) ([]*domain.Event, error) {
	var b strings.Builder
	b.WriteString("SELECT " + eventColumns + "\nFROM events WHERE 1=1")
	args := []any{}

	if len(f.Users) > 0 {
		args = append(args, pq.Array(f.Users))
		fmt.Fprintf(&b, " AND initiator_id = ANY($%d)", len(args))
	}
	if len(f.States) > 0 {
		states := make([]string, len(f.States))
		for i, st := range f.States {
			states[i] = string(st)
		}
		args = append(args, pq.Array(states))
		fmt.Fprintf(&b, " AND status = ANY($%d)", len(args))
	}
	if len(f.Categories) > 0 {
		args = append(args, pq.Array(f.Categories))
		fmt.Fprintf(&b, " AND category_id = ANY($%d)", len(args))
	}
	if f.RangeStart != nil {
		args = append(args, *f.RangeStart)
		fmt.Fprintf(&b, " AND event_date >= $%d", len(args))
	}
	if f.RangeEnd != nil {
		args = append(args, *f.RangeEnd)
		fmt.Fprintf(&b, " AND event_date <= $%d", len(args))
	}

	args = append(args, f.Size)
	fmt.Fprintf(&b, " ORDER BY id LIMIT $%d", len(args))
	args = append(args, f.From)
	fmt.Fprintf(&b, " OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *EventRepo) FindPublished(ctx context.Context, f lifecycle.PublicFilter) ([]*domain.Event, error) {
	var b strings.Builder
	b.WriteString("SELECT " + eventColumns + "\nFROM events WHERE status = 'PUBLISHED'")
	args := []any{}

	if f.Text != "" {
		args = append(args, "%"+f.Text+"%")
		fmt.Fprintf(&b, " AND (annotation ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if len(f.Categories) > 0 {
		args = append(args, pq.Array(f.Categories))
		fmt.Fprintf(&b, " AND category_id = ANY($%d)", len(args))
	}
	if f.Paid != nil {
		args = append(args, *f.Paid)
		fmt.Fprintf(&b, " AND paid = $%d", len(args))
	}
	if f.RangeStart != nil {
		args = append(args, *f.RangeStart)
		fmt.Fprintf(&b, " AND event_date >= $%d", len(args))
	}
	if f.RangeEnd != nil {
		args = append(args, *f.RangeEnd)
		fmt.Fprintf(&b, " AND event_date <= $%d", len(args))
	}

	args = append(args, f.Size)
	fmt.Fprintf(&b, " ORDER BY event_date LIMIT $%d", len(args))
	args = append(args, f.From)
	fmt.Fprintf(&b, " OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventInto(s rowScanner, e *domain.Event) error {
	var status string
	if err := s.Scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.CategoryID,
		&e.EventDate, &e.LocationID, &e.Paid, &e.ParticipantLimit,
		&e.RequestModeration, &e.InitiatorID, &status,
		&e.CreatedOn, &e.PublishedOn, &e.Views,
	); err != nil {
		return err
	}
	e.Status = domain.EventStatus(status)
	return nil
}

func scanEvent(row *sql.Row) (*domain.Event, error) {
	var e domain.Event
	err := scanEventInto(row, &e)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("event not found")
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	defer rows.Close()
	out := []*domain.Event{}
	for rows.Next() {
		var e domain.Event
		if err := scanEventInto(rows, &e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
