package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/eventboard/eventboard/internal/domain"
)

type RequestRepo struct {
	db *sql.DB
}

func NewRequestRepo(db *sql.DB) *RequestRepo { return &RequestRepo{db: db} }

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	return scanRequest(r.db.QueryRowContext(ctx, getRequestSQL, id))
}

func (r *RequestRepo) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	rows, err := r.db.QueryContext(ctx, listRequestsByRequesterSQL, requesterID)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *RequestRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error) {
	rows, err := r.db.QueryContext(ctx, listRequestsByEventSQL, eventID)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *RequestRepo) Save(ctx context.Context, req *domain.ParticipationRequest) error {
	_, err := r.db.ExecContext(ctx, updateRequestStatusSQL, req.ID, string(req.Status))
	return err
}

// CountByEventAndStatus is the unlocked read used by availability
// checks; capacity decisions take the same count under WithEventLock.
func (r *RequestRepo) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countRequestsByStatusSQL, eventID, string(status)).Scan(&n)
	return n, err
}

func scanRequest(row *sql.Row) (*domain.ParticipationRequest, error) {
	var req domain.ParticipationRequest
	var status string
	err := row.Scan(&req.ID, &req.EventID, &req.RequesterID, &status, &req.Created)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("request not found")
	}
	if err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	return &req, nil
}

func scanRequests(rows *sql.Rows) ([]*domain.ParticipationRequest, error) {
	defer rows.Close()
	out := []*domain.ParticipationRequest{}
	for rows.Next() {
		var req domain.ParticipationRequest
		var status string
		if err := rows.Scan(&req.ID, &req.EventID, &req.RequesterID, &status, &req.Created); err != nil {
			return nil, err
		}
		req.Status = domain.RequestStatus(status)
		out = append(out, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// --- in-transaction view ---

type requestTx struct {
	tx *sql.Tx
}

func (t *requestTx) HasActiveByEventAndRequester(ctx context.Context, eventID, requesterID int64) (bool, error) {
	var exists bool
	err := t.tx.QueryRowContext(ctx, hasActiveRequestSQL, eventID, requesterID).Scan(&exists)
	return exists, err
}

func (t *requestTx) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int, error) {
	var n int
	err := t.tx.QueryRowContext(ctx, countRequestsByStatusSQL, eventID, string(status)).Scan(&n)
	return n, err
}

func (t *requestTx) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	return t.tx.QueryRowContext(ctx, insertRequestSQL,
		req.EventID, req.RequesterID, string(req.Status), req.Created,
	).Scan(&req.ID)
}

// FindBatch fetches the requested ids and reorders the rows to match
// the input. Ids with no row are dropped.
func (t *requestTx) FindBatch(ctx context.Context, ids []int64) ([]*domain.ParticipationRequest, error) {
	rows, err := t.tx.QueryContext(ctx, findRequestsBatchSQL, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	found, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.ParticipationRequest, len(found))
	for _, req := range found {
		byID[req.ID] = req
	}
	out := make([]*domain.ParticipationRequest, 0, len(found))
	for _, id := range ids {
		if req, ok := byID[id]; ok {
			out = append(out, req)
		}
	}
	return out, nil
}

func (t *requestTx) SaveBatch(ctx context.Context, rs []*domain.ParticipationRequest) error {
	for _, req := range rs {
		if _, err := t.tx.ExecContext(ctx, updateRequestStatusSQL, req.ID, string(req.Status)); err != nil {
			return err
		}
	}
	return nil
}

func (t *requestTx) RejectPendingByEvent(ctx context.Context, eventID int64) (int64, error) {
	res, err := t.tx.ExecContext(ctx, rejectPendingByEventSQL, eventID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
