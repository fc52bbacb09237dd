package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventboard/eventboard/internal/domain"
)

type stubCounter struct {
	count int
	err   error
}

func (s *stubCounter) CountByEventAndStatus(_ context.Context, _ int64, _ domain.RequestStatus) (int, error) {
	return s.count, s.err
}

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("unlimited event is always available", func(t *testing.T) {
		q := New(&stubCounter{count: 9000})
		ok, err := q.IsAvailable(ctx, &domain.Event{ID: 1, ParticipantLimit: 0})
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("below limit", func(t *testing.T) {
		q := New(&stubCounter{count: 4})
		ok, err := q.IsAvailable(ctx, &domain.Event{ID: 1, ParticipantLimit: 5})
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("at limit", func(t *testing.T) {
		q := New(&stubCounter{count: 5})
		ok, err := q.IsAvailable(ctx, &domain.Event{ID: 1, ParticipantLimit: 5})
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("counter failure propagates", func(t *testing.T) {
		q := New(&stubCounter{err: errors.New("db down")})
		_, err := q.IsAvailable(ctx, &domain.Event{ID: 1, ParticipantLimit: 5})
		assert.Error(t, err)
	})
}
