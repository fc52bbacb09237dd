package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return tt.UTC()
}

func newFields(date time.Time) NewEventFields {
	return NewEventFields{
		Title:             "Rooftop Concert",
		Annotation:        "An open-air evening concert on the rooftop",
		Description:       "Live sets from three local bands, doors open an hour before",
		EventDate:         date,
		Paid:              true,
		ParticipantLimit:  50,
		RequestModeration: true,
	}
}

func TestNewEvent_Validation(t *testing.T) {
	now := mustTime(t, "2025-12-25T10:00:00Z")

	t.Run("valid_creation", func(t *testing.T) {
		e, err := NewEvent(1, 2, 3, newFields(now.Add(3*time.Hour)), now)
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, e.Status)
		assert.Equal(t, int64(1), e.InitiatorID)
		assert.Equal(t, int64(2), e.CategoryID)
		assert.Nil(t, e.PublishedOn)
		assert.Zero(t, e.Views)
	})

	t.Run("fail_on_date_too_close", func(t *testing.T) {
		_, err := NewEvent(1, 2, 3, newFields(now.Add(1*time.Hour)), now)
		assert.Error(t, err)
		assert.Equal(t, CodeInvalidArgument, err.(*AppError).Code)
	})

	t.Run("date_exactly_two_hours_ahead_is_ok", func(t *testing.T) {
		_, err := NewEvent(1, 2, 3, newFields(now.Add(MinLeadTime)), now)
		assert.NoError(t, err)
	})

	t.Run("fail_on_negative_limit", func(t *testing.T) {
		f := newFields(now.Add(3 * time.Hour))
		f.ParticipantLimit = -1
		_, err := NewEvent(1, 2, 3, f, now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "participant limit must be >= 0")
	})
}

func TestEvent_AdminActions(t *testing.T) {
	now := mustTime(t, "2025-12-25T10:00:00Z")

	pending := func() *Event {
		e, _ := NewEvent(1, 2, 3, newFields(now.Add(3*time.Hour)), now)
		return e
	}

	t.Run("publish_pending", func(t *testing.T) {
		e := pending()
		err := e.ApplyAdminAction(PublishEvent, now)
		assert.NoError(t, err)
		assert.Equal(t, StatusPublished, e.Status)
		assert.NotNil(t, e.PublishedOn)
		assert.Equal(t, now, *e.PublishedOn)
	})

	t.Run("publish_canceled_forbidden", func(t *testing.T) {
		e := pending()
		e.Status = StatusCanceled
		err := e.ApplyAdminAction(PublishEvent, now)
		assert.Error(t, err)
		assert.Equal(t, CodeForbidden, err.(*AppError).Code)
	})

	t.Run("publish_twice_forbidden_and_stamp_unchanged", func(t *testing.T) {
		e := pending()
		assert.NoError(t, e.ApplyAdminAction(PublishEvent, now))
		stamp := *e.PublishedOn
		err := e.ApplyAdminAction(PublishEvent, now.Add(time.Hour))
		assert.Error(t, err)
		assert.Equal(t, stamp, *e.PublishedOn)
	})

	t.Run("reject_pending_and_canceled", func(t *testing.T) {
		e := pending()
		assert.NoError(t, e.ApplyAdminAction(RejectEvent, now))
		assert.Equal(t, StatusCanceled, e.Status)
		// rejecting again from CANCELED stays allowed by the transition table
		assert.NoError(t, e.ApplyAdminAction(RejectEvent, now))
	})

	t.Run("reject_published_forbidden", func(t *testing.T) {
		e := pending()
		_ = e.ApplyAdminAction(PublishEvent, now)
		err := e.ApplyAdminAction(RejectEvent, now)
		assert.Error(t, err)
		assert.Equal(t, CodeForbidden, err.(*AppError).Code)
	})
}

func TestEvent_UserActions(t *testing.T) {
	now := mustTime(t, "2025-12-25T10:00:00Z")
	e, _ := NewEvent(1, 2, 3, newFields(now.Add(3*time.Hour)), now)

	t.Run("cancel_review_then_resubmit", func(t *testing.T) {
		assert.NoError(t, e.ApplyUserAction(CancelReview))
		assert.Equal(t, StatusCanceled, e.Status)
		assert.NoError(t, e.ApplyUserAction(SendToReview))
		assert.Equal(t, StatusPending, e.Status)
	})

	t.Run("published_event_not_editable", func(t *testing.T) {
		_ = e.ApplyAdminAction(PublishEvent, now)
		err := e.ApplyUserAction(CancelReview)
		assert.Error(t, err)
		assert.Equal(t, CodeForbidden, err.(*AppError).Code)
	})
}

func TestEvent_ApplyPatch(t *testing.T) {
	now := mustTime(t, "2025-12-25T10:00:00Z")
	e, _ := NewEvent(1, 2, 3, newFields(now.Add(3*time.Hour)), now)

	t.Run("absent_fields_unchanged", func(t *testing.T) {
		before := *e
		assert.NoError(t, e.ApplyPatch(Patch{}, now))
		assert.Equal(t, before, *e)
	})

	t.Run("date_revalidated_when_present", func(t *testing.T) {
		bad := now.Add(time.Hour)
		err := e.ApplyPatch(Patch{EventDate: &bad}, now)
		assert.Error(t, err)
		assert.Equal(t, CodeInvalidArgument, err.(*AppError).Code)
	})

	t.Run("negative_limit_rejected_before_any_mutation", func(t *testing.T) {
		title := "Changed"
		limit := -5
		before := *e
		err := e.ApplyPatch(Patch{Title: &title, ParticipantLimit: &limit}, now)
		assert.Error(t, err)
		assert.Equal(t, before, *e)
	})

	t.Run("partial_update", func(t *testing.T) {
		paid := false
		limit := 0
		assert.NoError(t, e.ApplyPatch(Patch{Paid: &paid, ParticipantLimit: &limit}, now))
		assert.False(t, e.Paid)
		assert.Equal(t, 0, e.ParticipantLimit)
		assert.Equal(t, "Rooftop Concert", e.Title)
	})
}

func TestParticipationRequest(t *testing.T) {
	now := mustTime(t, "2025-12-25T10:00:00Z")
	ev, _ := NewEvent(1, 2, 3, newFields(now.Add(3*time.Hour)), now)

	t.Run("moderated_limited_event_starts_pending", func(t *testing.T) {
		r := NewParticipationRequest(9, ev, now)
		assert.Equal(t, RequestPending, r.Status)
		assert.True(t, r.Active())
	})

	t.Run("unlimited_event_auto_confirms", func(t *testing.T) {
		unlimited := *ev
		unlimited.ParticipantLimit = 0
		r := NewParticipationRequest(9, &unlimited, now)
		assert.Equal(t, RequestConfirmed, r.Status)
	})

	t.Run("moderation_off_auto_confirms", func(t *testing.T) {
		open := *ev
		open.RequestModeration = false
		r := NewParticipationRequest(9, &open, now)
		assert.Equal(t, RequestConfirmed, r.Status)
	})

	t.Run("cancel_confirmed_allowed_second_cancel_forbidden", func(t *testing.T) {
		r := NewParticipationRequest(9, ev, now)
		r.Status = RequestConfirmed
		assert.NoError(t, r.Cancel())
		assert.Equal(t, RequestCanceled, r.Status)
		assert.False(t, r.Active())

		err := r.Cancel()
		assert.Error(t, err)
		assert.Equal(t, CodeForbidden, err.(*AppError).Code)
	})
}
