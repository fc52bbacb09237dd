package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateTimeCodec(t *testing.T) {
	d := NewDateTime(time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-05-10 19:00:00"`, string(b))

	var back DateTime
	assert.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := NewDateTime(time.Date(2026, 5, 10, 22, 0, 0, 0, loc))

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-05-10 19:00:00"`, string(b))
}

func TestDateTimeRejectsOtherLayouts(t *testing.T) {
	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`"2026-05-10T19:00:00Z"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`1715367600`), &d))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-05-10 19:00:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC), got)

	_, err = ParseDateTime("next tuesday")
	assert.Error(t, err)
}
