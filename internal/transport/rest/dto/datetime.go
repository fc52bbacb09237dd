package dto

import (
	"strconv"
	"time"
)

// DateTimeLayout is the wire format for every timestamp in the API.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime wraps time.Time with the API's flat timestamp encoding.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime { return DateTime{Time: t.UTC()} }

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.UTC().Format(DateTimeLayout))), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}

// ParseDateTime parses a query-string timestamp.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
