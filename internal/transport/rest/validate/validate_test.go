package validate_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventboard/eventboard/internal/domain"
	"github.com/eventboard/eventboard/internal/transport/rest/dto"
	"github.com/eventboard/eventboard/internal/transport/rest/validate"
)

func decodeReq(body string, dst any) error {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return validate.DecodeJSON(r, dst)
}

func appErr(t *testing.T, err error) *domain.AppError {
	t.Helper()
	var ae *domain.AppError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return ae
}

func TestDecodeJSONMalformed(t *testing.T) {
	var req dto.StatusUpdateReq
	err := decodeReq(`{"requestIds": [1,`, &req)
	ae := appErr(t, err)
	assert.Equal(t, domain.CodeInvalidArgument, ae.Code)
	assert.Equal(t, "malformed request body", ae.Message)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var req dto.StatusUpdateReq
	err := decodeReq(`{"requestIds": [1], "status": "CONFIRMED", "bogus": 1}`, &req)
	assert.Error(t, err)
}

func TestDecodeJSONValidationMeta(t *testing.T) {
	var req dto.NewEventReq
	err := decodeReq(`{"title": "ab", "category": 1}`, &req)
	ae := appErr(t, err)
	assert.Equal(t, domain.CodeInvalidArgument, ae.Code)
	assert.Equal(t, "must be at least 3 characters", ae.Meta["title"])
	assert.Equal(t, "is required", ae.Meta["annotation"])
}

func TestDecodeJSONOneof(t *testing.T) {
	var req dto.StatusUpdateReq
	err := decodeReq(`{"requestIds": [1], "status": "MAYBE"}`, &req)
	ae := appErr(t, err)
	assert.Equal(t, "must be one of: CONFIRMED REJECTED", ae.Meta["status"])
}

func TestDecodeJSONValid(t *testing.T) {
	var req dto.StatusUpdateReq
	err := decodeReq(`{"requestIds": [3, 1, 2], "status": "REJECTED"}`, &req)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, req.RequestIDs)
	assert.Equal(t, "REJECTED", req.Status)
}
