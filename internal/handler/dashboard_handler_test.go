package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"halladmin/internal/model"
)

// stubAudit records the limit passed to Recent.
type stubAudit struct {
	gotLimit int
}

func (s *stubAudit) Record(actorID uuid.UUID, action, details string) {}

func (s *stubAudit) Recent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	s.gotLimit = limit
	return []model.ActivityLog{}, nil
}

func (s *stubAudit) Close() {}

func TestDashboardHandler_Activity_Limit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "default", query: "", wantLimit: 50},
		{name: "explicit", query: "?limit=20", wantLimit: 20},
		{name: "capped at maximum", query: "?limit=10000", wantLimit: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			audit := &stubAudit{}
			h := NewDashboardHandler(nil, audit)

			c, rec := jsonContext(e, http.MethodGet, "/activity"+tt.query, "")

			if assert.NoError(t, h.Activity(c)) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, tt.wantLimit, audit.gotLimit)
			}
		})
	}
}

func TestDashboardHandler_Activity_InvalidLimit(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(nil, &stubAudit{})

	for _, q := range []string{"?limit=abc", "?limit=0", "?limit=-5"} {
		c, _ := jsonContext(e, http.MethodGet, "/activity"+q, "")
		err := h.Activity(c)
		httpErr, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected *echo.HTTPError for %q, got %v", q, err) {
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		}
	}
}
