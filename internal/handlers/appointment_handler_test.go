package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
)

func TestWriteBusinessError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		code   string
		status int
	}{
		{"appointment_not_found", http.StatusNotFound},
		{"slot_taken", http.StatusConflict},
		{"transition_forbidden", http.StatusForbidden},
		{"delete_not_allowed", http.StatusForbidden},
		{"date_in_past", http.StatusBadRequest},
		{"time_in_past", http.StatusBadRequest},
		{"invalid_date", http.StatusBadRequest},
		{"invalid_time", http.StatusBadRequest},
		{"invalid_status", http.StatusBadRequest},
		{"invalid_transition", http.StatusBadRequest},
		{"service_not_found", http.StatusBadRequest},
		{"service_inactive", http.StatusBadRequest},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		writeBusinessError(c, httperr.ErrBusiness(tc.code))

		assert.Equal(t, tc.status, w.Code, tc.code)
		assert.Contains(t, w.Body.String(), tc.code)
	}
}

func TestWriteBusinessError_NonBusinessErrorIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeBusinessError(c, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Storage details never leak to the client.
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := parseID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, ok = parseID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
