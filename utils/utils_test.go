package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewNotFoundError("x"), http.StatusNotFound},
		{NewValidationError("x"), http.StatusBadRequest},
		{NewConflictError("x"), http.StatusConflict},
		{NewUnauthorizedError("x"), http.StatusUnauthorized},
		{NewInternalError("x", errors.New("boom")), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NewConflictError("x")), http.StatusConflict},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		got, _ := StatusFor(tt.err)
		assert.Equal(t, tt.want, got, tt.err.Error())
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, errors.New("db unreachable"), "Failed to fetch reviews")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch reviews"}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	RespondError(c, NewValidationError("endTime must be after startTime"), "Failed to create time slot")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"endTime must be after startTime"}`, w.Body.String())
}

func TestNewMailerFallsBackToLog(t *testing.T) {
	m := NewMailer("", "no-reply@studio.local")
	_, ok := m.(LogMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), "a@b.c", "subject", "plain", "<p>html</p>"))

	_, ok = NewMailer("SG.key", "no-reply@studio.local").(*SendGridMailer)
	assert.True(t, ok)
}
