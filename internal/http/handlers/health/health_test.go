package health

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockChecker реализует интерфейс health.Checker
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) CheckDatabaseReady() error {
	args := m.Called()
	return args.Error(0)
}

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		setupMock      func(*MockChecker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "хранилище готово",
			setupMock: func(m *MockChecker) {
				m.On("CheckDatabaseReady").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name: "хранилище не готово",
			setupMock: func(m *MockChecker) {
				m.On("CheckDatabaseReady").Return(errors.New("required table users missing"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `"error":"storage is not ready"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChecker := new(MockChecker)
			tt.setupMock(mockChecker)

			handler := New(logger, mockChecker)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockChecker.AssertExpectations(t)
		})
	}
}
