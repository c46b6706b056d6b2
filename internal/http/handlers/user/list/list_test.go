package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/user-directory/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	args := m.Called(ctx, offset, limit)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func sampleUsers() []*models.User {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*models.User{
		{ID: 1, Email: "a@x.com", Username: "alice", IsActive: true, CreatedAt: created},
		{ID: 2, Email: "b@x.com", Username: "bob", IsActive: true, CreatedAt: created},
	}
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		wantCount      int
		wantError      string
	}{
		{
			name: "список с параметрами по умолчанию",
			url:  "/users",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 0, 0).Return(sampleUsers(), nil)
			},
			expectedStatus: http.StatusOK,
			wantCount:      2,
		},
		{
			name: "список с явными offset и limit",
			url:  "/users?offset=1&limit=10",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 1, 10).Return(sampleUsers()[1:], nil)
			},
			expectedStatus: http.StatusOK,
			wantCount:      1,
		},
		{
			name: "offset за границей таблицы",
			url:  "/users?offset=1000",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 1000, 0).Return([]*models.User{}, nil)
			},
			expectedStatus: http.StatusOK,
			wantCount:      0,
		},
		{
			name:           "нечисловой offset",
			url:            "/users?offset=abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			wantError:      "offset must be an integer",
		},
		{
			name: "отрицательный offset",
			url:  "/users?offset=-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, -1, 0).Return(nil, models.ErrInvalidPagination)
			},
			expectedStatus: http.StatusBadRequest,
			wantError:      "offset and limit must not be negative",
		},
		{
			name: "хранилище недоступно",
			url:  "/users",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 0, 0).Return(nil, models.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			wantError:      "storage unavailable",
		},
		{
			name: "ошибка сервиса",
			url:  "/users",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 0, 0).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			wantError:      "could not list users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var got map[string]any
			err := json.NewDecoder(w.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, float64(tt.wantCount), data["list_count"])
				users, ok := data["users"].([]any)
				assert.True(t, ok)
				assert.Len(t, users, tt.wantCount)
			}

			mockService.AssertExpectations(t)
		})
	}
}
