package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "middleware-secret"

type sessionStub map[string]int

func (s sessionStub) Create(context.Context, *entity.Session) error {
	return errors.New("not used")
}

func (s sessionStub) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	userID, ok := s[token]
	if !ok {
		return nil, nil
	}
	return &entity.Session{UserID: userID, Token: token}, nil
}

func TestAuth(t *testing.T) {
	live, err := utils.GenerateToken(secret, 7, time.Now())
	require.NoError(t, err)
	revoked, err := utils.GenerateToken(secret, 7, time.Now())
	require.NoError(t, err)
	forged, err := utils.GenerateToken("other-secret", 7, time.Now())
	require.NoError(t, err)

	sessions := sessionStub{live: 7, forged: 7}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid session", header: "Bearer " + live, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + live, wantStatus: http.StatusUnauthorized},
		{name: "no session row", header: "Bearer " + revoked, wantStatus: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + forged, wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/booking", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			Auth(secret, sessions, zap.NewNop())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, 7, gotUser)
			} else {
				assert.Zero(t, gotUser)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
