//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bookloop/internal/pkg/config"
	"bookloop/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTTL = 15 * time.Minute

// JWTHelper mints tokens the way the identity service does.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	token, err := h.service.IssueToken(userID, username, defaultTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	token, err := h.service.IssueToken(userID, username, -time.Minute)
	require.NoError(t, err)
	return token
}

// CreateForeignToken signs with a different secret.
func CreateForeignToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService("not-the-configured-secret", "bookloop-identity").IssueToken(userID, "intruder", defaultTTL)
	require.NoError(t, err)
	return token
}
