//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"relove/internal/pkg/config"
	"relove/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken mints a bearer token the way the external identity provider
// would, signed with the shared secret.
func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	validator := jwt.NewValidator(h.cfg.Secret)
	token, err := validator.SignForTest(userID, email, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	validator := jwt.NewValidator(h.cfg.Secret)
	token, err := validator.SignForTest(userID, email, -time.Minute)
	require.NoError(t, err)
	return token
}
