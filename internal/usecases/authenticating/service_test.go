package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/internal/config"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	return &Service{
		cfg: config.Auth{
			SecretKey:         "chave-de-teste",
			AdminEmail:        "Admin@Example.com",
			AdminPasswordHash: string(hash),
			TokenTTL:          time.Hour,
		},
		now: func() time.Time { return now },
	}
}

func TestLogin(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "credenciais corretas", email: " admin@example.com ", password: "s3nha-forte"},
		{name: "senha errada", email: "admin@example.com", password: "errada", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "email desconhecido", email: "outro@example.com", password: "s3nha-forte", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "campos vazios", email: "", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, now)

			token, err := s.Login(tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.True(t, IsCredentialsError(err))
				return
			}

			require.NoError(t, err)
			claims, err := s.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", claims.UserEmail)
			assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
			assert.True(t, claims.IsAdmin())
		})
	}
}

func TestLogin_DisabledWithoutAdmin(t *testing.T) {
	s := &Service{cfg: config.Auth{SecretKey: "x"}, now: time.Now}

	_, err := s.Login("admin@example.com", "qualquer")
	require.ErrorIs(t, err, ErrLoginDisabled)
}

func TestValidateToken_Expired(t *testing.T) {
	issued := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s := newTestService(t, issued)

	token, err := s.Login("admin@example.com", "s3nha-forte")
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }

	_, err = s.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsAuthorizationError(err))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s := newTestService(t, now)

	token, err := s.Login("admin@example.com", "s3nha-forte")
	require.NoError(t, err)

	other := newTestService(t, now)
	other.cfg.SecretKey = "outra-chave"

	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("nao.e.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTTL_Default(t *testing.T) {
	s := &Service{}
	assert.Equal(t, 24*time.Hour, s.tokenTTL())
}
