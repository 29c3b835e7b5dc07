package auth

import (
	"testing"
	"time"

	"blogapi/config"
	"blogapi/internal/domain/service"
	"blogapi/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(secret, alg string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:   ttl,
			SigningAlgorithm: alg,
		},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

// newTestJWTService returns the concrete service with a controllable clock.
func newTestJWTService(t *testing.T, clock *time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestJWTConfig(testSecret, "HS256", 30*time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return *clock }

	return impl
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, &now)

	issued, err := svc.Issue("alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.True(t, now.Add(30*time.Minute).Equal(issued.ExpiresAt))

	now = now.Add(29 * time.Minute)
	claims, err := svc.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.True(t, issued.ExpiresAt.Equal(claims.ExpiresAt))
	assert.True(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Equal(claims.IssuedAt))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, &now)

	issued, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	now = now.Add(31 * time.Minute)
	claims, err := svc.Validate(issued.Token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
	assert.False(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, &now)

	issued, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	// Characters in the middle of the signature carry full bytes, unlike the last one.
	raw := []byte(issued.Token)
	pos := len(raw) - 10
	if raw[pos] == 'A' {
		raw[pos] = 'B'
	} else {
		raw[pos] = 'A'
	}

	claims, err := svc.Validate(string(raw))
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, &now)

	other, err := NewJWTService(newTestJWTConfig("a_completely_different_secret", "HS256", time.Hour))
	require.NoError(t, err)
	issued, err := other.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(issued.Token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_ExpiredAndForgedIsInvalid(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(past),
	})
	token, err := forged.SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	now := time.Now()
	svc := newTestJWTService(t, &now)

	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
	assert.False(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_RejectsOtherAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	now := time.Now()
	svc := newTestJWTService(t, &now)

	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_RequiresExpiryAndSubject(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, &now)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "alice@example.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(noExpiry)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(noSubject)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_Garbage(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, &now)

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		claims, err := svc.Validate(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, service.ErrTokenInvalid), "token %q", token)
	}
}

func TestNewJWTService_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{name: "empty secret", cfg: newTestJWTConfig("", "HS256", time.Hour), want: "secret must be provided"},
		{name: "asymmetric algorithm", cfg: newTestJWTConfig(testSecret, "RS256", time.Hour), want: "unsupported signing algorithm"},
		{name: "unknown algorithm", cfg: newTestJWTConfig(testSecret, "none", time.Hour), want: "unsupported signing algorithm"},
		{name: "zero ttl", cfg: newTestJWTConfig(testSecret, "HS256", 0), want: "ttl must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewJWTService(tt.cfg)
			assert.Nil(t, svc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewJWTService_AcceptsHMACFamily(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		svc, err := NewJWTService(newTestJWTConfig(testSecret, alg, time.Hour))
		require.NoError(t, err, alg)

		issued, err := svc.Issue("bob@example.com")
		require.NoError(t, err)

		claims, err := svc.Validate(issued.Token)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", claims.Subject)
	}
}
