package auth

import (
	"time"

	"blogapi/config"
	"blogapi/internal/domain/entity"
	"blogapi/internal/domain/service"
	"blogapi/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HMAC-signed JWTs.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService reads the access secret, signing algorithm and token lifetime once at startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	method, ok := jwt.GetSigningMethod(cfg.Auth.SigningAlgorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported signing algorithm %q, expected HS256, HS384 or HS512", cfg.Auth.SigningAlgorithm)
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		method: method,
		ttl:    cfg.Auth.AccessTokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying sub, iat and an absolute exp.
func (s *jwtService) Issue(subject string) (*service.IssuedToken, error) {
	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: expiresAt.Truncate(time.Second),
	}, nil
}

// Validate checks algorithm, signature and expiry, in that order.
func (s *jwtService) Validate(tokenString string) (*entity.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// The signature is verified before claims, so an expiry error implies a genuine token.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrTokenInvalid, "token has no subject")
	}

	out := &entity.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}

	return out, nil
}
