package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"board/config"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/service"
)

const (
	claimKind = "kind"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed session token for the given identity.
func (s *jwtService) Issue(identityID uuid.UUID, kind entity.Kind) (string, *service.Claims, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     identityID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
		claimKind: string(kind),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", nil, err
	}

	parsed := &service.Claims{
		IdentityID: identityID,
		Kind:       kind,
	}
	parsed.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	parsed.IssuedAt = jwt.NewNumericDate(now)

	return signed, parsed, nil
}

// Parse checks signature and expiry of a token string and extracts its claims.
func (s *jwtService) Parse(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}
	identityID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	kindValue, _ := mapClaims[claimKind].(string)
	kind := entity.Kind(kindValue)
	if !kind.IsValid() {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims := &service.Claims{
		IdentityID: identityID,
		Kind:       kind,
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// TTL returns the configured session token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
