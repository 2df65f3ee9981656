package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and validates HS256-signed bearer tokens bound to a
// configured issuer and audience. It holds no state beyond the secret.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenService(secret, issuer, audience string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue signs a token carrying the user's id, username and role.
func (s *TokenService) Issue(user *domain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expires := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"role":     user.Role,
		"iss":      s.issuer,
		"aud":      s.audience,
		"iat":      now.Unix(),
		"exp":      expires.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Validate parses and verifies a token. It fails closed: a signature
// mismatch, expiry, wrong issuer or audience, or a malformed token all
// yield (nil, false). No clock skew is tolerated.
func (s *TokenService) Validate(token string) (*ports.Identity, bool) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, false
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, false
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		return nil, false
	}

	return &ports.Identity{
		UserID:   uint(id),
		Username: username,
		Role:     role,
	}, true
}
