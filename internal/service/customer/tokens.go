package customer

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"daddybathbomb/internal/domain"
	tokenrepo "daddybathbomb/internal/repository/token"
	"github.com/golang-jwt/jwt/v5"
)

type accessClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// tokenManager issues short-lived JWT access tokens and DB-backed
// opaque refresh tokens.
type tokenManager struct {
	repo       tokenrepo.Repository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newTokenManager(repo tokenrepo.Repository, secret string, accessTTL, refreshTTL time.Duration) *tokenManager {
	return &tokenManager{
		repo:       repo,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *tokenManager) IssueAccess(customerID string, admin bool) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *tokenManager) ParseAccess(token string) (*Identity, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{CustomerID: claims.Subject, IsAdmin: claims.Admin}, nil
}

func (m *tokenManager) IssueRefresh(ctx context.Context, customerID string) (string, error) {
	expiresAt := time.Now().Add(m.refreshTTL)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.RefreshToken{
			Token:      token,
			CustomerID: customerID,
			ExpiresAt:  expiresAt,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

// ConsumeRefresh validates and deletes a refresh token, returning the
// bound customer id. Tokens are single-use.
func (m *tokenManager) ConsumeRefresh(ctx context.Context, token string) (string, error) {
	meta, err := m.repo.Get(ctx, token)
	if err != nil {
		return "", ErrInvalidToken
	}
	_ = m.repo.Delete(ctx, token)
	if time.Now().After(meta.ExpiresAt) {
		return "", ErrInvalidToken
	}
	return meta.CustomerID, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
