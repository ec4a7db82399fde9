package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"daddybathbomb/internal/domain"
	custrepo "daddybathbomb/internal/repository/customer"
	tokenrepo "daddybathbomb/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles signup/login flows. Admin status is resolved from the
// customer record at login and carried in the access token claim; there
// is no client-side way to elevate it.
type Service struct {
	repo        custrepo.Repository
	tokens      *tokenManager
	passwordMin int
}

func New(repo custrepo.Repository, tokens tokenrepo.Repository, jwtSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(tokens, jwtSecret, accessTTL, refreshTTL),
		passwordMin: 8,
	}
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// Session is what login/refresh hand back to the transport layer.
type Session struct {
	Customer     *domain.Customer `json:"customer"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	ExpiresIn    int              `json:"expiresIn"`
}

// Identity is the resolved caller extracted from a valid access token.
type Identity struct {
	CustomerID string
	IsAdmin    bool
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, fmt.Errorf("email required: %w", domain.ErrValidation)
	}
	nickname := strings.TrimSpace(in.Nickname)
	if nickname == "" {
		return nil, fmt.Errorf("nickname required: %w", domain.ErrValidation)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("password must be at least %d characters: %w", s.passwordMin, domain.ErrValidation)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.Customer{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: string(hashed),
	})
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(ctx, c)
}

// Refresh rotates a refresh token and issues a fresh session.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	customerID, err := s.tokens.ConsumeRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return s.issueSession(ctx, c)
}

// Authenticate resolves the caller from a bearer access token.
func (s *Service) Authenticate(token string) (*Identity, error) {
	return s.tokens.ParseAccess(token)
}

func (s *Service) issueSession(ctx context.Context, c *domain.Customer) (*Session, error) {
	access, err := s.tokens.IssueAccess(c.ID, c.IsAdmin)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &Session{
		Customer:     c,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.tokens.accessTTL.Seconds()),
	}, nil
}
