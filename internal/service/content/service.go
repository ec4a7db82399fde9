package content

import (
	"context"
	"fmt"
	"strings"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/events"
)

// Settings keys the branding view is assembled from.
const (
	KeySiteName       = "branding.site_name"
	KeyLogoURL        = "branding.logo_url"
	KeyPrimaryColor   = "branding.primary_color"
	KeySecondaryColor = "branding.secondary_color"
)

var brandingDefaults = domain.Branding{
	SiteName:       "Daddy Bath Bomb",
	PrimaryColor:   "#FF6BB3",
	SecondaryColor: "#7C6BFF",
}

type settingsRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context, prefix string) ([]domain.Setting, error)
	Set(ctx context.Context, key, value string) (*domain.Setting, error)
	SetMany(ctx context.Context, pairs map[string]string) error
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload any)
}

// Service backs the inline admin editors: a key/value content store
// whose writes are broadcast on the event bus so other consumers
// refresh.
type Service struct {
	repo settingsRepo
	bus  publisher
}

func New(repo settingsRepo, bus publisher) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.repo.Get(ctx, key)
}

func (s *Service) List(ctx context.Context, prefix string) ([]domain.Setting, error) {
	return s.repo.List(ctx, prefix)
}

func (s *Service) Set(ctx context.Context, key, value string) (*domain.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("key required: %w", domain.ErrValidation)
	}
	out, err := s.repo.Set(ctx, key, value)
	if err != nil {
		return nil, err
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.TopicContentUpdated, events.ContentUpdated{Key: key, Value: value})
	}
	return out, nil
}

type BrandingInput struct {
	SiteName       *string `json:"siteName"`
	LogoURL        *string `json:"logoUrl"`
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
}

// UpdateBranding upserts every provided branding key in one transaction
// and publishes a single BrandingUpdated event.
func (s *Service) UpdateBranding(ctx context.Context, in BrandingInput) error {
	pairs := make(map[string]string)
	if in.SiteName != nil {
		pairs[KeySiteName] = strings.TrimSpace(*in.SiteName)
	}
	if in.LogoURL != nil {
		pairs[KeyLogoURL] = strings.TrimSpace(*in.LogoURL)
	}
	if in.PrimaryColor != nil {
		if err := validateHexColor(*in.PrimaryColor); err != nil {
			return err
		}
		pairs[KeyPrimaryColor] = strings.TrimSpace(*in.PrimaryColor)
	}
	if in.SecondaryColor != nil {
		if err := validateHexColor(*in.SecondaryColor); err != nil {
			return err
		}
		pairs[KeySecondaryColor] = strings.TrimSpace(*in.SecondaryColor)
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no branding fields provided: %w", domain.ErrValidation)
	}
	if err := s.repo.SetMany(ctx, pairs); err != nil {
		return err
	}
	if s.bus != nil {
		keys := make([]string, 0, len(pairs))
		for k := range pairs {
			keys = append(keys, k)
		}
		s.bus.Publish(ctx, events.TopicBrandingUpdated, events.BrandingUpdated{Keys: keys})
	}
	return nil
}

// Branding assembles the current-branding view, falling back to
// defaults for unset keys.
func (s *Service) Branding(ctx context.Context) (domain.Branding, error) {
	out := brandingDefaults
	stored, err := s.repo.List(ctx, "branding.")
	if err != nil {
		return out, err
	}
	for _, setting := range stored {
		if setting.Value == "" {
			continue
		}
		switch setting.Key {
		case KeySiteName:
			out.SiteName = setting.Value
		case KeyLogoURL:
			out.LogoURL = setting.Value
		case KeyPrimaryColor:
			out.PrimaryColor = setting.Value
		case KeySecondaryColor:
			out.SecondaryColor = setting.Value
		}
	}
	return out, nil
}

func validateHexColor(v string) error {
	v = strings.TrimSpace(v)
	if len(v) != 7 || v[0] != '#' {
		return fmt.Errorf("color must be a #rrggbb hex value: %w", domain.ErrValidation)
	}
	for _, r := range v[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("color must be a #rrggbb hex value: %w", domain.ErrValidation)
		}
	}
	return nil
}
