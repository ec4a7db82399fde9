package banner

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/events"
)

type bannerRepo interface {
	List(ctx context.Context) ([]domain.HeroBanner, error)
	Upsert(ctx context.Context, b domain.HeroBanner) (*domain.HeroBanner, error)
	SetActive(ctx context.Context, displayOrder int, active bool) error
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload any)
}

// Service produces the landing rotation by overlaying stored banners on
// the built-in defaults, and exposes the admin mutations.
type Service struct {
	repo   bannerRepo
	bus    publisher
	logger *log.Logger
}

func New(repo bannerRepo, bus publisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, bus: bus, logger: logger}
}

// Rotation returns a stable, always-non-empty ordered banner list. Any
// repository failure degrades to the full default set; this method
// never returns an error to its caller.
func (s *Service) Rotation(ctx context.Context) []domain.HeroBanner {
	defaults := Defaults()

	var stored []domain.HeroBanner
	if s.repo != nil {
		var err error
		stored, err = s.repo.List(ctx)
		if err != nil {
			s.logger.Printf("banner service: falling back to defaults: %v", err)
			return activeSorted(defaults)
		}
	}

	byOrder := make(map[int]domain.HeroBanner, len(defaults))
	defaultByOrder := make(map[int]domain.HeroBanner, len(defaults))
	for _, d := range defaults {
		byOrder[d.DisplayOrder] = d
		defaultByOrder[d.DisplayOrder] = d
	}

	for _, raw := range stored {
		b := normalize(raw, defaultByOrder[raw.DisplayOrder])
		// A stored banner without an image would render with no visual
		// content; it never displaces the slot's default.
		if strings.TrimSpace(b.ImageURL) == "" {
			continue
		}
		byOrder[b.DisplayOrder] = b
	}

	merged := make([]domain.HeroBanner, 0, len(byOrder))
	for _, b := range byOrder {
		merged = append(merged, b)
	}
	result := activeSorted(merged)

	// Top up from unused defaults until the rotation floor is met.
	if len(result) < minRotation {
		used := make(map[int]bool, len(result))
		for _, b := range result {
			used[b.DisplayOrder] = true
		}
		for _, d := range defaults {
			if len(result) >= minRotation {
				break
			}
			if !used[d.DisplayOrder] {
				result = append(result, d)
				used[d.DisplayOrder] = true
			}
		}
		sort.Slice(result, func(i, j int) bool { return result[i].DisplayOrder < result[j].DisplayOrder })
	}
	return result
}

// List returns the stored rows as-is for the admin editor.
func (s *Service) List(ctx context.Context) ([]domain.HeroBanner, error) {
	return s.repo.List(ctx)
}

func (s *Service) Upsert(ctx context.Context, b domain.HeroBanner) (*domain.HeroBanner, error) {
	if b.DisplayOrder < 1 {
		return nil, fmt.Errorf("displayOrder must be positive: %w", domain.ErrValidation)
	}
	out, err := s.repo.Upsert(ctx, b)
	if err != nil {
		return nil, err
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.TopicBannerUpdated, events.BannerUpdated{DisplayOrder: out.DisplayOrder})
	}
	return out, nil
}

func (s *Service) SetActive(ctx context.Context, displayOrder int, active bool) error {
	if err := s.repo.SetActive(ctx, displayOrder, active); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.TopicBannerUpdated, events.BannerUpdated{DisplayOrder: displayOrder})
	}
	return nil
}

// normalize trims every text field and substitutes the matching
// default's value when a field comes back blank. The icon name is
// canonicalized to its capitalized form.
func normalize(b, def domain.HeroBanner) domain.HeroBanner {
	b.MainTitle = textOr(b.MainTitle, def.MainTitle)
	b.SubTitle = textOr(b.SubTitle, def.SubTitle)
	b.Description = textOr(b.Description, def.Description)
	b.Tagline = textOr(b.Tagline, def.Tagline)
	b.PrimaryBtn = textOr(b.PrimaryBtn, def.PrimaryBtn)
	b.SecondaryBtn = textOr(b.SecondaryBtn, def.SecondaryBtn)
	b.IconColor = textOr(b.IconColor, def.IconColor)
	b.ImageURL = strings.TrimSpace(b.ImageURL)

	icon := strings.TrimSpace(b.IconName)
	if icon == "" {
		b.IconName = def.IconName
	} else {
		b.IconName = canonicalIcon(icon)
	}
	return b
}

func textOr(v, fallback string) string {
	if t := strings.TrimSpace(v); t != "" {
		return t
	}
	return fallback
}

func canonicalIcon(name string) string {
	lower := strings.ToLower(name)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func activeSorted(banners []domain.HeroBanner) []domain.HeroBanner {
	out := make([]domain.HeroBanner, 0, len(banners))
	for _, b := range banners {
		if b.IsActive {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}
