package content

import (
	"context"
	"testing"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/events"
)

type stubRepo struct {
	settings  map[string]string
	setCalls  int
	manyPairs map[string]string
}

func newStubRepo() *stubRepo {
	return &stubRepo{settings: make(map[string]string)}
}

func (s *stubRepo) Get(_ context.Context, key string) (*domain.Setting, error) {
	v, ok := s.settings[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Setting{Key: key, Value: v}, nil
}

func (s *stubRepo) List(_ context.Context, prefix string) ([]domain.Setting, error) {
	var out []domain.Setting
	for k, v := range s.settings {
		if prefix == "" || len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, domain.Setting{Key: k, Value: v})
		}
	}
	return out, nil
}

func (s *stubRepo) Set(_ context.Context, key, value string) (*domain.Setting, error) {
	s.setCalls++
	s.settings[key] = value
	return &domain.Setting{Key: key, Value: value}, nil
}

func (s *stubRepo) SetMany(_ context.Context, pairs map[string]string) error {
	s.manyPairs = pairs
	for k, v := range pairs {
		s.settings[k] = v
	}
	return nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, topic string, payload any) {
	b.published = append(b.published, events.Event{Topic: topic, Payload: payload})
}

func TestSetPublishesContentUpdated(t *testing.T) {
	repo := newStubRepo()
	bus := &recordingBus{}
	svc := New(repo, bus)

	if _, err := svc.Set(context.Background(), "home.hero_text", "Splash!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bus.published) != 1 || bus.published[0].Topic != events.TopicContentUpdated {
		t.Fatalf("expected one ContentUpdated event, got %+v", bus.published)
	}
	payload, ok := bus.published[0].Payload.(events.ContentUpdated)
	if !ok || payload.Key != "home.hero_text" || payload.Value != "Splash!" {
		t.Fatalf("unexpected payload %+v", bus.published[0].Payload)
	}
}

func TestSetRejectsEmptyKey(t *testing.T) {
	svc := New(newStubRepo(), nil)
	if _, err := svc.Set(context.Background(), "   ", "v"); err == nil {
		t.Fatal("expected error")
	}
}

func TestUpdateBrandingWritesAllKeysAtOnce(t *testing.T) {
	repo := newStubRepo()
	bus := &recordingBus{}
	svc := New(repo, bus)

	name := "Daddy Bath Bomb TH"
	logo := "https://img.example/logo.png"
	if err := svc.UpdateBranding(context.Background(), BrandingInput{SiteName: &name, LogoURL: &logo}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.manyPairs) != 2 {
		t.Fatalf("expected one SetMany call with 2 pairs, got %+v", repo.manyPairs)
	}
	if repo.setCalls != 0 {
		t.Fatal("branding must not use per-key writes")
	}
	if len(bus.published) != 1 || bus.published[0].Topic != events.TopicBrandingUpdated {
		t.Fatalf("expected one BrandingUpdated event, got %+v", bus.published)
	}
}

func TestUpdateBrandingValidatesColors(t *testing.T) {
	svc := New(newStubRepo(), nil)
	bad := "red"
	err := svc.UpdateBranding(context.Background(), BrandingInput{PrimaryColor: &bad})
	if err == nil {
		t.Fatal("expected color validation error")
	}
}

func TestUpdateBrandingRequiresAField(t *testing.T) {
	svc := New(newStubRepo(), nil)
	if err := svc.UpdateBranding(context.Background(), BrandingInput{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBrandingFallsBackToDefaults(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo, nil)

	b, err := svc.Branding(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.SiteName != "Daddy Bath Bomb" || b.PrimaryColor != "#FF6BB3" {
		t.Fatalf("unexpected defaults %+v", b)
	}

	repo.settings[KeySiteName] = "Custom Shop"
	repo.settings[KeyLogoURL] = "https://img.example/logo.png"
	b, err = svc.Branding(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.SiteName != "Custom Shop" || b.LogoURL != "https://img.example/logo.png" {
		t.Fatalf("unexpected branding %+v", b)
	}
	if b.PrimaryColor != "#FF6BB3" {
		t.Fatalf("unset color must keep default, got %q", b.PrimaryColor)
	}
}
