package cart

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/repository/cartsnap"
	"github.com/google/uuid"
)

// Store keeps the authoritative in-session cart per token, independent
// of authentication state. Every mutation writes a JSON snapshot
// through to the snapshot repository so a cart survives a restart; the
// in-memory copy wins for the lifetime of the process, and a snapshot
// that fails to load or parse degrades to an empty cart instead of an
// error.
type Store struct {
	mu     sync.Mutex
	carts  map[string][]domain.CartItem
	snaps  cartsnap.Repository
	logger *log.Logger
}

func NewStore(snaps cartsnap.Repository, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		carts:  make(map[string][]domain.CartItem),
		snaps:  snaps,
		logger: logger,
	}
}

// NewToken mints an opaque cart token for a client that does not carry
// one yet.
func (s *Store) NewToken() string {
	return uuid.NewString()
}

// Get returns the cart for token with totals folded from the current
// item list. Totals are never stored.
func (s *Store) Get(ctx context.Context, token string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.ensure(ctx, token)
	return fold(token, items)
}

// AddItem merges by product id: an existing item's quantity is
// incremented, otherwise a new item is appended. Quantities below one
// count as one. Stock is not validated here. AddItem cannot fail.
func (s *Store) AddItem(ctx context.Context, token string, p domain.Product, quantity int) domain.Cart {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.ensure(ctx, token)
	merged := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		var image string
		if len(p.ImageURLs) > 0 {
			image = p.ImageURLs[0]
		}
		items = append(items, domain.CartItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			PriceSatang: p.PriceSatang,
			Quantity:    quantity,
			ImageURL:    image,
		})
	}
	s.commit(ctx, token, items)
	return fold(token, items)
}

// RemoveItem drops the matching item; absent product ids are a no-op,
// not an error.
func (s *Store) RemoveItem(ctx context.Context, token, productID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.ensure(ctx, token)
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.commit(ctx, token, kept)
	return fold(token, kept)
}

// UpdateQuantity sets the quantity for productID. A quantity of zero or
// below behaves exactly like RemoveItem. Unknown product ids are a
// no-op.
func (s *Store) UpdateQuantity(ctx context.Context, token, productID string, quantity int) domain.Cart {
	if quantity <= 0 {
		return s.RemoveItem(ctx, token, productID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.ensure(ctx, token)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			s.commit(ctx, token, items)
			break
		}
	}
	return fold(token, items)
}

// Clear resets the cart to empty and drops its snapshot.
func (s *Store) Clear(ctx context.Context, token string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[token] = nil
	if s.snaps != nil {
		if err := s.snaps.Delete(ctx, token); err != nil {
			s.logger.Printf("cart store: drop snapshot token=%s: %v", token, err)
		}
	}
	return fold(token, nil)
}

// ensure loads the snapshot for a token not seen by this process yet.
// Callers must hold the mutex.
func (s *Store) ensure(ctx context.Context, token string) []domain.CartItem {
	if items, ok := s.carts[token]; ok {
		return items
	}
	items := s.loadSnapshot(ctx, token)
	s.carts[token] = items
	return items
}

func (s *Store) loadSnapshot(ctx context.Context, token string) []domain.CartItem {
	if s.snaps == nil {
		return nil
	}
	raw, err := s.snaps.Load(ctx, token)
	if err != nil {
		if err != domain.ErrNotFound {
			s.logger.Printf("cart store: load snapshot token=%s: %v", token, err)
		}
		return nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Printf("cart store: discarding corrupt snapshot token=%s: %v", token, err)
		return nil
	}
	// Snapshots are trusted only as far as the invariants go: drop
	// anything that would violate them.
	kept := items[:0]
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 || seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		kept = append(kept, item)
	}
	return kept
}

// commit stores the new item list in memory and writes the snapshot
// through. Persistence failures are logged, never surfaced: the
// snapshot is a durability aid, not the source of truth.
func (s *Store) commit(ctx context.Context, token string, items []domain.CartItem) {
	s.carts[token] = items
	if s.snaps == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Printf("cart store: marshal snapshot token=%s: %v", token, err)
		return
	}
	if err := s.snaps.Store(ctx, token, raw); err != nil {
		s.logger.Printf("cart store: store snapshot token=%s: %v", token, err)
	}
}

func fold(token string, items []domain.CartItem) domain.Cart {
	out := domain.Cart{Token: token, Items: make([]domain.CartItem, len(items))}
	copy(out.Items, items)
	for _, item := range items {
		out.TotalItems += item.Quantity
		out.TotalSatang += item.PriceSatang * int64(item.Quantity)
	}
	return out
}
