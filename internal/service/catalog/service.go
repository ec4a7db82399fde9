package catalog

import (
	"context"
	"fmt"
	"strings"

	"daddybathbomb/internal/domain"
	productrepo "daddybathbomb/internal/repository/product"
)

type productRepo interface {
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// Service answers catalog read queries and the admin product upsert.
type Service struct {
	repo productRepo
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

type ListInput struct {
	Category string
	Search   string
	Page     int
	PageSize int
}

type Page struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// List applies category/search filters with offset/limit pagination.
func (s *Service) List(ctx context.Context, in ListInput) (*Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	products, total, err := s.repo.List(ctx, productrepo.Filter{
		Category: strings.TrimSpace(in.Category),
		Search:   strings.TrimSpace(in.Search),
		Offset:   (page - 1) * size,
		Limit:    size,
	})
	if err != nil {
		return nil, err
	}
	return &Page{Products: products, Total: total, Page: page, PageSize: size}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("name required: %w", domain.ErrValidation)
	}
	if p.PriceSatang < 0 {
		return nil, fmt.Errorf("price must not be negative: %w", domain.ErrValidation)
	}
	if p.StockQuantity < 0 {
		return nil, fmt.Errorf("stock must not be negative: %w", domain.ErrValidation)
	}
	if p.Currency == "" {
		p.Currency = "THB"
	}
	return s.repo.Upsert(ctx, p)
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size
}
