package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"daddybathbomb/internal/domain"
	productrepo "daddybathbomb/internal/repository/product"
	tokenrepo "daddybathbomb/internal/repository/token"
	"daddybathbomb/internal/service/banner"
	"daddybathbomb/internal/service/cart"
	"daddybathbomb/internal/service/catalog"
	"daddybathbomb/internal/service/checkout"
	"daddybathbomb/internal/service/content"
	"daddybathbomb/internal/service/customer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type memProducts struct {
	products []domain.Product
}

func (m *memProducts) List(_ context.Context, _ productrepo.Filter) ([]domain.Product, int, error) {
	return m.products, len(m.products), nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memProducts) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.products = append(m.products, p)
	return &p, nil
}

type memBanners struct {
	banners []domain.HeroBanner
}

func (m *memBanners) List(_ context.Context) ([]domain.HeroBanner, error) {
	return m.banners, nil
}

func (m *memBanners) Upsert(_ context.Context, b domain.HeroBanner) (*domain.HeroBanner, error) {
	for i := range m.banners {
		if m.banners[i].DisplayOrder == b.DisplayOrder {
			m.banners[i] = b
			return &b, nil
		}
	}
	m.banners = append(m.banners, b)
	return &b, nil
}

func (m *memBanners) SetActive(_ context.Context, displayOrder int, active bool) error {
	for i := range m.banners {
		if m.banners[i].DisplayOrder == displayOrder {
			m.banners[i].IsActive = active
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSnaps struct {
	rows map[string][]byte
}

func (m *memSnaps) Load(_ context.Context, token string) ([]byte, error) {
	items, ok := m.rows[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return items, nil
}

func (m *memSnaps) Store(_ context.Context, token string, items []byte) error {
	m.rows[token] = items
	return nil
}

func (m *memSnaps) Delete(_ context.Context, token string) error {
	delete(m.rows, token)
	return nil
}

type memOrders struct {
	orders map[string]*domain.Order
}

func (m *memOrders) CreateWithItems(_ context.Context, o domain.Order) (*domain.Order, error) {
	o.ID = uuid.NewString()
	m.orders[o.ID] = &o
	return &o, nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (m *memOrders) ListByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := m.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

type memSettings struct {
	rows map[string]string
}

func (m *memSettings) Get(_ context.Context, key string) (*domain.Setting, error) {
	v, ok := m.rows[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Setting{Key: key, Value: v}, nil
}

func (m *memSettings) List(_ context.Context, prefix string) ([]domain.Setting, error) {
	var out []domain.Setting
	for k, v := range m.rows {
		if strings.HasPrefix(k, prefix) {
			out = append(out, domain.Setting{Key: k, Value: v})
		}
	}
	return out, nil
}

func (m *memSettings) Set(_ context.Context, key, value string) (*domain.Setting, error) {
	m.rows[key] = value
	return &domain.Setting{Key: key, Value: value}, nil
}

func (m *memSettings) SetMany(_ context.Context, pairs map[string]string) error {
	for k, v := range pairs {
		m.rows[k] = v
	}
	return nil
}

type memCustomers struct {
	customers map[string]*domain.Customer
}

func (m *memCustomers) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	for _, existing := range m.customers {
		if existing.Email == c.Email {
			return nil, domain.ErrAlreadyExists
		}
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	m.customers[c.ID] = &c
	return &c, nil
}

func (m *memCustomers) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range m.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memCustomers) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

type memTokens struct {
	tokens map[string]tokenrepo.RefreshToken
}

func (m *memTokens) Create(_ context.Context, t tokenrepo.RefreshToken) error {
	if _, ok := m.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	m.tokens[t.Token] = t
	return nil
}

func (m *memTokens) Get(_ context.Context, token string) (*tokenrepo.RefreshToken, error) {
	t, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memTokens) Delete(_ context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

type stubUploads struct {
	url string
}

func (s *stubUploads) Save(_ context.Context, _ string, r io.Reader) (string, error) {
	io.Copy(io.Discard, r)
	return s.url, nil
}

// testEnv bundles the stub repos behind a fully wired router so tests
// can drive the API end to end without a database.
type testEnv struct {
	router    *gin.Engine
	products  *memProducts
	banners   *memBanners
	orders    *memOrders
	settings  *memSettings
	customers *memCustomers
	custSvc   *customer.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := &memProducts{}
	banners := &memBanners{}
	orders := &memOrders{orders: make(map[string]*domain.Order)}
	settings := &memSettings{rows: make(map[string]string)}
	customers := &memCustomers{customers: make(map[string]*domain.Customer)}
	tokens := &memTokens{tokens: make(map[string]tokenrepo.RefreshToken)}
	snaps := &memSnaps{rows: make(map[string][]byte)}

	cartStore := cart.NewStore(snaps, logDiscard())
	custSvc := customer.New(customers, tokens, "test-secret", time.Hour, 24*time.Hour)

	router := buildRouter(logDiscard(), nil, Deps{
		CatalogSvc:  catalog.New(products),
		BannerSvc:   banner.New(banners, nil, logDiscard()),
		CartStore:   cartStore,
		CheckoutSvc: checkout.New(cartStore, orders, nil, logDiscard()),
		ContentSvc:  content.New(settings, nil),
		CustomerSvc: custSvc,
		Uploads:     &stubUploads{url: "http://localhost/media/test.png"},
	})

	return &testEnv{
		router:    router,
		products:  products,
		banners:   banners,
		orders:    orders,
		settings:  settings,
		customers: customers,
		custSvc:   custSvc,
	}
}

// loginAs seeds a customer and returns a bearer token for them.
func (e *testEnv) loginAs(t *testing.T, email string, admin bool) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("sekret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := e.customers.Create(context.Background(), domain.Customer{
		Email:        email,
		Nickname:     "tester",
		PasswordHash: string(hash),
		IsAdmin:      admin,
	}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	sess, err := e.custSvc.Login(context.Background(), email, "sekret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return sess.AccessToken
}

func (e *testEnv) do(t *testing.T, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)
	env.products.products = []domain.Product{
		{ID: "p1", Name: "Galaxy Fizz", PriceSatang: 15000, Currency: "THB"},
	}

	rec := env.do(t, http.MethodGet, "/api/products", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Galaxy Fizz"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/products/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBannerRotationServesDefaultsOnEmptyStore(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/banners", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Banners []domain.HeroBanner `json:"banners"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Banners) != 5 {
		t.Fatalf("expected 5 banners, got %d", len(payload.Banners))
	}
}

func TestCartAddMintsToken(t *testing.T) {
	env := newTestEnv(t)
	env.products.products = []domain.Product{
		{ID: "p1", Name: "Galaxy Fizz", PriceSatang: 15000, Currency: "THB"},
	}

	rec := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":2}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	token := rec.Header().Get(cartTokenHeader)
	if token == "" {
		t.Fatal("expected a minted cart token header")
	}

	rec = env.do(t, http.MethodGet, "/api/cart", "", map[string]string{cartTokenHeader: token})
	var got domain.Cart
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalItems != 2 || got.TotalSatang != 30000 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if rec.Header().Get(cartTokenHeader) != token {
		t.Fatal("token must be echoed back on every cart response")
	}
}

func TestCheckoutRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/checkout", `{"paymentMethod":"qr_pay"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	env.products.products = []domain.Product{
		{ID: "p1", Name: "Galaxy Fizz", PriceSatang: 15000, Currency: "THB"},
	}
	token := env.loginAs(t, "buyer@example.com", false)

	rec := env.do(t, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":2}`, nil)
	cartToken := rec.Header().Get(cartTokenHeader)

	body := `{"shipping":{"name":"Somchai","phone":"0812345678","address":"1 Sukhumvit Rd"},"paymentMethod":"qr_pay"}`
	rec = env.do(t, http.MethodPost, "/api/checkout", body, map[string]string{
		"Authorization": "Bearer " + token,
		cartTokenHeader: cartToken,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"paymentInstructions"`) {
		t.Fatalf("expected payment instructions in body: %s", rec.Body.String())
	}

	// The cart is consumed by a successful checkout.
	rec = env.do(t, http.MethodGet, "/api/cart", "", map[string]string{cartTokenHeader: cartToken})
	var got domain.Cart
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalItems != 0 {
		t.Fatalf("cart should be empty after checkout, got %+v", got)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.loginAs(t, "buyer@example.com", false)

	body := `{"shipping":{"name":"Somchai","phone":"0812345678","address":"1 Sukhumvit Rd"},"paymentMethod":"qr_pay"}`
	rec := env.do(t, http.MethodPost, "/api/checkout", body, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
