package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"daddybathbomb/internal/domain"
)

type stubCarts struct {
	cart    domain.Cart
	cleared bool
}

func (s *stubCarts) Get(_ context.Context, _ string) domain.Cart {
	return s.cart
}

func (s *stubCarts) Clear(_ context.Context, token string) domain.Cart {
	s.cleared = true
	return domain.Cart{Token: token}
}

type stubOrders struct {
	created   *domain.Order
	createErr error
	getOrder  *domain.Order
	getErr    error
	lastInput domain.Order
	newStatus string
}

func (s *stubOrders) CreateWithItems(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastInput = o
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := o
	out.ID = "order-1"
	return &out, nil
}

func (s *stubOrders) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubOrders) ListByCustomer(_ context.Context, _ string) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrders) UpdateStatus(_ context.Context, _, status string) error {
	s.newStatus = status
	return nil
}

func twoItemCart() domain.Cart {
	return domain.Cart{
		Token: "tok",
		Items: []domain.CartItem{
			{ProductID: "a", ProductName: "Galaxy Fizz", PriceSatang: 15000, Quantity: 2},
			{ProductID: "b", ProductName: "Mango Splash", PriceSatang: 8000, Quantity: 1},
		},
	}
}

func validInput() SubmitInput {
	return SubmitInput{
		CartToken:  "tok",
		CustomerID: "cust-1",
		Shipping: domain.ShippingInfo{
			Name:    "Somchai",
			Phone:   "0812345678",
			Address: "1 Sukhumvit Rd",
		},
		PaymentMethod: domain.PaymentQRPay,
	}
}

func TestSubmitTotalsMatchLineItems(t *testing.T) {
	carts := &stubCarts{cart: twoItemCart()}
	orders := &stubOrders{}
	svc := New(carts, orders, nil, nil)

	created, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum int64
	for _, item := range created.Items {
		if item.TotalSatang != item.UnitSatang*int64(item.Quantity) {
			t.Fatalf("line total mismatch: %+v", item)
		}
		sum += item.TotalSatang
	}
	if created.TotalSatang != sum {
		t.Fatalf("header total %d != sum of lines %d", created.TotalSatang, sum)
	}
	if created.TotalSatang != 38000 {
		t.Fatalf("expected 38000, got %d", created.TotalSatang)
	}
	if created.Status != domain.OrderPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if !strings.HasPrefix(created.Number, "DBB-") {
		t.Fatalf("unexpected order number %q", created.Number)
	}
}

func TestSubmitClearsCartOnSuccess(t *testing.T) {
	carts := &stubCarts{cart: twoItemCart()}
	svc := New(carts, &stubOrders{}, nil, nil)

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !carts.cleared {
		t.Fatal("cart was not cleared")
	}
}

func TestSubmitKeepsCartOnRepoError(t *testing.T) {
	carts := &stubCarts{cart: twoItemCart()}
	orders := &stubOrders{createErr: errors.New("db down")}
	svc := New(carts, orders, nil, nil)

	if _, err := svc.Submit(context.Background(), validInput()); err == nil {
		t.Fatal("expected error")
	}
	if carts.cleared {
		t.Fatal("cart must survive a failed checkout")
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	svc := New(&stubCarts{}, &stubOrders{}, nil, nil)
	if _, err := svc.Submit(context.Background(), validInput()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitRejectsUnknownPaymentMethod(t *testing.T) {
	in := validInput()
	in.PaymentMethod = "cash_on_delivery"
	svc := New(&stubCarts{cart: twoItemCart()}, &stubOrders{}, nil, nil)
	if _, err := svc.Submit(context.Background(), in); !errors.Is(err, ErrBadPaymentMethod) {
		t.Fatalf("expected ErrBadPaymentMethod, got %v", err)
	}
}

func TestSubmitRequiresCustomer(t *testing.T) {
	in := validInput()
	in.CustomerID = "  "
	svc := New(&stubCarts{cart: twoItemCart()}, &stubOrders{}, nil, nil)
	if _, err := svc.Submit(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected domain.ErrValidation, got %v", err)
	}
}

func TestSubmitValidatesShipping(t *testing.T) {
	in := validInput()
	in.Shipping.Phone = ""
	svc := New(&stubCarts{cart: twoItemCart()}, &stubOrders{}, nil, nil)
	if _, err := svc.Submit(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected domain.ErrValidation, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{domain.OrderPending, domain.OrderConfirmed, true},
		{domain.OrderPending, domain.OrderCancelled, true},
		{domain.OrderConfirmed, domain.OrderShipped, true},
		{domain.OrderShipped, domain.OrderDelivered, true},
		{domain.OrderPending, domain.OrderShipped, false},
		{domain.OrderDelivered, domain.OrderCancelled, false},
		{domain.OrderCancelled, domain.OrderConfirmed, false},
	}
	for _, tc := range cases {
		orders := &stubOrders{getOrder: &domain.Order{ID: "o1", Status: tc.from}}
		svc := New(&stubCarts{}, orders, nil, nil)
		err := svc.UpdateStatus(context.Background(), "o1", tc.to)
		if tc.ok && err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && !errors.Is(err, ErrBadTransition) {
			t.Fatalf("%s -> %s: expected ErrBadTransition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	orders := &stubOrders{getOrder: &domain.Order{ID: "o1", CustomerID: "other"}}
	svc := New(&stubCarts{}, orders, nil, nil)
	if _, err := svc.Get(context.Background(), "cust-1", "o1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPaymentInstructionsPerMethod(t *testing.T) {
	for _, m := range []string{domain.PaymentLineChat, domain.PaymentQRPay, domain.PaymentBankTransfer} {
		if PaymentInstructions(m) == "" {
			t.Fatalf("no instructions for %s", m)
		}
	}
	if PaymentInstructions("other") != "" {
		t.Fatal("expected empty instructions for unknown method")
	}
}
