package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/events"
	"github.com/google/uuid"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBadPaymentMethod is returned for an unknown payment method.
	ErrBadPaymentMethod = errors.New("unsupported payment method")
	// ErrBadTransition is returned for an invalid status change.
	ErrBadTransition = errors.New("invalid status transition")
)

type cartStore interface {
	Get(ctx context.Context, token string) domain.Cart
	Clear(ctx context.Context, token string) domain.Cart
}

type orderRepo interface {
	CreateWithItems(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload any)
}

// Service turns the current cart plus shipping/payment details into a
// persisted order. Header and line items are written in a single
// transaction by the repository, so a partial order cannot exist.
type Service struct {
	carts  cartStore
	orders orderRepo
	bus    publisher
	logger *log.Logger
}

func New(carts cartStore, orders orderRepo, bus publisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{carts: carts, orders: orders, bus: bus, logger: logger}
}

type SubmitInput struct {
	CartToken     string
	CustomerID    string
	Shipping      domain.ShippingInfo
	PaymentMethod string
}

// Submit snapshots the cart, writes the order, clears the cart, and
// publishes an OrderCreated event. The header total always equals the
// sum of the item line totals.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.Order, error) {
	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, fmt.Errorf("customer required: %w", domain.ErrValidation)
	}
	if err := validateShipping(in.Shipping); err != nil {
		return nil, err
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, ErrBadPaymentMethod
	}

	cart := s.carts.Get(ctx, in.CartToken)
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := domain.Order{
		Number:        newOrderNumber(),
		CustomerID:    in.CustomerID,
		Shipping:      in.Shipping,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.OrderPending,
		Items:         make([]domain.OrderItem, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		line := domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitSatang:  item.PriceSatang,
			TotalSatang: item.PriceSatang * int64(item.Quantity),
		}
		order.TotalSatang += line.TotalSatang
		order.Items = append(order.Items, line)
	}

	created, err := s.orders.CreateWithItems(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.carts.Clear(ctx, in.CartToken)
	if s.bus != nil {
		s.bus.Publish(ctx, events.TopicOrderCreated, events.OrderCreated{
			OrderID:     created.ID,
			Number:      created.Number,
			TotalSatang: created.TotalSatang,
		})
	}
	s.logger.Printf("checkout: order %s created customer=%s total=%d", created.Number, created.CustomerID, created.TotalSatang)
	return created, nil
}

func (s *Service) Get(ctx context.Context, customerID, orderID string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *Service) ListForCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

// transitions is the allowed order-status state machine.
var transitions = map[string][]string{
	domain.OrderPending:   {domain.OrderConfirmed, domain.OrderCancelled},
	domain.OrderConfirmed: {domain.OrderShipped, domain.OrderCancelled},
	domain.OrderShipped:   {domain.OrderDelivered},
}

// UpdateStatus applies an admin status change after validating the
// transition.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) error {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	allowed := false
	for _, next := range transitions[o.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, o.Status, status)
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}

// PaymentInstructions returns the static instruction text rendered
// after checkout. There is no live payment processing.
func PaymentInstructions(method string) string {
	switch method {
	case domain.PaymentLineChat:
		return "Add our LINE official account @daddybathbomb and send your order number to arrange payment."
	case domain.PaymentQRPay:
		return "Scan the PromptPay QR on the confirmation page and keep the slip for reference."
	case domain.PaymentBankTransfer:
		return "Transfer the order total to Kasikorn Bank 012-3-45678-9 (Daddy Bath Bomb Co.) citing your order number."
	default:
		return ""
	}
}

func validPaymentMethod(m string) bool {
	switch m {
	case domain.PaymentLineChat, domain.PaymentQRPay, domain.PaymentBankTransfer:
		return true
	}
	return false
}

func validateShipping(s domain.ShippingInfo) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("shipping name required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(s.Phone) == "" {
		return fmt.Errorf("shipping phone required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(s.Address) == "" {
		return fmt.Errorf("shipping address required: %w", domain.ErrValidation)
	}
	return nil
}

func newOrderNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("DBB-%s-%s", time.Now().UTC().Format("20060102"), short)
}
