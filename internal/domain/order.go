package domain

import "time"

// Payment methods accepted at checkout. No real payment processing
// happens here; the storefront renders static instructions per method.
const (
	PaymentLineChat     = "line_chat"
	PaymentQRPay        = "qr_pay"
	PaymentBankTransfer = "bank_transfer"
)

// Order statuses. Transitions are validated server-side, see the
// checkout service.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type ShippingInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Note     string `json:"note,omitempty"`
}

type Order struct {
	ID            string       `json:"id"`
	Number        string       `json:"number"`
	CustomerID    string       `json:"customerId"`
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"paymentMethod"`
	Status        string       `json:"status"`
	TotalSatang   int64        `json:"totalSatang"`
	Items         []OrderItem  `json:"items,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// OrderItem is a snapshot of a cart line taken at checkout time.
type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitSatang  int64  `json:"unitSatang"`
	TotalSatang int64  `json:"totalSatang"`
}
