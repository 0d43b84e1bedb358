package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

type OrderStatus string

const (
	StatusReceived       OrderStatus = "RECEIVED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusReady          OrderStatus = "READY"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusCompleted      OrderStatus = "COMPLETED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the six known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type OrderType string

const (
	TypeWalkIn   OrderType = "WALK_IN"
	TypeDineIn   OrderType = "DINE_IN"
	TypeDelivery OrderType = "DELIVERY"
)

type MenuItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"img"`
}

type InventoryRecord struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
}

// LowStock reports whether the record has fallen to or below its threshold.
func (r InventoryRecord) LowStock() bool {
	return r.Quantity <= r.LowStockThreshold
}

type Reservation struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	PartySize int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

type LineItem struct {
	MenuID *int    `json:"menu_id,omitempty"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}

type LogEntry struct {
	Status    OrderStatus `json:"status"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

type Order struct {
	ID              int         `json:"id"`
	CustomerName    string      `json:"customer_name"`
	Type            OrderType   `json:"order_type"`
	TableNo         string      `json:"table_no,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	Items           []LineItem  `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	QRCode          string      `json:"qr_code,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Log             []LogEntry  `json:"log"`
}

type User struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"-" yaml:"password"`
	Role     string `json:"role" yaml:"role"`
}

type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AnalyticsSummary struct {
	TotalOrders  int               `json:"total_orders"`
	TotalRevenue float64           `json:"total_revenue"`
	TopItems     []ItemCount       `json:"top_items"`
	LowStock     []InventoryRecord `json:"low_stock"`
}

// OrderDraft is what order creation takes in before normalization.
type OrderDraft struct {
	CustomerName    string
	Type            OrderType
	TableNo         string
	DeliveryAddress string
	Items           []OrderItemInput
}

// InlineItem is a caller-supplied line item carrying its own price.
type InlineItem struct {
	MenuID *int
	Name   string
	Price  float64
	Qty    int
}

// OrderItemInput is the tagged variant an order item arrives as on the
// wire: either a bare menu id or an inline object with its own name and
// price. Shapes matching neither leave both fields nil and are dropped
// during normalization.
type OrderItemInput struct {
	MenuID *int
	Inline *InlineItem
}

func (in *OrderItemInput) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		in.MenuID = &id
		return nil
	}

	var obj struct {
		ID     *int        `json:"id"`
		MenuID *int        `json:"menu_id"`
		Name   *string     `json:"name"`
		Price  *LooseFloat `json:"price"`
		Qty    *LooseFloat `json:"qty"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	if obj.Name == nil || obj.Price == nil {
		return nil
	}

	item := InlineItem{Name: *obj.Name, Price: float64(*obj.Price), Qty: 1}
	if obj.Qty != nil {
		item.Qty = int(*obj.Qty)
	}
	switch {
	case obj.ID != nil:
		item.MenuID = obj.ID
	case obj.MenuID != nil:
		item.MenuID = obj.MenuID
	}
	in.Inline = &item
	return nil
}

// LooseFloat accepts a JSON number or a numeric string, mirroring the
// permissive coercion the API has always done for price and quantity.
type LooseFloat float64

func (f *LooseFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = LooseFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = LooseFloat(n)
	return nil
}

// CoerceFloat applies the same coercion to an already-decoded value,
// as partial-update payloads arrive as generic maps.
func CoerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		n, err := t.Float64()
		return n, err == nil
	case string:
		n, err := strconv.ParseFloat(t, 64)
		return n, err == nil
	}
	return 0, false
}

// MenuItemPatch carries the fields present in a partial menu update.
type MenuItemPatch struct {
	Name     *string
	Price    *float64
	Category *string
}

// InventoryPatch carries the fields present in a partial inventory update.
type InventoryPatch struct {
	Quantity          *float64
	LowStockThreshold *float64
}
