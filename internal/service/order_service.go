package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"srms-backend/internal/domain"
	"srms-backend/internal/storage"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status")
)

type OrderService struct {
	store     *storage.Store
	consumer  IngredientConsumer
	qrEncoder QRGenerator
}

func NewOrderService(store *storage.Store, consumer IngredientConsumer, qr QRGenerator) *OrderService {
	return &OrderService{store: store, consumer: consumer, qrEncoder: qr}
}

// Create normalizes the submitted items, freezes the total and appends
// the order with the next sequential id. Unknown menu ids and
// unrecognized item shapes are dropped without error.
func (s *OrderService) Create(draft domain.OrderDraft) domain.Order {
	items, total := s.normalize(draft.Items)

	now := time.Now()
	order := domain.Order{
		CustomerName:    draft.CustomerName,
		Type:            draft.Type,
		TableNo:         draft.TableNo,
		DeliveryAddress: draft.DeliveryAddress,
		Items:           items,
		Total:           total,
		Status:          domain.StatusReceived,
		CreatedAt:       now,
		UpdatedAt:       now,
		Log: []domain.LogEntry{{
			Status:    domain.StatusReceived,
			Message:   "Order created",
			Timestamp: now,
		}},
	}

	created := s.store.CreateOrder(order)

	if s.qrEncoder != nil {
		if png, err := s.qrEncoder.Generate(created.ID); err == nil {
			link := s.QRLink(created.ID)
			s.store.SaveOrderQR(created.ID, png, link)
			created.QRCode = link
		}
	}

	if s.consumer != nil {
		s.consumer.ConsumeForOrder(created.Items)
	}

	return created
}

func (s *OrderService) normalize(inputs []domain.OrderItemInput) ([]domain.LineItem, float64) {
	items := []domain.LineItem{}
	total := 0.0

	for _, in := range inputs {
		switch {
		case in.Inline != nil:
			// Caller-supplied price is trusted, no catalog cross-check.
			items = append(items, domain.LineItem{
				MenuID: in.Inline.MenuID,
				Name:   in.Inline.Name,
				Price:  in.Inline.Price,
				Qty:    in.Inline.Qty,
			})
			total += in.Inline.Price * float64(in.Inline.Qty)
		case in.MenuID != nil:
			menuItem, ok := s.store.GetMenuItem(*in.MenuID)
			if !ok {
				continue
			}
			id := menuItem.ID
			items = append(items, domain.LineItem{
				MenuID: &id,
				Name:   menuItem.Name,
				Price:  menuItem.Price,
				Qty:    1,
			})
			total += menuItem.Price
		}
	}
	return items, total
}

// List applies the optional filters; they are ANDed. kitchenOnly
// narrows to orders a chef still has to pick up.
func (s *OrderService) List(status, orderType string, kitchenOnly bool) []domain.Order {
	orders := s.store.ListOrders()
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != domain.OrderStatus(status) {
			continue
		}
		if orderType != "" && o.Type != domain.OrderType(orderType) {
			continue
		}
		if kitchenOnly && o.Status != domain.StatusReceived && o.Status != domain.StatusPreparing {
			continue
		}
		result = append(result, o)
	}
	return result
}

func (s *OrderService) Get(id int) (domain.Order, error) {
	order, ok := s.store.GetOrder(id)
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus validates the enum before looking the order up. Any
// transition between valid statuses is allowed, including re-entering
// the current one; the original backend never enforced a state machine
// and callers depend on that.
func (s *OrderService) UpdateStatus(id int, status string) (domain.Order, error) {
	newStatus := domain.OrderStatus(status)
	if !newStatus.Valid() {
		return domain.Order{}, ErrInvalidStatus
	}
	order, ok := s.store.UpdateOrderStatus(id, newStatus, "Status changed to "+status)
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// KitchenQueue is the chef-facing view: everything not yet completed
// or cancelled, oldest first.
func (s *OrderService) KitchenQueue() []domain.Order {
	orders := s.store.ListOrders()
	queue := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == domain.StatusCompleted || o.Status == domain.StatusCancelled {
			continue
		}
		queue = append(queue, o)
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].CreatedAt.Before(queue[j].CreatedAt)
	})
	return queue
}

func (s *OrderService) QRCode(id int) ([]byte, error) {
	if _, ok := s.store.GetOrder(id); !ok {
		return nil, ErrOrderNotFound
	}
	png := s.store.GetOrderQR(id)
	if len(png) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(id)
		if err != nil {
			return nil, err
		}
		s.store.SaveOrderQR(id, regenerated, s.QRLink(id))
		return regenerated, nil
	}
	return png, nil
}

func (s *OrderService) QRLink(id int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", id)
}

var _ OrderServiceInterface = (*OrderService)(nil)
