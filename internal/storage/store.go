package storage

import (
	"strings"
	"sync"
	"time"

	"srms-backend/internal/domain"
)

// Store owns every in-memory collection plus the monotonic id counters.
// The original backend relied on an effectively single-threaded request
// model; net/http serves handlers concurrently, so the store serializes
// access itself.
type Store struct {
	mu sync.RWMutex

	menu         []domain.MenuItem
	inventory    []domain.InventoryRecord
	reservations []domain.Reservation
	orders       []*domain.Order
	users        []domain.User
	qrCodes      map[int][]byte

	nextOrderID       int
	nextReservationID int
}

func NewStore(seed Seed) *Store {
	s := &Store{
		menu:              seed.Menu,
		inventory:         seed.Inventory,
		users:             seed.Users,
		reservations:      []domain.Reservation{},
		orders:            []*domain.Order{},
		qrCodes:           make(map[int][]byte),
		nextOrderID:       1,
		nextReservationID: 1,
	}
	return s
}

// ---- users ----

func (s *Store) FindUser(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

// ---- menu ----

func (s *Store) ListMenu() []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

func (s *Store) GetMenuItem(id int) (domain.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.menu {
		if m.ID == id {
			return m, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *Store) PatchMenuItem(id int, patch domain.MenuItemPatch) (domain.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.menu[i].Name = *patch.Name
		}
		if patch.Price != nil {
			s.menu[i].Price = *patch.Price
		}
		if patch.Category != nil {
			s.menu[i].Category = *patch.Category
		}
		return s.menu[i], true
	}
	return domain.MenuItem{}, false
}

// ---- inventory ----

func (s *Store) ListInventory() []domain.InventoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.InventoryRecord, len(s.inventory))
	copy(out, s.inventory)
	return out
}

func (s *Store) PatchInventoryItem(id int, patch domain.InventoryPatch) (domain.InventoryRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID != id {
			continue
		}
		if patch.Quantity != nil {
			s.inventory[i].Quantity = *patch.Quantity
		}
		if patch.LowStockThreshold != nil {
			s.inventory[i].LowStockThreshold = *patch.LowStockThreshold
		}
		return s.inventory[i], true
	}
	return domain.InventoryRecord{}, false
}

func (s *Store) LowStock() []domain.InventoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.InventoryRecord{}
	for _, r := range s.inventory {
		if r.LowStock() {
			out = append(out, r)
		}
	}
	return out
}

// ConsumeInventory decrements every record whose name starts with the
// given prefix, flooring at zero.
func (s *Store) ConsumeInventory(namePrefix string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if !strings.HasPrefix(s.inventory[i].Name, namePrefix) {
			continue
		}
		s.inventory[i].Quantity -= amount
		if s.inventory[i].Quantity < 0 {
			s.inventory[i].Quantity = 0
		}
	}
}

// ---- reservations ----

func (s *Store) CreateReservation(res domain.Reservation) domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	res.ID = s.nextReservationID
	s.nextReservationID++
	res.CreatedAt = time.Now()
	s.reservations = append(s.reservations, res)
	return res
}

func (s *Store) ListReservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// ---- orders ----

// CreateOrder assigns the next sequential id and appends the order.
func (s *Store) CreateOrder(order domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = s.nextOrderID
	s.nextOrderID++
	stored := order
	s.orders = append(s.orders, &stored)
	return cloneOrder(&stored)
}

func (s *Store) ListOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

func (s *Store) GetOrder(id int) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return domain.Order{}, false
}

// UpdateOrderStatus sets the status, bumps updated_at and appends a log
// entry. Any status-to-status transition is allowed.
func (s *Store) UpdateOrderStatus(id int, status domain.OrderStatus, message string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID != id {
			continue
		}
		o.Status = status
		o.UpdatedAt = time.Now()
		o.Log = append(o.Log, domain.LogEntry{
			Status:    status,
			Message:   message,
			Timestamp: o.UpdatedAt,
		})
		return cloneOrder(o), true
	}
	return domain.Order{}, false
}

// SaveOrderQR caches the PNG and records the serving link on the
// order itself, so every read of the order carries it.
func (s *Store) SaveOrderQR(id int, png []byte, link string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrCodes[id] = png
	for _, o := range s.orders {
		if o.ID == id {
			o.QRCode = link
			break
		}
	}
}

func (s *Store) GetOrderQR(id int) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.qrCodes[id]
}

// cloneOrder copies the order with its slices so callers never share
// backing arrays with the store.
func cloneOrder(o *domain.Order) domain.Order {
	out := *o
	out.Items = make([]domain.LineItem, len(o.Items))
	copy(out.Items, o.Items)
	out.Log = make([]domain.LogEntry, len(o.Log))
	copy(out.Log, o.Log)
	return out
}
