package service

import (
	"srms-backend/internal/domain"
)

type AuthServiceInterface interface {
	Login(username, password string) (domain.User, error)
}

type CatalogServiceInterface interface {
	Menu() []domain.MenuItem
	UpdateMenuItem(id int, fields map[string]any) (domain.MenuItem, error)
	Inventory() (records, lowStock []domain.InventoryRecord)
	UpdateInventoryItem(id int, fields map[string]any) (domain.InventoryRecord, error)
}

type OrderServiceInterface interface {
	Create(draft domain.OrderDraft) domain.Order
	List(status, orderType string, kitchenOnly bool) []domain.Order
	Get(id int) (domain.Order, error)
	UpdateStatus(id int, status string) (domain.Order, error)
	KitchenQueue() []domain.Order
	QRCode(id int) ([]byte, error)
	QRLink(id int) string
}

type ReservationServiceInterface interface {
	Create(res domain.Reservation) domain.Reservation
	List() []domain.Reservation
}

type RecommendationServiceInterface interface {
	Recommend(itemIDs []int) []domain.MenuItem
}

type AnalyticsServiceInterface interface {
	Summary() domain.AnalyticsSummary
}

// IngredientConsumer maps ordered line items onto inventory
// consumption. The stock implementation is a name-substring heuristic;
// a real bill-of-materials model can replace it without touching the
// order engine.
type IngredientConsumer interface {
	ConsumeForOrder(items []domain.LineItem)
}
