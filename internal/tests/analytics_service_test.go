package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srms-backend/internal/domain"
	"srms-backend/internal/service"
	"srms-backend/internal/storage"
)

func TestSummaryEmpty(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	svc := service.NewAnalyticsService(store)

	summary := svc.Summary()

	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Empty(t, summary.TopItems)
	assert.Empty(t, summary.LowStock)
}

func TestSummaryTotals(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	orders := newOrderService(store)
	svc := service.NewAnalyticsService(store)

	orders.Create(domain.OrderDraft{Items: itemInputs(t, `[2, 3]`)}) // 60
	orders.Create(domain.OrderDraft{Items: itemInputs(t, `[1, 5, 6]`)})

	summary := svc.Summary()

	assert.Equal(t, 2, summary.TotalOrders)
	// 60 + (6 + 30 + 12) = 108
	assert.InDelta(t, 108.0, summary.TotalRevenue, 1e-9)
}

func TestSummaryIncludesCancelledOrders(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	orders := newOrderService(store)
	svc := service.NewAnalyticsService(store)

	first := orders.Create(domain.OrderDraft{Items: itemInputs(t, `[2, 3]`)})
	orders.Create(domain.OrderDraft{Items: itemInputs(t, `[6]`)})
	_, err := orders.UpdateStatus(first.ID, "CANCELLED")
	require.NoError(t, err)

	summary := svc.Summary()

	// cancelled revenue still counts, as the reports always have
	assert.Equal(t, 2, summary.TotalOrders)
	assert.InDelta(t, 72.0, summary.TotalRevenue, 1e-9)
}

func TestSummaryTopItems(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	orders := newOrderService(store)
	svc := service.NewAnalyticsService(store)

	orders.Create(domain.OrderDraft{Items: itemInputs(t, `[{"name": "Pizza", "price": 32, "qty": 3}]`)})
	orders.Create(domain.OrderDraft{Items: itemInputs(t, `[3, 2]`)})
	orders.Create(domain.OrderDraft{Items: itemInputs(t, `[1]`)})

	summary := svc.Summary()

	require.Len(t, summary.TopItems, 3)
	assert.Equal(t, domain.ItemCount{Name: "Pizza", Count: 4}, summary.TopItems[0])
	// tie between Biryani and Karak Tea keeps first-seen order
	assert.Equal(t, domain.ItemCount{Name: "Chicken Biryani", Count: 1}, summary.TopItems[1])
	assert.Equal(t, domain.ItemCount{Name: "Karak Tea", Count: 1}, summary.TopItems[2])
}

func TestSummaryLowStock(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	orders := newOrderService(store)
	svc := service.NewAnalyticsService(store)

	quantity := 5.5
	_, ok := store.PatchInventoryItem(1, domain.InventoryPatch{Quantity: &quantity})
	require.True(t, ok)

	// Mandi drops the rice row to its threshold
	orders.Create(domain.OrderDraft{Items: itemInputs(t, `[5]`)})

	summary := svc.Summary()

	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "Rice (kg)", summary.LowStock[0].Name)
}
