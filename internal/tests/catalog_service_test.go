package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srms-backend/internal/service"
	"srms-backend/internal/storage"
)

func TestUpdateMenuItemPartial(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		check   func(t *testing.T, svc *service.CatalogService)
		wantErr error
	}{
		{
			name:   "price only",
			fields: map[string]any{"price": 40.0},
			check: func(t *testing.T, svc *service.CatalogService) {
				item := svc.Menu()[1]
				assert.Equal(t, 40.0, item.Price)
				assert.Equal(t, "Pizza", item.Name)
			},
		},
		{
			name:   "name and category",
			fields: map[string]any{"name": "Margherita", "category": "Specials"},
			check: func(t *testing.T, svc *service.CatalogService) {
				item := svc.Menu()[1]
				assert.Equal(t, "Margherita", item.Name)
				assert.Equal(t, "Specials", item.Category)
				assert.Equal(t, 32.0, item.Price)
			},
		},
		{
			name:   "price as numeric string",
			fields: map[string]any{"price": "27.5"},
			check: func(t *testing.T, svc *service.CatalogService) {
				assert.Equal(t, 27.5, svc.Menu()[1].Price)
			},
		},
		{
			name:    "non-numeric price rejected",
			fields:  map[string]any{"price": "expensive"},
			wantErr: service.ErrInvalidPrice,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := storage.NewStore(storage.DefaultSeed())
			svc := service.NewCatalogService(store)

			_, err := svc.UpdateMenuItem(2, testCase.fields)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				// failed updates must not mutate
				assert.Equal(t, 32.0, svc.Menu()[1].Price)
				return
			}
			require.NoError(t, err)
			testCase.check(t, svc)
		})
	}
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	svc := service.NewCatalogService(store)

	_, err := svc.UpdateMenuItem(123, map[string]any{"price": 1.0})

	assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
}

func TestUpdateInventoryItemPartial(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	svc := service.NewCatalogService(store)

	record, err := svc.UpdateInventoryItem(1, map[string]any{"quantity": 30.0})
	require.NoError(t, err)
	assert.Equal(t, 30.0, record.Quantity)
	assert.Equal(t, 5.0, record.LowStockThreshold)

	record, err = svc.UpdateInventoryItem(1, map[string]any{"low_stock_threshold": "2"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, record.LowStockThreshold)
	assert.Equal(t, 30.0, record.Quantity)

	_, err = svc.UpdateInventoryItem(1, map[string]any{"qty": []any{}})
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)

	_, err = svc.UpdateInventoryItem(77, map[string]any{"qty": 1.0})
	assert.ErrorIs(t, err, service.ErrInventoryItemNotFound)
}

func TestLowStockDerivation(t *testing.T) {
	store := storage.NewStore(storage.DefaultSeed())
	svc := service.NewCatalogService(store)

	_, low := svc.Inventory()
	assert.Empty(t, low)

	// exactly at threshold counts as low
	_, err := svc.UpdateInventoryItem(2, map[string]any{"quantity": 3.0})
	require.NoError(t, err)

	_, low = svc.Inventory()
	require.Len(t, low, 1)
	assert.Equal(t, 2, low[0].ID)
}
