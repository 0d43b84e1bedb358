package service

import (
	"errors"

	"srms-backend/internal/domain"
	"srms-backend/internal/storage"
)

var (
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidQuantity       = errors.New("invalid qty")
	ErrInvalidThreshold      = errors.New("invalid threshold")
)

type CatalogService struct {
	store *storage.Store
}

func NewCatalogService(store *storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) Menu() []domain.MenuItem {
	return s.store.ListMenu()
}

// UpdateMenuItem applies only the fields present in the payload.
// Numeric validation happens before any mutation.
func (s *CatalogService) UpdateMenuItem(id int, fields map[string]any) (domain.MenuItem, error) {
	var patch domain.MenuItemPatch
	if raw, ok := fields["name"]; ok {
		if name, ok := raw.(string); ok {
			patch.Name = &name
		}
	}
	if raw, ok := fields["price"]; ok {
		price, ok := domain.CoerceFloat(raw)
		if !ok {
			return domain.MenuItem{}, ErrInvalidPrice
		}
		patch.Price = &price
	}
	if raw, ok := fields["category"]; ok {
		if category, ok := raw.(string); ok {
			patch.Category = &category
		}
	}

	item, ok := s.store.PatchMenuItem(id, patch)
	if !ok {
		return domain.MenuItem{}, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *CatalogService) Inventory() (records, lowStock []domain.InventoryRecord) {
	return s.store.ListInventory(), s.store.LowStock()
}

// UpdateInventoryItem accepts the quantity under either "quantity" or
// "qty", as both spellings have been in the wild.
func (s *CatalogService) UpdateInventoryItem(id int, fields map[string]any) (domain.InventoryRecord, error) {
	var patch domain.InventoryPatch
	raw, ok := fields["quantity"]
	if !ok {
		raw, ok = fields["qty"]
	}
	if ok {
		qty, valid := domain.CoerceFloat(raw)
		if !valid {
			return domain.InventoryRecord{}, ErrInvalidQuantity
		}
		patch.Quantity = &qty
	}
	if raw, ok := fields["low_stock_threshold"]; ok {
		threshold, valid := domain.CoerceFloat(raw)
		if !valid {
			return domain.InventoryRecord{}, ErrInvalidThreshold
		}
		patch.LowStockThreshold = &threshold
	}

	record, found := s.store.PatchInventoryItem(id, patch)
	if !found {
		return domain.InventoryRecord{}, ErrInventoryItemNotFound
	}
	return record, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
