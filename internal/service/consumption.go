package service

import (
	"strings"

	"srms-backend/internal/domain"
	"srms-backend/internal/storage"
)

// consumptionRule decrements inventory rows whose name starts with
// Prefix whenever an order contains an item mentioning any keyword.
type consumptionRule struct {
	Keywords []string
	Prefix   string
	Amount   float64
}

// HeuristicConsumer is a placeholder ingredient mapping: it matches
// item names by substring instead of a real bill of materials. Known
// limitation, kept for parity with the existing behavior.
type HeuristicConsumer struct {
	store *storage.Store
	rules []consumptionRule
}

func NewHeuristicConsumer(store *storage.Store) *HeuristicConsumer {
	return &HeuristicConsumer{
		store: store,
		rules: []consumptionRule{
			{Keywords: []string{"Mandi", "Biryani"}, Prefix: "Rice", Amount: 1},
			{Keywords: []string{"Karak"}, Prefix: "Tea", Amount: 0.1},
		},
	}
}

func (c *HeuristicConsumer) ConsumeForOrder(items []domain.LineItem) {
	for _, rule := range c.rules {
		if !anyItemMentions(items, rule.Keywords) {
			continue
		}
		c.store.ConsumeInventory(rule.Prefix, rule.Amount)
	}
}

func anyItemMentions(items []domain.LineItem, keywords []string) bool {
	for _, item := range items {
		for _, kw := range keywords {
			if strings.Contains(item.Name, kw) {
				return true
			}
		}
	}
	return false
}

var _ IngredientConsumer = (*HeuristicConsumer)(nil)
