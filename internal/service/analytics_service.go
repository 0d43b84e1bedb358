package service

import (
	"sort"

	"srms-backend/internal/domain"
	"srms-backend/internal/storage"
)

type AnalyticsService struct {
	store *storage.Store
}

func NewAnalyticsService(store *storage.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Summary derives the aggregate view from the order history. Revenue
// sums every order's frozen total regardless of status, cancelled
// included; that matches what the reports have always shown.
func (s *AnalyticsService) Summary() domain.AnalyticsSummary {
	orders := s.store.ListOrders()

	totalRevenue := 0.0
	counts := make(map[string]int)
	var names []string

	for _, o := range orders {
		totalRevenue += o.Total
		for _, item := range o.Items {
			if _, seen := counts[item.Name]; !seen {
				names = append(names, item.Name)
			}
			counts[item.Name] += item.Qty
		}
	}

	topItems := make([]domain.ItemCount, 0, len(names))
	for _, name := range names {
		topItems = append(topItems, domain.ItemCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(topItems, func(i, j int) bool {
		return topItems[i].Count > topItems[j].Count
	})

	return domain.AnalyticsSummary{
		TotalOrders:  len(orders),
		TotalRevenue: totalRevenue,
		TopItems:     topItems,
		LowStock:     s.store.LowStock(),
	}
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
