package service

import (
	"sort"

	"srms-backend/internal/domain"
	"srms-backend/internal/storage"
)

const maxRecommendations = 3

type RecommendationService struct {
	store *storage.Store
}

func NewRecommendationService(store *storage.Store) *RecommendationService {
	return &RecommendationService{store: store}
}

// Recommend suggests up to three menu items by category affinity: the
// candidate pool is every item outside the given set sharing a category
// with it, falling back to everything outside the set. Most expensive
// first, catalog order on ties.
func (s *RecommendationService) Recommend(itemIDs []int) []domain.MenuItem {
	if len(itemIDs) == 0 {
		return []domain.MenuItem{}
	}

	inCart := make(map[int]bool, len(itemIDs))
	for _, id := range itemIDs {
		inCart[id] = true
	}

	menu := s.store.ListMenu()
	categories := make(map[string]bool)
	for _, m := range menu {
		if inCart[m.ID] {
			categories[m.Category] = true
		}
	}

	candidates := []domain.MenuItem{}
	for _, m := range menu {
		if !inCart[m.ID] && categories[m.Category] {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		for _, m := range menu {
			if !inCart[m.ID] {
				candidates = append(candidates, m)
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price > candidates[j].Price
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	return candidates
}

var _ RecommendationServiceInterface = (*RecommendationService)(nil)
