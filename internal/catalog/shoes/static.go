package shoes

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// StaticService serves listings from memory. It backs development, tests and
// YAML seeded deployments.
type StaticService struct {
	mu       sync.RWMutex
	listings []Listing
	bySlug   map[string]int
}

// NewStaticService returns a StaticService over the supplied listings, or a
// sample catalog when none are given.
func NewStaticService(listings []Listing) *StaticService {
	if listings == nil {
		listings = sampleListings(time.Now())
	}
	svc := &StaticService{}
	svc.Replace(listings)
	return svc
}

// Replace swaps the served listings.
func (s *StaticService) Replace(listings []Listing) {
	copied := make([]Listing, len(listings))
	copy(copied, listings)
	index := make(map[string]int, len(copied))
	for i, l := range copied {
		index[l.Slug] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = copied
	s.bySlug = index
}

// List implements Service.
func (s *StaticService) List(_ context.Context, order Sort) ([]Listing, error) {
	s.mu.RLock()
	result := make([]Listing, len(s.listings))
	copy(result, s.listings)
	s.mu.RUnlock()

	switch order {
	case SortPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePrice() < result[j].EffectivePrice()
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ReleaseDate.After(result[j].ReleaseDate)
		})
	}
	return result, nil
}

// Get implements Service.
func (s *StaticService) Get(_ context.Context, slug string) (Listing, error) {
	slug = strings.TrimSpace(slug)

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.bySlug[slug]
	if !ok {
		return Listing{}, ErrNotFound
	}
	return s.listings[idx], nil
}

func sampleListings(now time.Time) []Listing {
	day := 24 * time.Hour
	return []Listing{
		{
			Slug:        "nike-air-max-90",
			Name:        "Air Max 90",
			ImageSrc:    "/public/static/images/nike-air-max-90.jpg",
			Price:       13000,
			SalePrice:   int64Ptr(9500),
			ReleaseDate: now.Add(-60 * day),
			NumOfColors: 3,
			Description: "A **classic** runner with visible Air cushioning.",
		},
		{
			Slug:        "tokyo-drift-trainer",
			Name:        "Tokyo Drift Trainer",
			ImageSrc:    "/public/static/images/tokyo-drift-trainer.jpg",
			Price:       11000,
			ReleaseDate: now.Add(-5 * day),
			NumOfColors: 1,
			Description: "Light trainer built for *daily miles*.",
		},
		{
			Slug:        "court-classic-low",
			Name:        "Court Classic Low",
			ImageSrc:    "/public/static/images/court-classic-low.jpg",
			Price:       7500,
			ReleaseDate: now.Add(-400 * day),
			NumOfColors: 2,
		},
		{
			Slug:        "trail-runner-gtx",
			Name:        "Trail Runner GTX",
			ImageSrc:    "/public/static/images/trail-runner-gtx.jpg",
			Price:       16500,
			SalePrice:   int64Ptr(12000),
			ReleaseDate: now.Add(-3 * day),
			NumOfColors: 4,
			Description: "Waterproof upper with a grippy outsole.\n\n- Gore-Tex lining\n- Rock plate",
		},
	}
}

func int64Ptr(v int64) *int64 { return &v }
