package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/njprem/DestiMatch_Web/internal/domain"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

type SortOption string

const (
	SortRecommended SortOption = "recommended"
	SortPriceAsc    SortOption = "price_asc"
	SortPriceDesc   SortOption = "price_desc"
	SortRatingDesc  SortOption = "rating_desc"
)

const (
	SearchPageSize            = 6
	DefaultSearchViewCapacity = 1024
)

// ParseSortOption falls back to the server order for unknown values.
func ParseSortOption(raw string) SortOption {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(raw))); opt {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return opt
	default:
		return SortRecommended
	}
}

// Refinement holds the controls evaluated locally on fetched results.
type Refinement struct {
	MinRating float64    `json:"min_rating"`
	Sort      SortOption `json:"sort"`
}

// Refine applies the rating floor, then a stable sort. The input is not modified.
func Refine(results []domain.Destination, r Refinement) []domain.Destination {
	out := make([]domain.Destination, 0, len(results))
	for _, d := range results {
		if r.MinRating > 0 && d.Rating < r.MinRating {
			continue
		}
		out = append(out, d)
	}
	switch r.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].BudgetLevel.Rank() < out[j].BudgetLevel.Rank() })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].BudgetLevel.Rank() > out[j].BudgetLevel.Rank() })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

type ResultPage struct {
	Items        []domain.Destination `json:"items"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	TotalPages   int                  `json:"total_pages"`
	TotalResults int                  `json:"total_results"`
}

// Paginate slices one page out of results. Pages below 1 clamp to 1; pages
// past the end are empty.
func Paginate(results []domain.Destination, page int) ResultPage {
	if page < 1 {
		page = 1
	}
	total := len(results)
	p := ResultPage{
		Items:        []domain.Destination{},
		Page:         page,
		PageSize:     SearchPageSize,
		TotalPages:   (total + SearchPageSize - 1) / SearchPageSize,
		TotalResults: total,
	}
	start := (page - 1) * SearchPageSize
	if start >= total {
		return p
	}
	end := start + SearchPageSize
	if end > total {
		end = total
	}
	p.Items = append(p.Items, results[start:end]...)
	return p
}

type SearchSnapshot struct {
	Params     domain.SearchParams `json:"params"`
	Refinement Refinement          `json:"refinement"`
	ResultPage
}

type destinationSearcher interface {
	SearchDestinations(ctx context.Context, params domain.SearchParams) ([]domain.Destination, error)
}

// SearchView is the search page state of one visitor. Only a change of the
// server parameters triggers a remote search.
type SearchView struct {
	searcher destinationSearcher

	mu         sync.Mutex
	loaded     bool
	params     domain.SearchParams
	raw        []domain.Destination
	refinement Refinement
	page       int
}

func NewSearchView(searcher destinationSearcher) *SearchView {
	return &SearchView{
		searcher:   searcher,
		refinement: Refinement{Sort: SortRecommended},
		page:       1,
	}
}

// Apply fetches results when params differ from the last successful fetch
// and resets to page 1. It reports whether a fetch happened. On failure the
// previous results are kept.
func (v *SearchView) Apply(ctx context.Context, params domain.SearchParams) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loaded && v.params == params {
		return false, nil
	}
	results, err := v.searcher.SearchDestinations(ctx, params)
	if err != nil {
		return true, err
	}
	v.loaded = true
	v.params = params
	v.raw = results
	v.page = 1
	return true, nil
}

func (v *SearchView) SetMinRating(min float64) {
	if min < 0 {
		min = 0
	}
	v.mu.Lock()
	v.refinement.MinRating = min
	v.mu.Unlock()
}

func (v *SearchView) SetSort(opt SortOption) {
	v.mu.Lock()
	v.refinement.Sort = ParseSortOption(string(opt))
	v.mu.Unlock()
}

func (v *SearchView) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.mu.Lock()
	v.page = page
	v.mu.Unlock()
}

func (v *SearchView) Snapshot() SearchSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return SearchSnapshot{
		Params:     v.params,
		Refinement: v.refinement,
		ResultPage: Paginate(Refine(v.raw, v.refinement), v.page),
	}
}

// SearchRequest carries every control of the search page. A zero Page keeps
// the current page.
type SearchRequest struct {
	Params    domain.SearchParams
	MinRating float64
	Sort      SortOption
	Page      int
}

// SearchService keeps one SearchView per visitor, evicting the least
// recently used view beyond capacity.
type SearchService struct {
	destinations ports.DestinationGateway
	capacity     int
	now          func() time.Time

	mu    sync.Mutex
	views map[string]*searchEntry
}

type searchEntry struct {
	view     *SearchView
	lastUsed time.Time
}

func NewSearchService(destinations ports.DestinationGateway, capacity int) *SearchService {
	if capacity <= 0 {
		capacity = DefaultSearchViewCapacity
	}
	return &SearchService{
		destinations: destinations,
		capacity:     capacity,
		now:          time.Now,
		views:        make(map[string]*searchEntry),
	}
}

func (s *SearchService) Search(ctx context.Context, visitorID string, req SearchRequest) (SearchSnapshot, error) {
	view := s.view(visitorID)
	fetched, err := view.Apply(ctx, req.Params)
	if err != nil {
		return SearchSnapshot{}, err
	}
	view.SetMinRating(req.MinRating)
	view.SetSort(req.Sort)
	if !fetched && req.Page > 0 {
		view.SetPage(req.Page)
	}
	return view.Snapshot(), nil
}

func (s *SearchService) view(visitorID string) *SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.views[visitorID]; ok {
		entry.lastUsed = s.now()
		return entry.view
	}
	if len(s.views) >= s.capacity {
		s.evictOldest()
	}
	entry := &searchEntry{view: NewSearchView(s.destinations), lastUsed: s.now()}
	s.views[visitorID] = entry
	return entry.view
}

func (s *SearchService) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, entry := range s.views {
		if oldestKey == "" || entry.lastUsed.Before(oldest) {
			oldestKey, oldest = key, entry.lastUsed
		}
	}
	delete(s.views, oldestKey)
}
