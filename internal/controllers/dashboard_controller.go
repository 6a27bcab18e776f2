package controllers

import (
	"errors"
	json "github.com/goccy/go-json"
	"net/http"
	"pitwall/internal/models"
	"pitwall/internal/providers"
	"pitwall/internal/services"

	"github.com/spf13/cast"
)

const (
	emptyFeedMessage     = "Waiting for race data... Ask a question to get started!"
	emptyFilteredMessage = "No stats match your current filters. Try adjusting your filters or ask a question below."
)

type feedResponse struct {
	FeedID  string              `json:"feed_id"`
	Total   int                 `json:"total"`
	Count   int                 `json:"count"`
	Filters models.FilterSet    `json:"filters"`
	Records []models.StatRecord `json:"records"`
	Message string              `json:"message,omitempty"`
}

type promptPayload struct {
	Prompt string `json:"prompt"`
}

type togglePayload struct {
	Dimension string `json:"dimension" validate:"required|in:drivers,teams,categories"`
	Value     string `json:"value" validate:"required"`
}

type DashboardController struct {
	logger   providers.Logger
	sessions services.SessionServiceInterface
	cache    providers.CacheProviderInterface
}

func NewDashboardController(logger providers.Logger, sessions services.SessionServiceInterface, cache providers.CacheProviderInterface) *DashboardController {
	return &DashboardController{
		logger:   logger,
		sessions: sessions,
		cache:    cache,
	}
}

func (dc *DashboardController) session(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		w.Header().Set("Location", "/")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return s, ok
}

// queryFilters builds a filter set from driver, team and category query
// params. ok is false when none were given.
func queryFilters(r *http.Request) (f models.FilterSet, ok bool, err error) {
	q := r.URL.Query()
	drivers, teams, cats := q["driver"], q["team"], q["category"]
	if len(drivers) == 0 && len(teams) == 0 && len(cats) == 0 {
		return f, false, nil
	}
	f.Drivers = drivers
	f.Teams = teams
	for _, c := range cats {
		parsed, err := models.ParseCategory(c)
		if err != nil {
			return f, true, err
		}
		f.Categories = append(f.Categories, parsed)
	}
	return f.Normalize(), true, nil
}

func validateCategories(f models.FilterSet) error {
	for _, c := range f.Categories {
		if _, err := models.ParseCategory(string(c)); err != nil {
			return err
		}
	}
	return nil
}

// Feed serves the filtered feed. The feed only grows and records never
// change, so (feed id, length, filters, limit) fully determines the body.
// Filters are echoed sorted so equal sets render identical bodies.
func (dc *DashboardController) Feed(w http.ResponseWriter, r *http.Request) {
	s, ok := dc.session(w, r)
	if !ok {
		return
	}

	filters, fromQuery, err := queryFilters(r)
	if err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !fromQuery {
		filters = s.Filters()
	}
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	if limit < 0 {
		limit = 0
	}

	f, err := dc.sessions.Dashboard(s.Token())
	if err != nil {
		dc.logger.Errorf(providers.TypeFeed, "Attach dashboard for %s: %s", s.Token(), err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	n := f.Len()
	cacheKey := providers.FeedKey{
		Session: s.Token(),
		FeedID:  f.ID(),
		Len:     n,
		Filters: filters.Key(),
		Limit:   limit,
	}.String()
	if data, ok := dc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	records, _ := f.Snapshot()
	visible := models.Filter(records[:n], filters)
	if limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}

	resp := feedResponse{
		FeedID:  f.ID(),
		Total:   n,
		Count:   len(visible),
		Filters: filters.Sorted(),
		Records: visible,
	}
	if len(visible) == 0 {
		resp.Message = emptyFeedMessage
		if !filters.IsEmpty() {
			resp.Message = emptyFilteredMessage
		}
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	dc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (dc *DashboardController) Prompt(w http.ResponseWriter, r *http.Request) {
	s, ok := dc.session(w, r)
	if !ok {
		return
	}
	var payload promptPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := dc.sessions.Prompt(s.Token(), payload.Prompt)
	if errors.Is(err, services.ErrEmptyPrompt) {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		dc.logger.Errorf(providers.TypeFeed, "Prompt for %s: %s", s.Token(), err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (dc *DashboardController) GetFilters(w http.ResponseWriter, r *http.Request) {
	s, ok := dc.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Filters())
}

func (dc *DashboardController) PutFilters(w http.ResponseWriter, r *http.Request) {
	s, ok := dc.session(w, r)
	if !ok {
		return
	}
	var payload models.FilterSet
	if err := decodeJSON(w, r, &payload); err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateCategories(payload); err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.SetFilters(payload))
}

func (dc *DashboardController) ClearFilters(w http.ResponseWriter, r *http.Request) {
	s, ok := dc.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.SetFilters(models.FilterSet{}))
}

func (dc *DashboardController) ToggleFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := dc.session(w, r)
	if !ok {
		return
	}
	var payload togglePayload
	if err := decodeJSON(w, r, &payload); err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	f, err := s.ToggleFilter(payload.Dimension, payload.Value)
	if err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (dc *DashboardController) Close(w http.ResponseWriter, r *http.Request) {
	s, ok := dc.session(w, r)
	if !ok {
		return
	}
	if err := dc.sessions.CloseDashboard(s.Token()); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
