package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/androadel2014/carryon-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type stubAirportRepo struct {
	results   []*model.Airport
	lastQuery string
	lastLimit int
	count     int64
}

func (r *stubAirportRepo) Search(_ context.Context, query string, limit int) ([]*model.Airport, error) {
	r.lastQuery = query
	r.lastLimit = limit
	return r.results, nil
}

func (r *stubAirportRepo) Count(context.Context) (int64, error) {
	return r.count, nil
}

func doGET(t *testing.T, fn echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := fn(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	return rec
}

func TestAirportSearchEndpoint(t *testing.T) {
	repo := &stubAirportRepo{results: []*model.Airport{{IATA: "JFK", City: "New York"}}}
	h := NewAirportHandler(&server.Server{}, service.NewAirportService(repo, nil))
	fn := Handle(h.Handler, h.Search, http.StatusOK)

	rec := doGET(t, fn, "/airports/search?q=jfk&limit=100")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.lastQuery != "jfk" {
		t.Errorf("query = %q, want jfk", repo.lastQuery)
	}
	if repo.lastLimit != 50 {
		t.Errorf("limit = %d, want clamped 50", repo.lastLimit)
	}

	var body struct {
		OK    bool             `json:"ok"`
		Items []*model.Airport `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.OK || len(body.Items) != 1 {
		t.Errorf("body = %+v, want ok with one item", body)
	}
}

func TestAirportSearchEndpointBindsLimit(t *testing.T) {
	repo := &stubAirportRepo{}
	h := NewAirportHandler(&server.Server{}, service.NewAirportService(repo, nil))
	fn := Handle(h.Handler, h.Search, http.StatusOK)

	// A caller-supplied limit must bind and reach the service, not
	// fail request binding.
	rec := doGET(t, fn, "/airports/search?q=jfk&limit=30")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.lastLimit != 30 {
		t.Errorf("limit = %d, want 30 passed through", repo.lastLimit)
	}

	// Omitting the limit falls back to the default.
	doGET(t, fn, "/airports/search?q=jfk")
	if repo.lastLimit != 20 {
		t.Errorf("limit = %d, want default 20", repo.lastLimit)
	}
}

func TestAirportSearchEndpointShortQuery(t *testing.T) {
	repo := &stubAirportRepo{results: []*model.Airport{{IATA: "JFK"}}}
	h := NewAirportHandler(&server.Server{}, service.NewAirportService(repo, nil))
	fn := Handle(h.Handler, h.Search, http.StatusOK)

	rec := doGET(t, fn, "/airports/search?q=j")

	var body struct {
		OK    bool             `json:"ok"`
		Items []*model.Airport `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.OK || len(body.Items) != 0 {
		t.Errorf("body = %+v, want ok with no items", body)
	}
	if repo.lastQuery != "" {
		t.Error("repository queried for a one-character search term")
	}
}

func TestAirportHealthEndpoint(t *testing.T) {
	h := NewAirportHandler(&server.Server{}, service.NewAirportService(&stubAirportRepo{count: 7141}, nil))
	fn := Handle(h.Handler, h.Health, http.StatusOK)

	rec := doGET(t, fn, "/airports/health")

	var body struct {
		OK    bool  `json:"ok"`
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.OK || body.Count != 7141 {
		t.Errorf("body = %+v, want ok with count 7141", body)
	}
}
