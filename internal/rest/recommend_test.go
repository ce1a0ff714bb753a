//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"souqStore/business/recommend"
	"souqStore/domain"

	"github.com/labstack/echo/v4"
)

type stubRecommendationService struct {
	suggestions []domain.ProductSuggestion
	pairs       []domain.AssociationPair
	err         error

	gotProductID  uint64
	gotMinSupport float64
}

func (s *stubRecommendationService) Suggestions(_ context.Context, productID uint64, minSupport float64) ([]domain.ProductSuggestion, error) {
	s.gotProductID = productID
	s.gotMinSupport = minSupport
	return s.suggestions, s.err
}

func (s *stubRecommendationService) TopAssociations(_ context.Context) ([]domain.AssociationPair, error) {
	return s.pairs, s.err
}

func newSuggestionsContext(t *testing.T, id, query string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	target := "/api/products/" + id + "/suggestions"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id/suggestions")
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c, rec
}

func TestGetSuggestionsOK(t *testing.T) {
	svc := &stubRecommendationService{suggestions: []domain.ProductSuggestion{
		{ID: 2, Name: "B", Price: 10, Support: 2.0 / 3.0, AvgPrice: 9.5},
		{ID: 3, Name: "C", Price: 4, Support: 1.0 / 3.0, AvgPrice: 4},
	}}
	h := NewRecommendationHandler(svc)

	c, rec := newSuggestionsContext(t, "1", "min_support=0.1")
	if err := h.GetSuggestions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotProductID != 1 || svc.gotMinSupport != 0.1 {
		t.Errorf("service got (%d, %v), want (1, 0.1)", svc.gotProductID, svc.gotMinSupport)
	}

	var body []domain.ProductSuggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(body) != 2 || body[0].Name != "B" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestGetSuggestionsInvalidID(t *testing.T) {
	h := NewRecommendationHandler(&stubRecommendationService{})

	c, rec := newSuggestionsContext(t, "abc", "")
	if err := h.GetSuggestions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetSuggestionsMalformedMinSupportFallsBack(t *testing.T) {
	svc := &stubRecommendationService{}
	h := NewRecommendationHandler(svc)

	c, rec := newSuggestionsContext(t, "1", "min_support=banana")
	if err := h.GetSuggestions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("malformed min_support must not fail, status = %d", rec.Code)
	}
	if svc.gotMinSupport != recommend.DefaultMinSupport {
		t.Errorf("minSupport = %v, want default %v", svc.gotMinSupport, recommend.DefaultMinSupport)
	}
}

func TestGetSuggestionsEmptyArray(t *testing.T) {
	h := NewRecommendationHandler(&stubRecommendationService{suggestions: []domain.ProductSuggestion{}})

	c, rec := newSuggestionsContext(t, "404404", "")
	if err := h.GetSuggestions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want empty JSON array", rec.Body.String())
	}
}

func TestGetSuggestionsStoreError(t *testing.T) {
	h := NewRecommendationHandler(&stubRecommendationService{err: errors.New("pq: connection refused")})

	c, rec := newSuggestionsContext(t, "1", "")
	if err := h.GetSuggestions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body ServerError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Error == "" || body.Message == "" {
		t.Errorf("error body missing fields: %+v", body)
	}
}

func TestGetAssociationsOK(t *testing.T) {
	h := NewRecommendationHandler(&stubRecommendationService{pairs: []domain.AssociationPair{
		{Product1: "A", Product2: "B", Frequency: 12},
	}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/associations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetAssociations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body []domain.AssociationPair
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(body) != 1 || body[0].Frequency != 12 {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestParseMinSupport(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"", recommend.DefaultMinSupport},
		{"0.5", 0.5},
		{"0", 0},
		{"1", 1},
		{"not-a-number", recommend.DefaultMinSupport},
	}

	for _, tc := range cases {
		if got := parseMinSupport(tc.raw); got != tc.want {
			t.Errorf("parseMinSupport(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
