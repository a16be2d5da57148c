package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodnames/internal/catalog"
	"prodnames/internal/model"
	"prodnames/internal/naming"
)

type stubCatalog struct {
	products []model.Product
	err      error
}

func (s *stubCatalog) Products(context.Context) ([]model.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) ProductsByTitle(_ context.Context, title string) ([]model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []model.Product
	for _, p := range s.products {
		if p.Title == title {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestServer(c catalog.Catalog, gen *naming.Generator) *echo.Echo {
	pool := naming.DefaultPool()
	if gen == nil {
		gen = naming.NewGenerator(pool)
	}
	return New(Config{
		AllowOrigins: []string{"https://app.example"},
		Status:       StatusInfo{ShopifyConfigured: true, Store: "shop.myshopify.com", APIVersion: "2024-01"},
	}, &catalog.Service{Catalog: c, Pool: pool}, gen)
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestStatusAndHealth(t *testing.T) {
	e := newTestServer(&stubCatalog{}, nil)

	rec := doRequest(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[StatusResponse](t, rec)
	assert.Equal(t, "ok", status.Status)
	assert.True(t, status.ShopifyConfigured)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = doRequest(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	assert.Equal(t, HealthResponse{Status: "ok", ShopifyConfigured: true, Store: "shop.myshopify.com", APIVersion: "2024-01"}, health)
}

func TestSeasonProducts(t *testing.T) {
	e := newTestServer(&stubCatalog{products: []model.Product{
		{Title: "Stella", Tags: "PE 25"},
		{Title: "Aurora", Tags: "pe 25"},
		{Title: "Aurora", Tags: "PE 25"},
		{Title: "Brezza", Tags: "AI 25"},
	}}, nil)

	rec := doRequest(e, http.MethodPost, "/api/shopify/products", `{"season":"PE 25"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[catalog.SeasonResult](t, rec)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"Aurora", "Stella"}, res.Names)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 4, res.TotalProducts)
}

func TestSeasonProducts_RemoteFailure(t *testing.T) {
	e := newTestServer(&stubCatalog{err: errors.New("network error")}, nil)

	rec := doRequest(e, http.MethodPost, "/api/shopify/products", `{"season":"PE 25"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, []interface{}{"Aurora", "Luna", "Stella"}, body["names"])
	assert.Equal(t, float64(3), body["count"])
	assert.Equal(t, "network error", body["error"])

	rec = doRequest(e, http.MethodPost, "/api/shopify/products", `{"season":"XX 99"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{}, body["names"])
	assert.Equal(t, float64(0), body["count"])
}

func TestSeasonProducts_InvalidJSON(t *testing.T) {
	e := newTestServer(&stubCatalog{}, nil)

	rec := doRequest(e, http.MethodPost, "/api/shopify/products", `{"season":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateNames(t *testing.T) {
	e := newTestServer(&stubCatalog{}, nil)

	tests := []struct {
		name              string
		body              string
		expectedCount     int
		expectedAvailable int
		expectedExcluded  int
		excluded          []string
	}{
		{"defaults", `{}`, 10, 60, 0, nil},
		{"empty body", "", 10, 60, 0, nil},
		{"prompt is ignored", `{"prompt":"summer dresses","count":3}`, 3, 60, 0, nil},
		{
			name:              "existing names excluded",
			body:              `{"count":100,"existingNames":["aurora","LUNA","Stella","Unknown"]}`,
			expectedCount:     57,
			expectedAvailable: 57,
			expectedExcluded:  3,
			excluded:          []string{"aurora", "luna", "stella"},
		},
		{"zero count", `{"count":0}`, 0, 60, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/generate-names", tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			res := decode[GenerateNamesResponse](t, rec)
			assert.True(t, res.Success)
			assert.Len(t, res.Names, tt.expectedCount)
			assert.Equal(t, tt.expectedCount, res.Count)
			assert.Equal(t, tt.expectedAvailable, res.TotalAvailable)
			assert.Equal(t, tt.expectedExcluded, res.ExcludedCount)

			ids := make(map[int]bool)
			for _, rec := range res.Names {
				assert.False(t, ids[rec.ID])
				ids[rec.ID] = true
				for _, ex := range tt.excluded {
					assert.NotEqual(t, ex, strings.ToLower(rec.Name))
				}
			}
		})
	}
}

func TestGenerateNames_AllExcluded(t *testing.T) {
	e := newTestServer(&stubCatalog{}, nil)

	existing, err := json.Marshal(naming.DefaultPool().Names())
	require.NoError(t, err)
	rec := doRequest(e, http.MethodPost, "/api/generate-names", `{"existingNames":`+strings.ToUpper(string(existing))+`}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{}, body["names"])
	assert.Equal(t, float64(0), body["total_available"])
}

func TestGenerateNames_InternalFault(t *testing.T) {
	gen := &naming.Generator{
		Pool: naming.DefaultPool(),
		Shuffle: func(int, func(i, j int)) {
			panic("shuffle exploded")
		},
	}
	e := newTestServer(&stubCatalog{}, gen)

	rec := doRequest(e, http.MethodPost, "/api/generate-names", `{"count":2}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	res := decode[ErrorResponse](t, rec)
	assert.False(t, res.Success)
	assert.Equal(t, "shuffle exploded", res.Error)
}

func TestCheckName(t *testing.T) {
	e := newTestServer(&stubCatalog{products: []model.Product{{Title: "Aurora", Tags: "PE 25"}}}, nil)

	rec := doRequest(e, http.MethodPost, "/api/check-name", `{"name":" Aurora "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catalog.NameCheckResult{Success: true, Name: "Aurora", Exists: true}, decode[catalog.NameCheckResult](t, rec))

	rec = doRequest(e, http.MethodPost, "/api/check-name", `{"name":"Luna"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catalog.NameCheckResult{Success: true, Name: "Luna", Exists: false}, decode[catalog.NameCheckResult](t, rec))
}

func TestCheckName_RemoteFailure(t *testing.T) {
	e := newTestServer(&stubCatalog{err: errors.New("shopify status 401: 401 Unauthorized")}, nil)

	rec := doRequest(e, http.MethodPost, "/api/check-name", `{"name":"Aurora"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[catalog.NameCheckResult](t, rec)
	assert.False(t, res.Success)
	assert.False(t, res.Exists)
	assert.Contains(t, res.Error, "401")
}

func TestCheckName_MissingName(t *testing.T) {
	e := newTestServer(&stubCatalog{}, nil)

	for _, body := range []string{`{}`, `{"name":"   "}`} {
		rec := doRequest(e, http.MethodPost, "/api/check-name", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name is required")
	}
}

func TestCORS(t *testing.T) {
	e := newTestServer(&stubCatalog{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-names", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
}
