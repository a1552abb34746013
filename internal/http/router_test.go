package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	shopHttp "github.com/MrJamesThe3rd/shopledger/internal/http"
	ledgerHandler "github.com/MrJamesThe3rd/shopledger/internal/http/ledger"
	"github.com/MrJamesThe3rd/shopledger/internal/http/page"
	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

func newRouter(t *testing.T) http.Handler {
	ctrl := gomock.NewController(t)
	svc := ledger.NewService(ledger.NewMockRowStore(ctrl), "secret")

	return shopHttp.New(
		ledgerHandler.NewHandler(svc),
		page.NewHandler("Corner Shop"),
		shopHttp.Options{Timeout: 5 * time.Second, AllowedOrigins: []string{"*"}},
	)
}

func TestRouter_Index(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<title>Corner Shop</title>")
}

func TestRouter_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestRouter_WrongMethodIsNotFound(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/submit"},
		{method: http.MethodPost, path: "/data"},
		{method: http.MethodDelete, path: "/data"},
		{method: http.MethodPost, path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(t).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
		})
	}
}

func TestRouter_WrongPasswordSkipsStore(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data?password=wrong", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"invalid_password"}`, rec.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/submit", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
