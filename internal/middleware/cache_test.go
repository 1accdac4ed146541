package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestEncodeDecodeCached(t *testing.T) {
	body := []byte(`{"success":true,"data":[],"error":null}`)
	status, out, ok := decodeCached(encodeCached(http.StatusOK, body))
	if !ok {
		t.Fatal("decode failed")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !bytes.Equal(out, body) {
		t.Fatalf("body = %q", out)
	}
}

func TestDecodeCachedShortPayload(t *testing.T) {
	if _, _, ok := decodeCached([]byte{1, 2}); ok {
		t.Fatal("short payload decoded")
	}
}

func TestCacheKeyVariesWithQuery(t *testing.T) {
	e := echo.New()
	ctxFor := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/api/products")
		return c
	}
	a := cacheKey("cache", ctxFor("/api/products?sortBy=price"))
	b := cacheKey("cache", ctxFor("/api/products?sortBy=name"))
	if a == b {
		t.Fatal("distinct queries share a cache key")
	}
	if a != cacheKey("cache", ctxFor("/api/products?sortBy=price")) {
		t.Fatal("same request produced different keys")
	}
}

func TestCacheKeyVariesWithPathParam(t *testing.T) {
	e := echo.New()
	ctxFor := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		// Same registered pattern for both requests, as the router
		// sets it; only the concrete id differs.
		c.SetPath("/api/products/:id")
		c.SetParamNames("id")
		c.SetParamValues(target[len("/api/products/"):])
		return c
	}
	a := cacheKey("cache", ctxFor("/api/products/1"))
	b := cacheKey("cache", ctxFor("/api/products/2"))
	if a == b {
		t.Fatal("different products share a cache key")
	}
	if a != cacheKey("cache", ctxFor("/api/products/1")) {
		t.Fatal("same product produced different keys")
	}
}

func TestCaptureWriterRespectsLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 5}
	if _, err := cw.Write([]byte("0123456789")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if cw.buf.String() != "01234" {
		t.Fatalf("captured %q", cw.buf.String())
	}
	if cw.size != 10 {
		t.Fatalf("size = %d", cw.size)
	}
	// The client still receives the full body.
	if rec.Body.String() != "0123456789" {
		t.Fatalf("forwarded %q", rec.Body.String())
	}
}
