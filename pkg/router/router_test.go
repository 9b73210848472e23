package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/pizzeria/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupPrefixing(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/order/menu", "menu.list", ok)

	req := httptest.NewRequest(http.MethodGet, "/api/order/menu", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestNestedGroupInheritsMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	outer := r.Group("/api", tag("outer"))
	inner := outer.Group("", tag("inner"))
	inner.Get("/x", "x", ok)

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}

func TestRoutesRegistry(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Post("/auth", "auth.register", ok)
	api.Delete("/auth", "auth.logout", ok)

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(infos))
	}

	byName := make(map[string]router.RouteInfo)
	for _, ri := range infos {
		byName[ri.Name] = ri
	}
	reg, ok := byName["auth.register"]
	if !ok || reg.Method != http.MethodPost || reg.Path != "/api/auth" {
		t.Errorf("unexpected auth.register entry: %+v", reg)
	}
}

func TestMethodNotMatched(t *testing.T) {
	r := router.New()
	r.Get("/only-get", "g", ok)

	req := httptest.NewRequest(http.MethodPost, "/only-get", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
