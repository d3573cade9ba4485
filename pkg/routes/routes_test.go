package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/courier/pkg/routes"
)

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	var hits []string

	record := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			hits = append(hits, name)
			w.WriteHeader(http.StatusOK)
		}
	}

	routes.Register(mux,
		routes.Group{
			Prefix: "/emails",
			Routes: []routes.Route{
				{Method: "POST", Pattern: "", Handler: record("submit")},
			},
		},
		routes.Group{
			Prefix: "/runs",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: record("list")},
				{Method: "GET", Pattern: "/{id}", Handler: record("find")},
			},
		},
	)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantHit    string
	}{
		{"submit email", "POST", "/emails", http.StatusOK, "submit"},
		{"list runs", "GET", "/runs", http.StatusOK, "list"},
		{"find run", "GET", "/runs/abc", http.StatusOK, "find"},
		{"wrong method", "DELETE", "/emails", http.StatusMethodNotAllowed, ""},
		{"unknown path", "GET", "/nothing", http.StatusNotFound, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hits = nil

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantHit == "" {
				if len(hits) != 0 {
					t.Errorf("unexpected handler hit: %v", hits)
				}
				return
			}
			if len(hits) != 1 || hits[0] != tc.wantHit {
				t.Errorf("hits = %v, want [%s]", hits, tc.wantHit)
			}
		})
	}
}

func TestRegisterNestedGroups(t *testing.T) {
	mux := http.NewServeMux()
	called := false

	routes.Register(mux, routes.Group{
		Prefix: "/api",
		Children: []routes.Group{
			{
				Prefix: "/runs",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: func(w http.ResponseWriter, r *http.Request) {
						called = true
					}},
				},
			},
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/runs", nil))

	if !called {
		t.Error("nested route handler was not registered under the parent prefix")
	}
}
