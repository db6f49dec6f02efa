package routes

import (
	"net/http/httptest"
	"testing"

	"nestify_server/services"

	"github.com/gorilla/mux"
)

func TestRegisterLikeRoutes(t *testing.T) {
	r := mux.NewRouter()
	RegisterLikeRoutes(r, &services.FeedService{})

	tests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/likes"},
		{"GET", "/api/likes/user-1"},
		{"GET", "/api/likes/user-1/properties"},
		{"DELETE", "/api/likes/user-1/prop-1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			var match mux.RouteMatch
			if !r.Match(req, &match) || match.MatchErr != nil {
				t.Errorf("%s %s is not routed: %v", tt.method, tt.path, match.MatchErr)
			}
		})
	}
}
