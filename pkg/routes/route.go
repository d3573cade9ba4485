package routes

import "net/http"

// Route binds one HTTP method and path pattern to a handler. Method and
// pattern combine into a Go 1.22 mux pattern at registration time.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
