package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"record-api/controllers"
	"record-api/logger"
)

// Options configures SetupRoutes.
type Options struct {
	Items    *controllers.ItemController
	ClockIns *controllers.ClockInController
	Health   http.HandlerFunc
	Logger   logger.Logger
	// CORSAllowedOrigins is a comma-separated origin list; "*" allows all.
	CORSAllowedOrigins string
}

// SetupRoutes registers every endpoint and wraps the router in the middleware
// stack. The filter routes come before /{id} so "filter" is never taken for an id.
func SetupRoutes(o Options) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/items", o.Items.CreateItem).Methods("POST")
	r.HandleFunc("/items/filter", o.Items.FilterItems).Methods("GET")
	r.HandleFunc("/items/{id}", o.Items.GetItem).Methods("GET")
	r.HandleFunc("/items/{id}", o.Items.UpdateItem).Methods("PUT")
	r.HandleFunc("/items/{id}", o.Items.DeleteItem).Methods("DELETE")

	r.HandleFunc("/clock-in", o.ClockIns.CreateClockIn).Methods("POST")
	r.HandleFunc("/clock-in/filter", o.ClockIns.FilterClockIns).Methods("GET")
	r.HandleFunc("/clock-in/{id}", o.ClockIns.GetClockIn).Methods("GET")
	r.HandleFunc("/clock-in/{id}", o.ClockIns.UpdateClockIn).Methods("PUT")
	r.HandleFunc("/clock-in/{id}", o.ClockIns.DeleteClockIn).Methods("DELETE")

	if o.Health != nil {
		r.HandleFunc("/health", o.Health).Methods("GET")
	}

	// CORS sits outside the router so preflight requests never reach method matching.
	var h http.Handler = r
	h = CORS(o.CORSAllowedOrigins)(h)
	h = logger.Middleware(o.Logger)(h)
	h = logger.RequestID(h)
	h = logger.Recovery(o.Logger)(h)
	return h
}

// CORS allows the given origins with every method and header.
func CORS(allowedOrigins string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: parseOrigins(allowedOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{logger.RequestIDHeader},
		MaxAge:         300,
	})
}

func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p := strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
