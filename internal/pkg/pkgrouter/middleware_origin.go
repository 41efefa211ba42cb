package pkgrouter

import "net/http"

// AllowAnyOrigin sets Access-Control-Allow-Origin: * on every response of the
// wrapped handler, whether or not the request carried an Origin header.
func AllowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}
