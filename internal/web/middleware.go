package web

import (
	"net/http"
	"strings"
)

// HTTPProtocolMiddleware prevents HTTP/3 QUIC protocol issues in cloud
// environments by disabling Alt-Svc advertising, and pins keep-alive
// semantics for the SSE endpoint so proxies do not buffer or drop the
// stream.
func HTTPProtocolMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Alt-Svc", "clear")

		if strings.HasPrefix(r.URL.Path, "/events") {
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("Cache-Control", "no-cache, no-transform")
			w.Header().Set("X-Accel-Buffering", "no")
		}

		next.ServeHTTP(w, r)
	})
}

// WrapMuxWithMiddleware wraps an HTTP mux with the protocol middleware
func WrapMuxWithMiddleware(mux *http.ServeMux) http.Handler {
	return HTTPProtocolMiddleware(mux)
}
