package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggingMiddleware logs the start and completion of every request
func (s *Server) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		// Wrap the writer to capture the status code
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		s.logger.Printf("request_start method=%s path=%s request_id=%s remote_addr=%s",
			r.Method, r.URL.Path, requestID, r.RemoteAddr)

		next.ServeHTTP(ww, r)

		s.logger.Printf("request_completed method=%s path=%s status=%d duration=%v request_id=%s bytes_written=%d",
			r.Method, r.URL.Path, ww.Status(), time.Since(start), requestID, ww.BytesWritten())
	})
}

// CORSMiddleware allows browser clients on other origins
func (s *Server) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
