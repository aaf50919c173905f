package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-toml-selector/internal/utils"
)

// withResponseHash buffers the response and sends the hex HMAC-SHA256 of
// the body in the [utils.HashHeader] header. Without a hash key it is a
// pass-through.
func (h *Handler) withResponseHash(next http.Handler) http.Handler {
	if h.signer == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(hw, r)

		body := hw.buf.Bytes()
		w.Header().Set(utils.HashHeader, h.signer.Sign(body))
		w.WriteHeader(hw.status)
		w.Write(body)
	})
}

type hashingResponseWriter struct {
	http.ResponseWriter
	buf         bytes.Buffer
	status      int
	wroteHeader bool
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.buf.Write(b)
}
