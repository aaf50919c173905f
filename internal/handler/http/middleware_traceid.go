package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-toml-selector/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses a well-formed X-Trace-ID from the caller or mints a new
// one, echoes it back and attaches a logger carrying it to the request
// context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := utils.TraceID(r.Header.Get(traceIDHeader))

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
