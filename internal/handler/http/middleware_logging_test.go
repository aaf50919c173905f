package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// requestWithLogger attaches a buffer-backed logger the way withTraceID
// does.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		body     string
		contains []string
	}{
		{
			name:     "section query",
			method:   http.MethodPost,
			target:   "/api/toml/get_section",
			status:   http.StatusOK,
			body:     `{"success":true}`,
			contains: []string{`"method":"POST"`, `"uri":"/api/toml/get_section"`, `"status":200`, `"size":16`, `"duration":`},
		},
		{
			name:     "unknown node",
			method:   http.MethodGet,
			target:   "/api/nodes/Nope",
			status:   http.StatusNotFound,
			body:     "node type not found",
			contains: []string{`"status":404`, `"uri":"/api/nodes/Nope"`},
		},
		{
			name:     "query string preserved",
			method:   http.MethodGet,
			target:   "/api/nodes/TomlSelector/changed?section=donald",
			status:   http.StatusOK,
			contains: []string{`"uri":"/api/nodes/TomlSelector/changed?section=donald"`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			newBareHandler().withLogging(next).ServeHTTP(rr, requestWithLogger(tt.method, tt.target, &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("1.0.0"))
	})

	newBareHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/api/version/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":5`)
}

func TestWithLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: `"level":"info"`},
		{status: http.StatusNotFound, level: `"level":"warn"`},
		{status: http.StatusBadGateway, level: `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			newBareHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/api/nodes/", &buf))

			assert.Contains(t, buf.String(), tt.level)
		})
	}
}
