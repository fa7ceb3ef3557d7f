package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-chat-skill/pkg/log"
	"voice-chat-skill/pkg/response"
)

type stubSkillHandler struct {
	called bool
}

func (s *stubSkillHandler) HandleSkillRequest(c *gin.Context) {
	s.called = true
	c.JSON(http.StatusOK, gin.H{"version": "1.0"})
}

func newTestServer(t *testing.T, metrics bool) (*HTTPServer, *stubSkillHandler) {
	t.Helper()
	h := &stubSkillHandler{}
	srv, err := New(log.NewNop(), Config{
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		SkillHandler:   h,
		MetricsEnabled: metrics,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, h
}

func do(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader("{}")))
	return w
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		logger log.Logger
		cfg    Config
	}{
		{"no logger", nil, Config{Port: 1, Mode: gin.TestMode, SkillHandler: &stubSkillHandler{}}},
		{"no mode", log.NewNop(), Config{Port: 1, SkillHandler: &stubSkillHandler{}}},
		{"no port", log.NewNop(), Config{Mode: gin.TestMode, SkillHandler: &stubSkillHandler{}}},
		{"no skill handler", log.NewNop(), Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.logger, tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv, skill := newTestServer(t, true)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := do(srv, http.MethodGet, path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var resp response.Resp
			json.Unmarshal(w.Body.Bytes(), &resp)
			data, _ := resp.Data.(map[string]interface{})
			if data["service"] != ServiceName {
				t.Errorf("unexpected body %s", w.Body.String())
			}
		})
	}

	t.Run("skill", func(t *testing.T) {
		if w := do(srv, http.MethodPost, "/alexa"); w.Code != http.StatusOK || !skill.called {
			t.Errorf("skill route not wired: %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := do(srv, http.MethodGet, "/metrics")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "go_goroutines") {
			t.Errorf("metrics not exposed: %d", w.Code)
		}
	})
}

func TestRoutes_MetricsDisabled(t *testing.T) {
	srv, _ := newTestServer(t, false)
	if w := do(srv, http.MethodGet, "/metrics"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, false)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := srv.Run(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
