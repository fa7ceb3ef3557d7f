package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-chat-skill/internal/skill"
	skillHTTP "voice-chat-skill/internal/skill/delivery/http"
	"voice-chat-skill/internal/skill/usecase"
	"voice-chat-skill/pkg/alexa"
	"voice-chat-skill/pkg/llmprovider"
	pkgLog "voice-chat-skill/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	resp    skill.Response
	lastReq skill.Request
	traceID string
	called  bool
}

func (m *mockUseCase) Dispatch(ctx context.Context, req skill.Request) skill.Response {
	m.called = true
	m.lastReq = req
	m.traceID = pkgLog.GetTraceID(ctx)
	return m.resp
}

type mockLimiter struct {
	err  error
	keys []string
}

func (m *mockLimiter) Allow(key string) error {
	m.keys = append(m.keys, key)
	return m.err
}

type mockCompleter struct {
	reply string
}

func (m *mockCompleter) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Content: llmprovider.NewTextMessage("assistant", m.reply), ProviderName: "mock"}, nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

const launchBody = `{
  "version": "1.0",
  "session": {"sessionId": "s-1", "application": {"applicationId": "skill-a"}, "user": {"userId": "user-1"}},
  "request": {"type": "LaunchRequest", "requestId": "req-1", "locale": "ja-JP"}
}`

func serve(h skillHTTP.Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	skillHTTP.RegisterRoutes(r, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, skillHTTP.SkillPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) alexa.ResponseEnvelope {
	t.Helper()
	var env alexa.ResponseEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return env
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleSkillRequest(t *testing.T) {
	t.Run("maps envelope and renders response", func(t *testing.T) {
		uc := &mockUseCase{resp: skill.Response{
			Speech:     "hello",
			Reprompt:   "again?",
			ElicitSlot: &skill.ElicitSlot{SlotName: "user_message", IntentName: "ChatBotIntent"},
			Session:    skill.SessionKeepOpen,
		}}
		h := skillHTTP.New(pkgLog.NewNop(), uc, skillHTTP.Config{})

		w := serve(h, launchBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		if uc.lastReq.Type != skill.RequestLaunch || uc.lastReq.Locale != "ja-JP" || uc.lastReq.SessionID != "s-1" {
			t.Errorf("unexpected skill request %+v", uc.lastReq)
		}
		if uc.traceID != "req-1" {
			t.Errorf("request ID must be the trace ID, got %q", uc.traceID)
		}

		env := decodeEnvelope(t, w)
		if env.Version != alexa.Version || env.Response.OutputSpeech.Text != "hello" {
			t.Errorf("unexpected envelope %+v", env)
		}
		if env.Response.Reprompt == nil || env.Response.Reprompt.OutputSpeech.Text != "again?" {
			t.Errorf("missing reprompt")
		}
		if len(env.Response.Directives) != 1 || env.Response.Directives[0].SlotToElicit != "user_message" {
			t.Errorf("missing elicit directive: %+v", env.Response.Directives)
		}
		if env.Response.ShouldEndSession == nil || *env.Response.ShouldEndSession {
			t.Errorf("session must stay open")
		}
	})

	t.Run("assigns request ID when absent", func(t *testing.T) {
		uc := &mockUseCase{}
		h := skillHTTP.New(pkgLog.NewNop(), uc, skillHTTP.Config{})

		serve(h, `{"request":{"type":"SessionEndedRequest","reason":"USER_INITIATED","error":{"type":"INVALID_RESPONSE","message":"bad"}}}`)

		if uc.lastReq.RequestID == "" || uc.traceID != uc.lastReq.RequestID {
			t.Errorf("expected generated request ID as trace ID, got %q / %q", uc.lastReq.RequestID, uc.traceID)
		}
		if uc.lastReq.SessionEndedReason != "USER_INITIATED" || uc.lastReq.SessionEndedError != "INVALID_RESPONSE: bad" {
			t.Errorf("session-ended details lost: %+v", uc.lastReq)
		}
	})

	t.Run("end session", func(t *testing.T) {
		uc := &mockUseCase{resp: skill.Response{Speech: "bye", Session: skill.SessionEnd}}
		env := decodeEnvelope(t, serve(skillHTTP.New(pkgLog.NewNop(), uc, skillHTTP.Config{}), launchBody))
		if env.Response.ShouldEndSession == nil || !*env.Response.ShouldEndSession {
			t.Errorf("expected shouldEndSession true")
		}
	})

	t.Run("default session omits the flag", func(t *testing.T) {
		uc := &mockUseCase{resp: skill.Response{Speech: "reflected"}}
		w := serve(skillHTTP.New(pkgLog.NewNop(), uc, skillHTTP.Config{}), launchBody)
		if strings.Contains(w.Body.String(), "shouldEndSession") {
			t.Errorf("expected no shouldEndSession, got %s", w.Body.String())
		}
	})
}

func TestHandleSkillRequest_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		cfg      skillHTTP.Config
		wantCode int
	}{
		{"malformed json", `{`, skillHTTP.Config{}, http.StatusBadRequest},
		{"missing request", `{"version":"1.0"}`, skillHTTP.Config{}, http.StatusBadRequest},
		{"wrong skill", launchBody, skillHTTP.Config{ApplicationID: "skill-b"}, http.StatusForbidden},
		{"rate limited", launchBody, skillHTTP.Config{Limiter: &mockLimiter{err: errors.New("slow down")}}, http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := serve(skillHTTP.New(pkgLog.NewNop(), uc, tt.cfg), tt.body)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if uc.called {
				t.Errorf("rejected requests must not be dispatched")
			}
		})
	}

	t.Run("matching skill and user key", func(t *testing.T) {
		limiter := &mockLimiter{}
		uc := &mockUseCase{}
		w := serve(skillHTTP.New(pkgLog.NewNop(), uc, skillHTTP.Config{ApplicationID: "skill-a", Limiter: limiter}), launchBody)

		if w.Code != http.StatusOK || !uc.called {
			t.Fatalf("expected dispatch, got %d", w.Code)
		}
		if len(limiter.keys) != 1 || limiter.keys[0] != "user-1" {
			t.Errorf("expected limiter keyed by user ID, got %v", limiter.keys)
		}
	})
}

func TestHandleSkillRequest_ChatScenario(t *testing.T) {
	uc, err := usecase.New(usecase.Config{
		Logger: pkgLog.NewNop(),
		LLM:    &mockCompleter{reply: "すみません、天気情報はわかりません。"},
	})
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	h := skillHTTP.New(pkgLog.NewNop(), uc, skillHTTP.Config{})

	w := serve(h, `{
	  "version": "1.0",
	  "request": {
	    "type": "IntentRequest",
	    "requestId": "req-2",
	    "intent": {"name": "ChatBotIntent", "slots": {"user_message": {"name": "user_message", "value": "今日の天気は？"}}}
	  }
	}`)

	env := decodeEnvelope(t, w)
	if env.Response.OutputSpeech == nil || env.Response.OutputSpeech.Text != "すみません、天気情報はわかりません。" {
		t.Fatalf("unexpected speech: %s", w.Body.String())
	}
	d := env.Response.Directives
	if len(d) != 1 || d[0].Type != alexa.DirectiveElicitSlot || d[0].SlotToElicit != "user_message" {
		t.Fatalf("expected user_message to be elicited again: %+v", d)
	}
	if d[0].UpdatedIntent == nil || d[0].UpdatedIntent.Name != "ChatBotIntent" {
		t.Errorf("unexpected updated intent %+v", d[0].UpdatedIntent)
	}
}
