package usecase

import (
	"context"
	"fmt"

	"voice-chat-skill/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct {
	errors []string
	infos  []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infos = append(m.infos, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errors = append(m.errors, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockCompleter records the last request and returns a canned reply.
type mockCompleter struct {
	reply   string
	err     error
	panics  bool
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockCompleter) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.panics {
		panic("completer exploded")
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.NewTextMessage("assistant", m.reply),
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

func (m *mockCompleter) lastUserText() string {
	if m.lastReq == nil || len(m.lastReq.Messages) == 0 {
		return ""
	}
	return m.lastReq.Messages[len(m.lastReq.Messages)-1].Text()
}

func newTestUseCase(llm *mockCompleter) (*implUseCase, *mockLogger) {
	l := &mockLogger{}
	uc, err := New(Config{Logger: l, LLM: llm})
	if err != nil {
		panic(err)
	}
	return uc, l
}
