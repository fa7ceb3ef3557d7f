package usecase

import (
	"context"
	"fmt"

	"voice-chat-skill/internal/metrics"
	"voice-chat-skill/internal/skill"
)

// Dispatch runs the first matching handler. Any fault, including a panic,
// is turned into the apology response here and nowhere else.
func (uc *implUseCase) Dispatch(ctx context.Context, req skill.Request) skill.Response {
	kind, resp, err := uc.route(ctx, req)
	if err != nil {
		metrics.ObserveFault(kind.String())
		return uc.handleError(ctx, req, kind, err)
	}

	metrics.ObserveDispatch(kind.String(), string(req.Type))
	return resp
}

func (uc *implUseCase) route(ctx context.Context, req skill.Request) (kind skill.HandlerKind, resp skill.Response, err error) {
	kind = skill.HandlerFallback
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", skill.ErrHandlerPanic, r)
		}
	}()

	for _, e := range uc.entries {
		if e.Match(req) {
			kind = e.Kind
			break
		}
	}

	resp, err = uc.respond(ctx, kind, req)
	return kind, resp, err
}

func (uc *implUseCase) respond(ctx context.Context, kind skill.HandlerKind, req skill.Request) (skill.Response, error) {
	switch kind {
	case skill.HandlerLaunch:
		return uc.launch(), nil
	case skill.HandlerChat:
		return uc.chat(ctx, req)
	case skill.HandlerHelp:
		return help(), nil
	case skill.HandlerCancelOrStop:
		return cancelOrStop(), nil
	case skill.HandlerFallback:
		return fallback(), nil
	case skill.HandlerSessionEnded:
		return uc.sessionEnded(ctx, req), nil
	case skill.HandlerIntentReflector:
		return intentReflector(req), nil
	default:
		return skill.Response{}, fmt.Errorf("%w: %s", skill.ErrUnknownHandler, kind)
	}
}
