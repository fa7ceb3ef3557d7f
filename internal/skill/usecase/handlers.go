package usecase

import (
	"context"

	"voice-chat-skill/internal/skill"
)

func (uc *implUseCase) launch() skill.Response {
	return skill.Response{
		Speech:     msgLaunch,
		Reprompt:   msgAskAnything,
		ElicitSlot: uc.elicitChat(),
		Session:    skill.SessionKeepOpen,
	}
}

func (uc *implUseCase) elicitChat() *skill.ElicitSlot {
	return &skill.ElicitSlot{SlotName: uc.slotName, IntentName: uc.chatIntent}
}

func help() skill.Response {
	return skill.Response{
		Speech:   msgHelp,
		Reprompt: msgHelp,
		Session:  skill.SessionKeepOpen,
	}
}

func cancelOrStop() skill.Response {
	return skill.Response{
		Speech:  msgGoodbye,
		Session: skill.SessionEnd,
	}
}

func fallback() skill.Response {
	return skill.Response{
		Speech:   msgFallback,
		Reprompt: msgFallbackAsk,
		Session:  skill.SessionKeepOpen,
	}
}

func (uc *implUseCase) sessionEnded(ctx context.Context, req skill.Request) skill.Response {
	uc.l.Infof(ctx, "skill.usecase.sessionEnded: session=%s reason=%s error=%s",
		req.SessionID, req.SessionEndedReason, req.SessionEndedError)
	return skill.Response{}
}

func intentReflector(req skill.Request) skill.Response {
	return skill.Response{Speech: msgReflector + req.IntentName}
}

func (uc *implUseCase) handleError(ctx context.Context, req skill.Request, kind skill.HandlerKind, err error) skill.Response {
	uc.l.Errorf(ctx, "skill.usecase.Dispatch: handler=%s type=%s intent=%s: %v",
		kind, req.Type, req.IntentName, err)
	return skill.Response{
		Speech:   msgApology,
		Reprompt: msgApology,
		Session:  skill.SessionKeepOpen,
	}
}
