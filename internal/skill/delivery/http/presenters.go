package http

import (
	"voice-chat-skill/internal/skill"
	"voice-chat-skill/pkg/alexa"
)

var requestTypes = map[string]skill.RequestType{
	alexa.RequestTypeLaunch:       skill.RequestLaunch,
	alexa.RequestTypeIntent:       skill.RequestIntent,
	alexa.RequestTypeSessionEnded: skill.RequestSessionEnded,
}

// NewSkillRequest maps the envelope to a skill.Request. Unsupported request
// types keep their raw name so they fall through to the fallback responder.
func NewSkillRequest(env *alexa.RequestEnvelope) skill.Request {
	t, ok := requestTypes[env.Request.Type]
	if !ok {
		t = skill.RequestType(env.Request.Type)
	}

	req := skill.Request{
		Type:               t,
		IntentName:         env.IntentName(),
		Slots:              env.Slots(),
		RequestID:          env.Request.RequestID,
		Locale:             env.Request.Locale,
		SessionID:          env.SessionID(),
		SessionEndedReason: env.Request.Reason,
	}
	if env.Request.Error != nil {
		req.SessionEndedError = env.Request.Error.Type + ": " + env.Request.Error.Message
	}
	return req
}

// NewResponseEnvelope renders a skill.Response on the wire.
func NewResponseEnvelope(resp skill.Response) *alexa.ResponseEnvelope {
	b := alexa.NewResponseBuilder().
		Speak(resp.Speech).
		Reprompt(resp.Reprompt)

	if resp.ElicitSlot != nil {
		b.ElicitSlot(resp.ElicitSlot.SlotName, resp.ElicitSlot.IntentName)
	}

	switch resp.Session {
	case skill.SessionKeepOpen:
		b.WithShouldEndSession(false)
	case skill.SessionEnd:
		b.WithShouldEndSession(true)
	}

	return b.Build()
}
