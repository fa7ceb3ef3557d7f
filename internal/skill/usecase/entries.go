package usecase

import (
	"voice-chat-skill/internal/skill"
	"voice-chat-skill/pkg/alexa"
)

// DefaultEntries returns the handler chain of the chat skill. The reflector
// matches every intent and must stay last.
func DefaultEntries(chatIntent string) []skill.HandlerEntry {
	return []skill.HandlerEntry{
		{Kind: skill.HandlerLaunch, Match: func(r skill.Request) bool {
			return r.Type == skill.RequestLaunch
		}},
		{Kind: skill.HandlerChat, Match: func(r skill.Request) bool {
			return r.IsIntent(chatIntent)
		}},
		{Kind: skill.HandlerHelp, Match: func(r skill.Request) bool {
			return r.IsIntent(alexa.IntentHelp)
		}},
		{Kind: skill.HandlerCancelOrStop, Match: func(r skill.Request) bool {
			return r.IsIntent(alexa.IntentCancel) || r.IsIntent(alexa.IntentStop)
		}},
		{Kind: skill.HandlerFallback, Match: func(r skill.Request) bool {
			return r.IsIntent(alexa.IntentFallback)
		}},
		{Kind: skill.HandlerSessionEnded, Match: func(r skill.Request) bool {
			return r.Type == skill.RequestSessionEnded
		}},
		{Kind: skill.HandlerIntentReflector, Match: func(r skill.Request) bool {
			return r.Type == skill.RequestIntent
		}},
	}
}
