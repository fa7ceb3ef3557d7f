package skill

// RequestType is the kind of platform event.
type RequestType string

const (
	RequestLaunch       RequestType = "launch"
	RequestIntent       RequestType = "intent"
	RequestSessionEnded RequestType = "session_ended"
)

// Request is one decoded platform event.
type Request struct {
	Type       RequestType
	IntentName string            // intent requests only
	Slots      map[string]string // a slot may be absent or carry ""

	// Carried for logging.
	RequestID          string
	Locale             string
	SessionID          string
	SessionEndedReason string
	SessionEndedError  string
}

// IsIntent reports whether r is an intent request named name.
func (r Request) IsIntent(name string) bool {
	return r.Type == RequestIntent && r.IntentName == name
}

// Slot returns the slot value, "" when absent.
func (r Request) Slot(name string) string {
	return r.Slots[name]
}

// SessionBehavior tells the platform what to do with the session.
type SessionBehavior int

const (
	SessionDefault  SessionBehavior = iota // platform decides
	SessionKeepOpen
	SessionEnd
)

func (s SessionBehavior) String() string {
	switch s {
	case SessionKeepOpen:
		return "keep_open"
	case SessionEnd:
		return "end"
	default:
		return "default"
	}
}

// ElicitSlot asks the platform to collect SlotName of IntentName next turn.
type ElicitSlot struct {
	SlotName   string
	IntentName string
}

// Response is what the skill says back. The zero value is the empty response.
type Response struct {
	Speech     string
	Reprompt   string
	ElicitSlot *ElicitSlot
	Session    SessionBehavior
}

// HandlerKind identifies a responder. The set is closed.
type HandlerKind int

const (
	HandlerLaunch HandlerKind = iota
	HandlerChat
	HandlerHelp
	HandlerCancelOrStop
	HandlerFallback
	HandlerSessionEnded
	HandlerIntentReflector
	HandlerError
)

func (k HandlerKind) String() string {
	switch k {
	case HandlerLaunch:
		return "launch"
	case HandlerChat:
		return "chat"
	case HandlerHelp:
		return "help"
	case HandlerCancelOrStop:
		return "cancel_or_stop"
	case HandlerFallback:
		return "fallback"
	case HandlerSessionEnded:
		return "session_ended"
	case HandlerIntentReflector:
		return "intent_reflector"
	case HandlerError:
		return "error"
	default:
		return "unknown"
	}
}

// HandlerEntry pairs a predicate with the responder it selects.
type HandlerEntry struct {
	Kind  HandlerKind
	Match func(Request) bool
}
