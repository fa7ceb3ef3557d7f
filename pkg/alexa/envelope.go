package alexa

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrMalformedEnvelope = errors.New("alexa: malformed request envelope")
	ErrMissingRequest    = errors.New("alexa: request envelope has no request")
)

// Decode reads one request envelope.
func Decode(r io.Reader) (*RequestEnvelope, error) {
	var env RequestEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate checks the fields every request type needs.
func (e *RequestEnvelope) Validate() error {
	if e.Request == nil {
		return ErrMissingRequest
	}
	if e.Request.Type == "" {
		return fmt.Errorf("%w: request.type is empty", ErrMalformedEnvelope)
	}
	if e.Request.Type == RequestTypeIntent && (e.Request.Intent == nil || e.Request.Intent.Name == "") {
		return fmt.Errorf("%w: intent request without intent name", ErrMalformedEnvelope)
	}
	return nil
}

// ApplicationID returns the skill ID the request was sent to. The context
// copy is preferred; the session copy is absent for out-of-session requests.
func (e *RequestEnvelope) ApplicationID() string {
	if e.Context != nil && e.Context.System != nil && e.Context.System.Application != nil {
		return e.Context.System.Application.ApplicationID
	}
	if e.Session != nil && e.Session.Application != nil {
		return e.Session.Application.ApplicationID
	}
	return ""
}

// UserID returns the platform user ID, or "" when absent.
func (e *RequestEnvelope) UserID() string {
	if e.Context != nil && e.Context.System != nil && e.Context.System.User != nil {
		return e.Context.System.User.UserID
	}
	if e.Session != nil && e.Session.User != nil {
		return e.Session.User.UserID
	}
	return ""
}

// SessionID returns the session ID, or "" when absent.
func (e *RequestEnvelope) SessionID() string {
	if e.Session == nil {
		return ""
	}
	return e.Session.SessionID
}

// IntentName returns the intent name of an IntentRequest.
func (e *RequestEnvelope) IntentName() string {
	if e.Request == nil || e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// Slots flattens the intent slots to name -> value. Slots the platform
// sent without a value map to "".
func (e *RequestEnvelope) Slots() map[string]string {
	if e.Request == nil || e.Request.Intent == nil || len(e.Request.Intent.Slots) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Request.Intent.Slots))
	for key, s := range e.Request.Intent.Slots {
		name := s.Name
		if name == "" {
			name = key
		}
		out[name] = s.Value
	}
	return out
}
