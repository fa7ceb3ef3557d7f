package skill

import "errors"

var (
	ErrEmptyReply     = errors.New("chat completion returned no text")
	ErrHandlerPanic   = errors.New("handler panicked")
	ErrUnknownHandler = errors.New("unknown handler kind")
	ErrLLMRequired    = errors.New("chat completer is required")
	ErrLoggerRequired = errors.New("logger is required")
	ErrInvalidEntry   = errors.New("handler entry has no predicate")
)
