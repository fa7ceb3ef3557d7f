package skill

import "context"

// UseCase routes one voice request to its handler.
type UseCase interface {
	// Dispatch always returns a well-formed Response. Handler faults are
	// answered with the apology response, never returned.
	Dispatch(ctx context.Context, req Request) Response
}
