package tools

import "errors"

// Domain errors for the tools package.
//
// The dispatcher maps these onto protocol error codes with errors.Is:
// ErrUnknownTool becomes a method-not-found response and ErrInvalidParams an
// invalid-params response; anything else is an internal error.
var (
	// ErrUnknownTool is returned when a tools/call names a tool that is
	// not in the catalog.
	ErrUnknownTool = errors.New("tools: unknown tool")

	// ErrInvalidParams is returned when tool arguments are malformed or a
	// required argument is missing.
	ErrInvalidParams = errors.New("tools: invalid params")
)
