package paint

import "errors"

// Sentinel errors. Callers test for them with errors.Is; returned errors
// wrap them with the offending value.
var (
	// ErrUnsupportedAttribute is returned when the active tool has no
	// such attribute.
	ErrUnsupportedAttribute = errors.New("paint: attribute not supported by the active tool")

	// ErrInvalidAttribute is returned for out-of-range attribute values.
	ErrInvalidAttribute = errors.New("paint: invalid attribute value")

	// ErrUnknownCommand is returned when decoding a command of unknown kind.
	ErrUnknownCommand = errors.New("paint: unknown command kind")

	// ErrUnknownTool is returned when a tool name does not resolve.
	ErrUnknownTool = errors.New("paint: unknown tool")

	// ErrEmptyImage is returned when loading an image without pixels.
	ErrEmptyImage = errors.New("paint: empty image")
)
