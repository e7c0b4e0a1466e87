package graph

import "errors"

// Sentinel errors returned by Graph mutations. They are wrapped with the
// offending id or value, so match them with errors.Is.
var (
	// ErrEmptyNodeID indicates AddNode was called with an empty id.
	ErrEmptyNodeID = errors.New("graph: node id is empty")

	// ErrDuplicateNode indicates AddNode was called with an id already present.
	ErrDuplicateNode = errors.New("graph: duplicate node")

	// ErrMissingNode indicates an edge or lookup referenced an id that is not a node.
	ErrMissingNode = errors.New("graph: missing node")

	// ErrInvalidWeight indicates a weight that is not a finite number.
	ErrInvalidWeight = errors.New("graph: invalid weight")

	// ErrInvalidAttribute indicates a repeated attribute key or a non-scalar value.
	ErrInvalidAttribute = errors.New("graph: invalid attribute")
)
