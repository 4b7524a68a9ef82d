package builder

import "errors"

// Sentinel errors returned by topology constructors.
var (
	// ErrTooFewVertices indicates the requested size is below the topology minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrInvalidDegree indicates an attachment/degree parameter out of range.
	ErrInvalidDegree = errors.New("builder: degree parameter out of range")

	// ErrInvalidBlocks indicates a bad planted-partition shape.
	ErrInvalidBlocks = errors.New("builder: blocks and block size must be positive")

	// ErrConstructFailed indicates a constructor could not be applied.
	ErrConstructFailed = errors.New("builder: construction failed")
)
