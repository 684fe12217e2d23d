package merkletree

import (
	"errors"
	"fmt"
)

// ErrEmptyData indicates a tree construction from an empty item sequence.
var ErrEmptyData = errors.New("[merkletree] Empty data")

// InvalidIndexError indicates a leaf or slot access outside the range
// covered by the tree.
type InvalidIndexError struct {
	Index uint64
	Size  uint64
}

func (e InvalidIndexError) Error() string {
	return fmt.Sprintf("[merkletree] Invalid index: %d, tree size: %d", e.Index, e.Size)
}

// InvalidProofError indicates a structurally malformed proof, such as a
// wrong step count or inconsistent digest lengths. It is returned by
// decoding boundaries; proof verification itself never returns it, a
// disproven claim is a boolean false and not an error.
type InvalidProofError struct {
	Reason string
}

func (e InvalidProofError) Error() string {
	return fmt.Sprintf("[merkletree] Invalid proof: %s", e.Reason)
}

// HashError indicates that the hash capability signaled an internal
// failure.
type HashError struct {
	Message string
}

func (e HashError) Error() string {
	return fmt.Sprintf("[merkletree] Hash function error: %s", e.Message)
}

// SerializationError indicates a failure encoding or decoding the
// persisted form of a proof.
type SerializationError struct {
	Message string
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("[merkletree] Serialization error: %s", e.Message)
}

// TreeConstructionError indicates an invalid construction parameter or a
// broken internal invariant during a build.
type TreeConstructionError struct {
	Reason string
}

func (e TreeConstructionError) Error() string {
	return fmt.Sprintf("[merkletree] Tree construction failed: %s", e.Reason)
}
