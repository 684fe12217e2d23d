// Defines the serialized form of proofs for persistence and transport.
// Currently this module supports JSON marshal/unmarshal only. No
// versioning or framing is added; that is the transport's concern.

package application

import (
	"encoding/json"
	"strconv"

	"github.com/merkle-sys/merkle-go/merkletree"
)

// MarshalProof returns a JSON encoding of the proof.
func MarshalProof(proof *merkletree.MerkleProof) ([]byte, error) {
	msg, err := json.Marshal(proof)
	if err != nil {
		return nil, merkletree.SerializationError{Message: err.Error()}
	}
	return msg, nil
}

// UnmarshalProof parses a JSON-encoded proof and validates its
// structure: directions must be left or right and every step digest
// must have the same length. A proof that fails validation is reported
// as malformed, which is distinct from a proof that verifies false.
func UnmarshalProof(msg []byte) (*merkletree.MerkleProof, error) {
	proof := new(merkletree.MerkleProof)
	if err := json.Unmarshal(msg, proof); err != nil {
		return nil, merkletree.SerializationError{Message: err.Error()}
	}
	for i, step := range proof.Steps {
		if step.Direction != merkletree.Left && step.Direction != merkletree.Right {
			return nil, merkletree.InvalidProofError{
				Reason: "unknown direction in step " + strconv.Itoa(i),
			}
		}
		if len(step.Hash) != len(proof.Steps[0].Hash) {
			return nil, merkletree.InvalidProofError{
				Reason: "inconsistent digest length in step " + strconv.Itoa(i),
			}
		}
	}
	return proof, nil
}
