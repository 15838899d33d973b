package domain

import (
	"github.com/mr-tron/base58"
)

// ProgramIDSize is the decoded length of a program address in bytes.
const ProgramIDSize = 32

// ProgramID is a validated base58-encoded program address.
type ProgramID string

// ParseProgramID validates a base58 program address.
func ParseProgramID(s string) (ProgramID, error) {
	if s == "" {
		return "", &InvalidProgramIDError{Input: s, Reason: "empty"}
	}

	raw, err := base58.Decode(s)
	if err != nil {
		return "", &InvalidProgramIDError{Input: s, Reason: err.Error()}
	}
	if len(raw) != ProgramIDSize {
		return "", &InvalidProgramIDError{Input: s, Reason: "decoded length is not 32 bytes"}
	}

	return ProgramID(s), nil
}

func (p ProgramID) String() string {
	return string(p)
}
