package mwmregistry

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// handleID is a thin wrapper over github.com/google/uuid.UUID, kept so the rest
// of the package stays decoupled from the external package's API surface. It
// backs the comparable/hashable token inside an Identifier.
type handleID uuid.UUID

// nilHandleID is the zero-value handleID.
var nilHandleID handleID

// newHandleID returns a new randomly generated handleID. It makes up to 10
// attempts, sleeping 1ms after each failure, and panics only if every attempt
// fails, which should never happen under normal conditions.
func newHandleID() handleID {
	var err error
	for i := 0; i < 10; i++ {
		var u uuid.UUID
		u, err = uuid.NewRandom()
		if err == nil {
			return handleID(u)
		}
		// Sleep 1 millisecond then retry to generate a new id.
		time.Sleep(time.Millisecond)
	}
	// Panic if still can't generate an id after 10 attempts. Should never happen but in case.
	panic(err)
}

// isNil reports whether the handleID equals the zero-value handleID.
func (i handleID) isNil() bool {
	return bytes.Equal(i[:], nilHandleID[:])
}

// String returns the canonical string representation of the handleID.
func (i handleID) String() string {
	return uuid.UUID(i).String()
}
