package mwmregistry

// Lease is a scoped borrow of a map file's payload. It carries the Identifier
// of the Descriptor it was acquired against and, unless acquisition failed,
// the materialized payload. Release returns the payload to the Coordinator's
// cache (or lets it be destroyed, if the Descriptor was deregistered while the
// Lease was outstanding).
//
// A Lease is meant to be used by a single owner at a time: Go has no
// destructors, so callers must call Release explicitly (typically via defer)
// when done with the payload. A zero-value Lease is "null": it has no payload
// and Release on it is a no-op.
type Lease struct {
	coordinator *Coordinator
	identifier  Identifier
	payload     any
	released    bool
}

// Identifier returns the Lease's Identifier, which may be null if acquisition
// never found or could not leverage a Descriptor.
func (l *Lease) Identifier() Identifier {
	return l.identifier
}

// Descriptor returns the Descriptor this Lease refers to, or nil for a null Lease.
func (l *Lease) Descriptor() *Descriptor {
	return l.identifier.Descriptor()
}

// Payload returns the materialized payload, or nil if the Lease is null.
func (l *Lease) Payload() any {
	return l.payload
}

// Active reports whether this Lease holds a payload that must eventually be released.
func (l *Lease) Active() bool {
	return !l.released && l.payload != nil
}

// Release returns the payload to the Coordinator and marks the Lease inactive.
// Calling Release more than once, or on a null Lease, is a safe no-op.
func (l *Lease) Release() {
	if l.released || l.payload == nil {
		l.released = true
		return
	}
	l.released = true
	l.coordinator.release(l.identifier, l.payload)
	l.payload = nil
}

// nullLease returns an inactive Lease with no payload, used whenever an
// operation finds nothing to lease or the target is not up to date.
func nullLease() Lease {
	return Lease{released: true}
}
