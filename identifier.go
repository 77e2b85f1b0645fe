package mwmregistry

// Identifier is a stable, long-lived handle to a Descriptor, independent of
// whether that Descriptor is currently registered. Comparing two Identifiers
// compares the underlying Descriptor's identity, not its content; a zero-value
// Identifier is null and compares unequal to every alive Identifier.
//
// An Identifier stays valid for equality comparison even after its Descriptor
// has been Deregistered, which is how the payload cache locates entries that
// belong to a descriptor that is mid-teardown.
type Identifier struct {
	descriptor *Descriptor
	token      handleID
}

// nullIdentifier is returned wherever lookup finds nothing.
var nullIdentifier Identifier

// Alive reports whether this Identifier references a Descriptor at all.
func (i Identifier) Alive() bool {
	return i.descriptor != nil
}

// Equal reports whether two Identifiers reference the same Descriptor.
// A null Identifier equals only another null Identifier.
func (i Identifier) Equal(other Identifier) bool {
	if i.descriptor == nil || other.descriptor == nil {
		return i.descriptor == other.descriptor
	}
	return i.token == other.token
}

// Descriptor returns the referenced Descriptor, or nil for a null Identifier.
func (i Identifier) Descriptor() *Descriptor {
	return i.descriptor
}

func identifierFor(d *Descriptor) Identifier {
	if d == nil {
		return nullIdentifier
	}
	return Identifier{descriptor: d, token: d.id}
}
