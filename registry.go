package mwmregistry

// registry is the Coordinator's internal catalogue: region name -> ordered
// history of Descriptors for that region, oldest first, current (newest)
// last. All methods assume the Coordinator's lock is already held; registry
// itself does no locking of its own.
type registry struct {
	history map[string][]*Descriptor
}

func newRegistry() *registry {
	return &registry{history: make(map[string][]*Descriptor)}
}

// lookupCurrent returns the Identifier of the last Descriptor in the region's
// history, or a null Identifier if the region is unknown or its history is
// (transiently) empty.
func (r *registry) lookupCurrent(regionName string) Identifier {
	h := r.history[regionName]
	if len(h) == 0 {
		return nullIdentifier
	}
	return identifierFor(h[len(h)-1])
}

// append adds a newly-registered Descriptor to the tail of its region's history.
func (r *registry) append(d *Descriptor) {
	r.history[d.regionName] = append(r.history[d.regionName], d)
}

// remove deletes d from its region's history (it may not be the last entry,
// though in practice only internalDeregister removes entries and it always
// targets the Descriptor currently reachable by Identifier). Returns whether d
// was found.
func (r *registry) remove(d *Descriptor) bool {
	h := r.history[d.regionName]
	for i, e := range h {
		if e == d {
			r.history[d.regionName] = append(h[:i], h[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns a copy of the region's history sequence, safe to range
// over while the underlying slice is concurrently mutated by the caller.
func (r *registry) snapshot(regionName string) []*Descriptor {
	h := r.history[regionName]
	out := make([]*Descriptor, len(h))
	copy(out, h)
	return out
}

// regionNames returns all region names currently known to the registry,
// including ones whose history sequence is (transiently) empty.
func (r *registry) regionNames() []string {
	names := make([]string, 0, len(r.history))
	for name := range r.history {
		names = append(names, name)
	}
	return names
}

// current returns the current (last) Descriptor for every region with a
// non-empty history, in unspecified order.
func (r *registry) current() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.history))
	for _, h := range r.history {
		if len(h) > 0 {
			out = append(out, h[len(h)-1])
		}
	}
	return out
}
