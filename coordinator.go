package mwmregistry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sharedcode/mwmregistry/cache"
)

// Coordinator is the facade combining the registry, the payload cache, and
// Lease issuance under a single mutex. It is the only exported entry point
// for registering, deregistering, querying, and leasing map files.
//
// A Coordinator must have Cleanup called on it before it is discarded: the
// cache may hold payloads whose destruction requires resources only the
// embedder keeps alive, so draining it is the embedder's responsibility, not
// a finalizer's.
type Coordinator struct {
	mu    sync.Mutex
	reg   *registry
	cache *cache.PayloadCache[Identifier]

	probe          VersionProbe
	factory        PayloadFactory
	onDeregistered OnDeregistered

	inCallback bool
	cleaned    bool
}

// NewCoordinator creates a Coordinator whose payload cache is bounded at
// cacheCapacity idle entries. probe, factory, and onDeregistered are the
// external collaborators described in the package doc; onDeregistered may be
// nil if the embedder does not need the notification.
func NewCoordinator(cacheCapacity int, probe VersionProbe, factory PayloadFactory, onDeregistered OnDeregistered) *Coordinator {
	return &Coordinator{
		reg:            newRegistry(),
		cache:          cache.New[Identifier](cacheCapacity),
		probe:          probe,
		factory:        factory,
		onDeregistered: onDeregistered,
	}
}

// guardReentrancy panics if a callback (VersionProbe, PayloadFactory, or
// OnDeregistered) is already running on this Coordinator's goroutine, since
// those callbacks run under the lock and must not call back in.
func (c *Coordinator) guardReentrancy() {
	if c.inCallback {
		panic("mwmregistry: Coordinator callback re-entered the Coordinator")
	}
}

// Register adds or upgrades a map file. The returned bool reports whether a
// new Descriptor was created (true) as opposed to an idempotent re-register or
// a rejected stale version (false). The returned error is non-nil only for an
// invalid file (failed version probe) or a payload factory failure during the
// automatic lease acquisition that follows a successful registration.
func (c *Coordinator) Register(ctx context.Context, file LocalFileDescriptor) (Lease, bool, error) {
	if file.RegionName == "" {
		return nullLease(), false, Error{Code: InvalidFile, Err: fmt.Errorf("region name must be non-empty")}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.reg.lookupCurrent(file.RegionName)
	if !current.Alive() {
		return c.internalRegister(ctx, file)
	}

	cur := current.Descriptor()
	switch {
	case cur.version < file.Version:
		c.internalDeregister(current)
		return c.internalRegister(ctx, file)

	case cur.version == file.Version:
		// Idempotent re-registration: the current descriptor may have been
		// MarkedForDeregister by a deferred deregister; bring it back to Registered.
		cur.status = Registered
		lease, err := c.acquire(ctx, current)
		return lease, false, err

	default:
		slog.Warn("mwmregistry: rejecting stale version", "region", file.RegionName,
			"current", cur.version, "incoming", file.Version)
		return nullLease(), false, nil
	}
}

// internalRegister probes file, creates a new Descriptor for it, appends it to
// the registry, and returns an acquiring Lease on it. Nothing mutates if the
// probe fails.
func (c *Coordinator) internalRegister(ctx context.Context, file LocalFileDescriptor) (Lease, bool, error) {
	version, scales, ok, err := c.runProbe(ctx, file)
	if err != nil {
		return nullLease(), false, Error{Code: InvalidFile, Err: err, UserData: file.RegionName}
	}
	if !ok {
		return nullLease(), false, Error{Code: InvalidFile, Err: fmt.Errorf("version probe rejected file"), UserData: file.RegionName}
	}
	class := Classify(scales.MinScale, scales.MaxScale)
	if class == ClassificationInvalid {
		return nullLease(), false, Error{Code: InvalidFile, Err: fmt.Errorf("scale range %+v is not a valid classification", scales), UserData: file.RegionName}
	}

	d := newDescriptor(file, version, scales, class)
	c.reg.append(d)

	lease, err := c.acquire(ctx, identifierFor(d))
	return lease, true, err
}

func (c *Coordinator) runProbe(ctx context.Context, file LocalFileDescriptor) (int, ScaleRange, bool, error) {
	c.guardReentrancy()
	c.inCallback = true
	defer func() { c.inCallback = false }()
	return c.probe(ctx, file)
}

// internalDeregister transitions identifier's Descriptor towards Deregistered.
// If no lease is outstanding the transition completes immediately and the
// Descriptor is removed from the registry; otherwise it is only marked and
// completion is deferred to the release that brings the lease count to zero.
// Returns true if deregistration completed immediately.
func (c *Coordinator) internalDeregister(identifier Identifier) bool {
	d := identifier.Descriptor()
	if d == nil {
		return false
	}
	if d.leaseCount == 0 {
		d.status = Deregistered
		c.reg.remove(d)
		c.fireOnDeregistered(d.file)
		return true
	}
	d.status = MarkedForDeregister
	return false
}

func (c *Coordinator) fireOnDeregistered(file LocalFileDescriptor) {
	if c.onDeregistered == nil {
		return
	}
	c.guardReentrancy()
	c.inCallback = true
	defer func() { c.inCallback = false }()
	c.onDeregistered(file)
}

// Deregister resolves the current Identifier for regionName and deregisters
// it, purging any cached payload for that Identifier. It returns true if
// deregistration completed immediately, false if it was deferred (or if the
// region was not registered at all).
func (c *Coordinator) Deregister(regionName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.reg.lookupCurrent(regionName)
	if !current.Alive() {
		return false
	}
	done := c.internalDeregister(current)
	if p, ok := c.cache.Remove(current); ok {
		c.destroyAll([]any{p})
	}
	return done
}

// DeregisterAll deregisters every known region. It iterates a snapshot of
// each region's history, since internalDeregister mutates the history it
// walks, then clears the entire payload cache.
func (c *Coordinator) DeregisterAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, name := range c.reg.regionNames() {
		for _, d := range c.reg.snapshot(name) {
			c.internalDeregister(identifierFor(d))
		}
	}
	c.destroyAll(c.cache.Clear())
}

// IsLoaded reports whether regionName has a current Descriptor with status Registered.
func (c *Coordinator) IsLoaded(regionName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.reg.lookupCurrent(regionName)
	return current.Alive() && current.Descriptor().status == Registered
}

// EnumerateDescriptors returns the current Descriptor for every non-empty
// region history, in unspecified order.
func (c *Coordinator) EnumerateDescriptors() []*Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reg.current()
}

// LookupRegion resolves regionName to its current Identifier, or a null
// Identifier if the region is unknown. This is the public resolver: it never
// asserts, since a caller may legitimately query a region that was never
// registered.
func (c *Coordinator) LookupRegion(regionName string) Identifier {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reg.lookupCurrent(regionName)
}

// GetLockByCountryFile resolves regionName and, if found, acquires a Lease on
// it. If the region is unknown, or its Descriptor is not up to date, it
// returns a null Lease rather than an error.
func (c *Coordinator) GetLockByCountryFile(ctx context.Context, regionName string) (Lease, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.reg.lookupCurrent(regionName)
	if !current.Alive() {
		return nullLease(), nil
	}
	return c.acquire(ctx, current)
}

// acquire implements the lease acquisition critical section: it must be
// called with the lock held. A Descriptor that is not up to date yields a
// null Lease with no error, per spec: leasing a MarkedForDeregister or
// Deregistered Descriptor is an expected negative outcome, not a failure.
func (c *Coordinator) acquire(ctx context.Context, identifier Identifier) (Lease, error) {
	d := identifier.Descriptor()
	if d == nil || !d.IsUpToDate() {
		return nullLease(), nil
	}

	d.leaseCount++

	if payload, ok := c.cache.Take(identifier); ok {
		return Lease{coordinator: c, identifier: identifier, payload: payload}, nil
	}

	payload, err := c.runFactory(ctx, d.file)
	if err != nil {
		// Undo the lease-count bump made just before the factory call.
		d.leaseCount--
		return nullLease(), Error{Code: PayloadFactoryFailure, Err: err, UserData: d.regionName}
	}
	return Lease{coordinator: c, identifier: identifier, payload: payload}, nil
}

func (c *Coordinator) runFactory(ctx context.Context, file LocalFileDescriptor) (any, error) {
	c.guardReentrancy()
	c.inCallback = true
	defer func() { c.inCallback = false }()
	return c.factory(ctx, file)
}

// release implements the lease release critical section. It is invoked by
// Lease.Release and must never be called twice for the same acquisition.
func (c *Coordinator) release(identifier Identifier, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := identifier.Descriptor()
	if d == nil || payload == nil {
		return
	}
	if d.leaseCount <= 0 {
		panic("mwmregistry: Release called on a Descriptor with zero lease count")
	}
	d.leaseCount--

	if d.leaseCount == 0 && d.status == MarkedForDeregister {
		if !c.internalDeregister(identifier) {
			panic("mwmregistry: deferred deregistration did not complete on last release")
		}
		c.destroyAll([]any{payload})
		return
	}

	if d.IsUpToDate() {
		if d.leaseCount > 0 {
			// Other Leases on this Descriptor are still outstanding; the cache
			// only takes payloads of Descriptors with no outstanding Lease.
			c.destroyAll([]any{payload})
			return
		}
		_, evictedPayload, evicted := c.cache.Put(identifier, payload)
		if evicted {
			c.destroyAll([]any{evictedPayload})
		}
		return
	}

	// Status is already Deregistered: drop the payload.
	c.destroyAll([]any{payload})
}

// destroyAll releases payloads evicted from, or never returned to, the cache.
// Payloads are opaque to this package: a payload that implements
// Close() error is closed (a close failure is logged), and any other payload
// is simply dropped and left to GC.
func (c *Coordinator) destroyAll(payloads []any) {
	for _, p := range payloads {
		if closer, ok := p.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("mwmregistry: payload close failed", "error", err)
			}
		}
	}
}

// ClearCache drops every idle payload from the cache. Descriptors and lease
// counts are unaffected.
func (c *Coordinator) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.destroyAll(c.cache.Clear())
}

// Cleanup drains the payload cache and marks the Coordinator ready for
// disposal. It must be called before the Coordinator is discarded.
func (c *Coordinator) Cleanup() {
	c.ClearCache()
	c.mu.Lock()
	c.cleaned = true
	c.mu.Unlock()
}

// AssertClean panics if Cleanup was not called, or the cache is non-empty.
// Embedders that wrap Coordinator in their own teardown path should call this
// from their own Close/Cleanup to surface the contract violation early,
// mirroring the teardown discipline of the destructor this package has none of.
func (c *Coordinator) AssertClean() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cleaned || c.cache.Len() != 0 {
		panic("mwmregistry: Coordinator discarded without calling Cleanup on an empty cache")
	}
}
