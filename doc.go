// Package mwmregistry is a registry and handle-lifecycle manager for
// versioned, on-disk map data files ("map files"). It mediates between code
// that wishes to query map data and the set of currently-known map files on
// local storage: it maintains a catalogue of map files keyed by region name,
// hands out reference-counted Leases on a bounded LRU cache of opened
// payloads, and coordinates concurrent registration, deregistration, and
// lookup under a single Coordinator mutex.
//
// Parsing of map-file contents, the physical I/O that materializes a
// payload, and classification policy beyond the pure scale-range function are
// external collaborators supplied by the embedder through VersionProbe,
// PayloadFactory, and OnDeregistered callbacks. This package is in-memory
// only: it persists nothing across process restarts and coordinates nothing
// across processes.
package mwmregistry

// Concurrency model
//
// All mutation of the registry, the payload cache, and descriptor mutable
// fields (status, lease count) happens under the Coordinator's single mutex.
// The VersionProbe and PayloadFactory callbacks, and the OnDeregistered hook,
// run while that mutex is held; they must not call back into the Coordinator,
// since re-entrant locking is undefined. There is no cancellation or timeout
// support for Lease acquisition: all Coordinator operations are synchronous.
