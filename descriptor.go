package mwmregistry

// Status is the lifecycle state of a Descriptor.
type Status int

const (
	// Registered means the Descriptor is current and leasable.
	Registered Status = iota
	// MarkedForDeregister means a deregister arrived while leases were outstanding;
	// the terminal transition to Deregistered happens when the last lease releases.
	MarkedForDeregister
	// Deregistered is terminal: the Descriptor has been removed from the registry.
	Deregistered
)

func (s Status) String() string {
	switch s {
	case Registered:
		return "Registered"
	case MarkedForDeregister:
		return "MarkedForDeregister"
	case Deregistered:
		return "Deregistered"
	default:
		return "Unknown"
	}
}

// Descriptor is the in-memory metadata record for one map file. It is an
// opaque carrier of identity plus two pieces of mutable state, status and
// leaseCount, both of which are only ever touched under the owning
// Coordinator's lock.
type Descriptor struct {
	id handleID

	regionName string
	version    int
	file       LocalFileDescriptor
	scales     ScaleRange
	class      Classification

	status     Status
	leaseCount int
}

// RegionName is the stable string key of this Descriptor's region.
func (d *Descriptor) RegionName() string { return d.regionName }

// Version is the monotonic version of the registered file.
func (d *Descriptor) Version() int { return d.version }

// File returns the local file this Descriptor was registered from.
func (d *Descriptor) File() LocalFileDescriptor { return d.file }

// Scales returns the min/max scale range classifying this Descriptor.
func (d *Descriptor) Scales() ScaleRange { return d.scales }

// Classification returns the derived Country/World/Coast kind.
func (d *Descriptor) Classification() Classification { return d.class }

// Status returns the current lifecycle status.
func (d *Descriptor) Status() Status { return d.status }

// LeaseCount returns the number of outstanding Leases referencing this Descriptor.
func (d *Descriptor) LeaseCount() int { return d.leaseCount }

// IsUpToDate reports whether payloads may be materialized for this Descriptor.
// Callers must not acquire a Lease against a Descriptor that is not up to date.
func (d *Descriptor) IsUpToDate() bool {
	return d.status == Registered
}

func newDescriptor(file LocalFileDescriptor, version int, scales ScaleRange, class Classification) *Descriptor {
	return &Descriptor{
		id:         newHandleID(),
		regionName: file.RegionName,
		version:    version,
		file:       file,
		scales:     scales,
		class:      class,
		status:     Registered,
	}
}
