package mwmregistry

import "context"

// Scale range constants used by Classify to derive a Descriptor's kind from
// its min/max scale. These mirror the fixed thresholds a map-data renderer
// uses to decide whether a file covers a country, the whole world, or just
// coastline outlines.
const (
	// UpperWorldScale is the max-scale value that marks a World-coverage file.
	UpperWorldScale = 3
	// UpperScale is the max-scale value that marks a Coast-coverage file.
	UpperScale = 5
)

// Classification is the derived kind of a map file, a pure function of its scale range.
type Classification int

const (
	// ClassificationInvalid marks a scale range that matches none of the known kinds.
	ClassificationInvalid Classification = iota
	// ClassificationCountry marks a file with min-scale > 0.
	ClassificationCountry
	// ClassificationWorld marks a file whose max-scale equals UpperWorldScale.
	ClassificationWorld
	// ClassificationCoast marks a file whose max-scale equals UpperScale.
	ClassificationCoast
)

func (c Classification) String() string {
	switch c {
	case ClassificationCountry:
		return "Country"
	case ClassificationWorld:
		return "World"
	case ClassificationCoast:
		return "Coast"
	default:
		return "Invalid"
	}
}

// Classify derives a Classification from a scale range. Rules are evaluated
// in order: min-scale > 0, then max-scale == UpperWorldScale, then
// max-scale == UpperScale; a range matching none of these is invalid.
func Classify(minScale, maxScale int) Classification {
	switch {
	case minScale > 0:
		return ClassificationCountry
	case maxScale == UpperWorldScale:
		return ClassificationWorld
	case maxScale == UpperScale:
		return ClassificationCoast
	default:
		return ClassificationInvalid
	}
}

// LocalFileDescriptor is the input callers present to Register: the path to a
// file on local storage plus the region name it claims to belong to and its
// version. RegionName must be non-empty; Path is opaque to this package and is
// threaded through to VersionProbe, PayloadFactory, and OnDeregistered.
type LocalFileDescriptor struct {
	RegionName string
	Version    int
	Path       any
}

// ScaleRange is the min/max scale metadata a VersionProbe populates.
type ScaleRange struct {
	MinScale int
	MaxScale int
}

// VersionProbe inspects a local file and reports its version and scale range.
// It returns false (with no error) when the file is structurally present but
// not a valid map file; it returns a non-nil error for unexpected I/O failures.
type VersionProbe func(ctx context.Context, file LocalFileDescriptor) (version int, scales ScaleRange, ok bool, err error)

// PayloadFactory opens and materializes a local file's in-memory payload. It
// may perform I/O and may fail; a failure propagates out of Lease acquisition.
type PayloadFactory func(ctx context.Context, file LocalFileDescriptor) (any, error)

// OnDeregistered is invoked exactly once per descriptor that reaches Deregistered.
type OnDeregistered func(file LocalFileDescriptor)
