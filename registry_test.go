package mwmregistry

import "testing"

func TestRegistry_LookupCurrentOnUnknownRegionIsNull(t *testing.T) {
	r := newRegistry()
	if r.lookupCurrent("unknown").Alive() {
		t.Fatal("expected lookup of unknown region to be null")
	}
}

func TestRegistry_AppendAndLookupCurrent(t *testing.T) {
	r := newRegistry()
	d1 := newDescriptor(file("de", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	d2 := newDescriptor(file("de", 2), 2, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)

	r.append(d1)
	if r.lookupCurrent("de").Descriptor() != d1 {
		t.Fatal("expected current to be d1 after first append")
	}
	r.append(d2)
	if r.lookupCurrent("de").Descriptor() != d2 {
		t.Fatal("expected current to be d2 (last appended) after second append")
	}
}

func TestRegistry_RemoveNonLastEntryKeepsCurrent(t *testing.T) {
	r := newRegistry()
	d1 := newDescriptor(file("de", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	d2 := newDescriptor(file("de", 2), 2, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	r.append(d1)
	r.append(d2)

	if !r.remove(d1) {
		t.Fatal("expected remove to find d1")
	}
	if r.lookupCurrent("de").Descriptor() != d2 {
		t.Fatal("expected d2 to still be current after removing the older entry")
	}
	if r.remove(d1) {
		t.Fatal("expected a second remove of d1 to report not found")
	}
}

func TestRegistry_SnapshotIsIndependentOfMutation(t *testing.T) {
	r := newRegistry()
	d1 := newDescriptor(file("de", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	r.append(d1)

	snap := r.snapshot("de")
	r.remove(d1)

	if len(snap) != 1 || snap[0] != d1 {
		t.Fatalf("expected snapshot to retain its copy despite later mutation, got %+v", snap)
	}
	if len(r.snapshot("de")) != 0 {
		t.Fatal("expected live history to be empty after remove")
	}
}

func TestRegistry_CurrentAndRegionNames(t *testing.T) {
	r := newRegistry()
	dA := newDescriptor(file("a", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	dB := newDescriptor(file("b", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	r.append(dA)
	r.append(dB)

	names := r.regionNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 region names, got %d", len(names))
	}
	current := r.current()
	if len(current) != 2 {
		t.Fatalf("expected 2 current descriptors, got %d", len(current))
	}
}
