package mwmregistry

import "testing"

func TestDescriptor_IsUpToDate(t *testing.T) {
	d := newDescriptor(file("de", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	if !d.IsUpToDate() {
		t.Fatal("expected a freshly registered descriptor to be up to date")
	}
	d.status = MarkedForDeregister
	if d.IsUpToDate() {
		t.Fatal("expected MarkedForDeregister to not be up to date")
	}
	d.status = Deregistered
	if d.IsUpToDate() {
		t.Fatal("expected Deregistered to not be up to date")
	}
}

func TestDescriptor_Accessors(t *testing.T) {
	lf := file("fr", 7)
	d := newDescriptor(lf, 7, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)

	if d.RegionName() != "fr" {
		t.Fatalf("expected region name fr, got %s", d.RegionName())
	}
	if d.Version() != 7 {
		t.Fatalf("expected version 7, got %d", d.Version())
	}
	if d.Classification() != ClassificationCountry {
		t.Fatalf("expected ClassificationCountry, got %v", d.Classification())
	}
	if d.Status() != Registered {
		t.Fatalf("expected Registered, got %v", d.Status())
	}
	if d.LeaseCount() != 0 {
		t.Fatalf("expected lease count 0, got %d", d.LeaseCount())
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[Status]string{
		Registered:          "Registered",
		MarkedForDeregister: "MarkedForDeregister",
		Deregistered:        "Deregistered",
		Status(99):          "Unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name           string
		min, max       int
		classification Classification
	}{
		{"country", 2, 17, ClassificationCountry},
		{"world", 0, UpperWorldScale, ClassificationWorld},
		{"coast", 0, UpperScale, ClassificationCoast},
		{"invalid", 0, 9, ClassificationInvalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.min, c.max); got != c.classification {
				t.Errorf("Classify(%d,%d) = %v, want %v", c.min, c.max, got, c.classification)
			}
		})
	}
}
