package mwmregistry

import (
	"context"
	"testing"
)

func TestLease_NullLeaseReleaseIsNoOp(t *testing.T) {
	l := nullLease()
	if l.Active() {
		t.Fatal("expected a null Lease to be inactive")
	}
	l.Release()
	l.Release()
	if l.Payload() != nil {
		t.Fatal("expected a null Lease to never carry a payload")
	}
}

func TestLease_DoubleReleaseIsSafe(t *testing.T) {
	c, _ := newTestCoordinator(t, 4)
	ctx := context.Background()

	lease, _, err := c.Register(ctx, file("de", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lease.Release()
	if lease.Active() {
		t.Fatal("expected lease to be inactive after release")
	}
	// Releasing again must not panic or double-decrement the lease count.
	lease.Release()

	d := lease.Descriptor()
	if d.LeaseCount() != 0 {
		t.Fatalf("expected lease count 0 after release, got %d", d.LeaseCount())
	}
}
