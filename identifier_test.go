package mwmregistry

import "testing"

func TestIdentifier_NullIsNotAlive(t *testing.T) {
	var i Identifier
	if i.Alive() {
		t.Fatal("expected zero-value Identifier to not be alive")
	}
	if i.Descriptor() != nil {
		t.Fatal("expected zero-value Identifier's Descriptor to be nil")
	}
}

func TestIdentifier_EqualComparesByDescriptorIdentity(t *testing.T) {
	d1 := newDescriptor(file("a", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)
	d2 := newDescriptor(file("a", 1), 1, ScaleRange{MinScale: 2, MaxScale: 17}, ClassificationCountry)

	i1 := identifierFor(d1)
	i1Again := identifierFor(d1)
	i2 := identifierFor(d2)

	if !i1.Equal(i1Again) {
		t.Fatal("expected two Identifiers for the same Descriptor to be equal")
	}
	if i1.Equal(i2) {
		t.Fatal("expected Identifiers for distinct Descriptors (even with identical content) to differ")
	}
	if i1.Equal(nullIdentifier) || nullIdentifier.Equal(i1) {
		t.Fatal("expected an alive Identifier to never equal the null Identifier")
	}
	if !nullIdentifier.Equal(nullIdentifier) {
		t.Fatal("expected the null Identifier to equal itself")
	}
}

func TestIdentifierFor_Nil(t *testing.T) {
	if identifierFor(nil).Alive() {
		t.Fatal("expected identifierFor(nil) to produce a non-alive Identifier")
	}
}
