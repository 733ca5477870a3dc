package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReferenceTableComplementary(t *testing.T) {
	if Reference.Len() != ReferenceLength {
		t.Fatalf("Expected %d samples, got %d", ReferenceLength, Reference.Len())
	}

	n := Reference.Len()
	for i := 0; i < n; i++ {
		a := Reference.SampleAt(i)
		b := Reference.SampleAt((i + n/2) % n)
		if int(a)+int(b) != 255 {
			t.Errorf("sample_at(%d)=%d + sample_at(%d)=%d != 255", i, a, (i+n/2)%n, b)
		}
	}

	if err := Reference.Verify(); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestReferenceTableMatchesSine(t *testing.T) {
	// sinetable.go is generated from Sine; catch a stale file
	want, err := Sine(ReferenceLength)
	if err != nil {
		t.Fatalf("Sine failed: %v", err)
	}
	if diff := cmp.Diff(want, Reference); diff != "" {
		t.Errorf("Reference table is stale (-want +got):\n%s", diff)
	}
}

func TestReferenceTableShape(t *testing.T) {
	if Reference.SampleAt(0) != MidScale {
		t.Errorf("Expected zero crossing %d at index 0, got %d", MidScale, Reference.SampleAt(0))
	}

	var lo, hi Sample = 255, 0
	for _, s := range Reference {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if lo != 0 || hi != 255 {
		t.Errorf("Expected full scale 0..255, got %d..%d", lo, hi)
	}

	// Positive half-wave first
	for i := 1; i < Reference.Half(); i++ {
		if Reference.SampleAt(i) < MidScale {
			t.Errorf("sample %d = %d below mid-scale in positive half", i, Reference.SampleAt(i))
		}
	}
}

func TestSineLengths(t *testing.T) {
	testCases := []int{4, 6, 64, 322, 386, 1024}

	for _, n := range testCases {
		tbl, err := Sine(n)
		if err != nil {
			t.Errorf("Sine(%d) failed: %v", n, err)
			continue
		}
		if tbl.Len() != n {
			t.Errorf("Sine(%d) returned %d samples", n, tbl.Len())
		}
		if err := tbl.Verify(); err != nil {
			t.Errorf("Sine(%d) not complementary: %v", n, err)
		}
	}
}

func TestSineRejectsBadLengths(t *testing.T) {
	testCases := []struct {
		length int
		err    error
	}{
		{0, ErrShortTable},
		{2, ErrShortTable},
		{5, ErrOddLength},
		{387, ErrOddLength},
	}

	for _, tc := range testCases {
		_, err := Sine(tc.length)
		if !errors.Is(err, tc.err) {
			t.Errorf("Sine(%d): expected %v, got %v", tc.length, tc.err, err)
		}
	}
}

func TestVerifyDetectsBrokenSymmetry(t *testing.T) {
	tbl, err := Sine(16)
	if err != nil {
		t.Fatal(err)
	}
	broken := append(Table(nil), tbl...)
	broken[3]++

	if err := broken.Verify(); err == nil {
		t.Error("Expected Verify to reject a non-complementary table")
	}
	if err := tbl.Verify(); err != nil {
		t.Errorf("Original table should still verify: %v", err)
	}
}

func TestSampleAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range index")
		}
	}()
	Reference.SampleAt(Reference.Len())
}

func TestComplementEquivalence(t *testing.T) {
	// ^s on an 8-bit value is the same as 255-s; wider types are not
	for v := 0; v < 256; v++ {
		s := Sample(v)
		if uint8(^s) != uint8(255-v) {
			t.Errorf("^%d = %d, expected %d", v, ^s, 255-v)
		}
		if uint8(-s) == uint8(255-v) {
			t.Errorf("two's complement of %d unexpectedly equals 255-%d", v, v)
		}
	}
}
