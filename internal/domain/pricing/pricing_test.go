package pricing

import (
	"errors"
	"testing"
)

func TestPriceEstimate_KnownValues(t *testing.T) {
	b, err := PriceEstimate(30, "climateflex", true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.MaterialLabor != 8400 {
		t.Fatalf("expected material/labor 8400, got %v", b.MaterialLabor)
	}
	if b.Disposal != 850 {
		t.Fatalf("expected disposal 850, got %v", b.Disposal)
	}
	if b.Permits != 250 {
		t.Fatalf("expected permits 250, got %v", b.Permits)
	}
	if b.Subtotal != 9500 || b.Total != 9500 {
		t.Fatalf("expected subtotal=total=9500, got %v / %v", b.Subtotal, b.Total)
	}
}

func TestPriceEstimate_ExcludedFeesAreZero(t *testing.T) {
	b, err := PriceEstimate(30, "climateflex", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Disposal != 0 || b.Permits != 0 {
		t.Fatalf("expected zero fees, got %v / %v", b.Disposal, b.Permits)
	}
	if b.Subtotal != 8400 || b.Total != 8400 {
		t.Fatalf("expected 8400, got %v / %v", b.Subtotal, b.Total)
	}
}

func TestPriceEstimate_UnknownPackage(t *testing.T) {
	_, err := PriceEstimate(30, "nonexistent-package", true, true)
	if !errors.Is(err, ErrInvalidPackage) {
		t.Fatalf("expected ErrInvalidPackage, got %v", err)
	}
}

func TestPackageByID(t *testing.T) {
	p, err := PackageByID("climateflex")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PricePerSquare != 280 || !p.Recommended {
		t.Fatalf("unexpected package: %+v", p)
	}

	if _, err := PackageByID(""); !errors.Is(err, ErrInvalidPackage) {
		t.Fatalf("expected ErrInvalidPackage, got %v", err)
	}
}

func TestPackages_CopyIsIsolated(t *testing.T) {
	a := Packages()
	a[0].PricePerSquare = 1
	b := Packages()
	if b[0].PricePerSquare == 1 {
		t.Fatal("catalog mutated through returned slice")
	}
}

func TestTimeline_Buckets(t *testing.T) {
	cases := []struct {
		squares float64
		want    string
	}{
		{10, "1-2 days"},
		{15, "1-2 days"},
		{30, "2-3 days"},
		{50, "3-5 days"},
		{80, "1-2 weeks"},
	}
	for _, tc := range cases {
		if got := Timeline(tc.squares); got != tc.want {
			t.Fatalf("squares %v: expected %q, got %q", tc.squares, tc.want, got)
		}
	}
}

func TestLineItems_SkipsExcludedFees(t *testing.T) {
	pkg, _ := PackageByID("climateflex")

	b, _ := PriceEstimate(30, "climateflex", true, false)
	items := LineItems(b, pkg)
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}

	b, _ = PriceEstimate(30, "climateflex", false, false)
	items = LineItems(b, pkg)
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
}
