package rollout

import (
	"strconv"
	"testing"

	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
)

func population(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "u" + strconv.Itoa(i+1)
	}
	return out
}

func TestBucket_Pinned(t *testing.T) {
	// Any change here reshuffles every subject in production.
	tests := []struct {
		subject, flag string
		bucket        int
		variant       dto.Variant
	}{
		{"u1", "beta-x", 89, dto.VariantA},
		{"alice", "checkout", 39, dto.VariantA},
		{"", "", 23, dto.VariantA},
	}
	for _, tt := range tests {
		if got := Bucket(tt.subject, tt.flag); got != tt.bucket {
			t.Errorf("Bucket(%q, %q) = %d, want %d", tt.subject, tt.flag, got, tt.bucket)
		}
		if got := AssignVariant(tt.subject, tt.flag); got != tt.variant {
			t.Errorf("AssignVariant(%q, %q) = %s, want %s", tt.subject, tt.flag, got, tt.variant)
		}
	}
}

func TestBucket_RangeAndDeterminism(t *testing.T) {
	for _, s := range population(2000) {
		b := Bucket(s, "f1")
		if b < 0 || b >= 100 {
			t.Fatalf("bucket %d out of range for %s", b, s)
		}
		if Bucket(s, "f1") != b {
			t.Fatalf("bucket not deterministic for %s", s)
		}
	}
}

func TestBucket_Uniform(t *testing.T) {
	hist := make([]int, 100)
	hit := 0
	for _, s := range population(10000) {
		hist[Bucket(s, "uniform")]++
		if Hit(s, "uniform", 50) {
			hit++
		}
	}
	if hit < 4700 || hit > 5300 {
		t.Fatalf("expected ~50%% included, got %d of 10000", hit)
	}
	for b, n := range hist {
		if n < 60 || n > 140 {
			t.Fatalf("bucket %d has %d subjects, expected ~100", b, n)
		}
	}
}

func TestBucket_DecorrelatedAcrossFlags(t *testing.T) {
	same := 0
	for _, s := range population(10000) {
		if (Bucket(s, "flag-a") < 50) == (Bucket(s, "flag-b") < 50) {
			same++
		}
	}
	if same < 4700 || same > 5300 {
		t.Fatalf("inclusion in two flags looks correlated: %d of 10000 agree", same)
	}
}

func TestHit_Edges(t *testing.T) {
	for _, s := range population(1000) {
		if Hit(s, "f", 0) {
			t.Fatalf("0%% must exclude %s", s)
		}
		if !Hit(s, "f", 100) {
			t.Fatalf("100%% must include %s", s)
		}
	}
}

func TestHit_Monotonic(t *testing.T) {
	for _, s := range population(5000) {
		if Hit(s, "f1", 30) && !Hit(s, "f1", 70) {
			t.Fatalf("%s included at 30%% but not at 70%%", s)
		}
	}
}

func TestAssignVariant_SplitAndIndependence(t *testing.T) {
	type cell struct {
		low bool
		v   dto.Variant
	}
	cells := make(map[cell]int)
	a := 0
	for _, s := range population(10000) {
		v := AssignVariant(s, "experiment")
		if v == dto.VariantA {
			a++
		}
		cells[cell{low: Bucket(s, "experiment") < 50, v: v}]++
	}
	if a < 4700 || a > 5300 {
		t.Fatalf("expected ~50/50 split, got %d A of 10000", a)
	}
	for _, low := range []bool{true, false} {
		for _, v := range []dto.Variant{dto.VariantA, dto.VariantB} {
			n := cells[cell{low: low, v: v}]
			if n < 2300 || n > 2700 {
				t.Fatalf("variant %s with low bucket=%v has %d subjects, expected ~2500", v, low, n)
			}
		}
	}
}

func BenchmarkBucket(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Bucket("user-123456", "checkout-redesign")
	}
}
