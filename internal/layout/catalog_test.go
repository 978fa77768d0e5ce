package layout

import (
	"fmt"
	"testing"
)

func TestLayoutsForCount_NeverEmpty(t *testing.T) {
	for count := 1; count <= 12; count++ {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			layouts := LayoutsForCount(count)
			if len(layouts) == 0 {
				t.Fatal("expected at least the fallback layout, got none")
			}

			last := layouts[len(layouts)-1]
			fb := FallbackLayout(count)
			if last.Name != fb.Name || last.Areas != fb.Areas {
				t.Errorf("expected fallback %q last, got %q", fb.Name, last.Name)
			}
		})
	}
}

func TestLayoutsForCount_CuratedCoverage(t *testing.T) {
	// The curated catalog covers the page sizes the distributor produces.
	for count := 1; count <= 6; count++ {
		layouts := LayoutsForCount(count)
		if len(layouts) < 2 {
			t.Errorf("count %d: expected curated templates before the fallback, got %d total", count, len(layouts))
		}
	}
}

func TestLayoutsForCount_UniqueNames(t *testing.T) {
	for count := 1; count <= 8; count++ {
		seen := make(map[string]bool)
		for _, g := range LayoutsForCount(count) {
			if seen[g.Name] {
				t.Errorf("count %d: duplicate template name %q", count, g.Name)
			}
			seen[g.Name] = true
		}
	}
}

func TestLayoutByName(t *testing.T) {
	tests := []struct {
		name  string
		count int
		ok    bool
	}{
		{"two-diagonal", 2, true},
		{"four-porthole", 4, true},
		{"fallback-7", 7, true},
		{"fallback-2", 2, true},
		{"two-diagonal", 3, false},
		{"no-such-template", 2, false},
		{"fallback-7", 6, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.name, tt.count), func(t *testing.T) {
			g, ok := LayoutByName(tt.name, tt.count)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && g.Name != tt.name {
				t.Errorf("resolved wrong template %q", g.Name)
			}
		})
	}
}

func TestCuratedCounts(t *testing.T) {
	counts := CuratedCounts()
	if len(counts) == 0 {
		t.Fatal("expected curated counts, got none")
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] <= counts[i-1] {
			t.Fatalf("counts not strictly ascending: %v", counts)
		}
	}
	// Pages hold 1 to 6 photos with the default page size.
	for want := 1; want <= 6; want++ {
		found := false
		for _, c := range counts {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no curated templates for count %d", want)
		}
	}
}

func TestCatalog_SlotAccessorsAgree(t *testing.T) {
	for _, count := range CuratedCounts() {
		for _, g := range LayoutsForCount(count) {
			for slot := 0; slot < count; slot++ {
				sb := g.SlotBounds(slot)
				style := g.WrapperStyle(slot)

				shape, err := ParseClipStyle(style)
				if err != nil {
					t.Fatalf("template %s slot %d: clip parse failed: %v", g.Name, slot, err)
				}
				if shape != nil && sb == nil && !g.UnsafePan {
					t.Errorf("template %s slot %d: clipped but no bounds to clamp against", g.Name, slot)
				}
			}
		}
	}
}
