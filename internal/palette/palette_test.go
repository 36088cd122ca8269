package palette

import (
	"image/color"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestParseInvalidFallsBackToWhite(t *testing.T) {
	cases := []string{"", "red", "#12", "#gggggg", "1fa2ff!", "#12345"}
	for _, in := range cases {
		c := Parse(in)
		if c.R != 1 || c.G != 1 || c.B != 1 {
			t.Errorf("Parse(%q) = %v, want white", in, c)
		}
	}
}

func TestParseAcceptsValidHex(t *testing.T) {
	c := Parse("  #FF8000 ")
	r, g, b := c.RGB255()
	if r != 0xff || g != 0x80 || b != 0x00 {
		t.Fatalf("Parse(#FF8000) = %d,%d,%d", r, g, b)
	}
}

func TestBoostIdempotentWhenSaturated(t *testing.T) {
	// Pure hue, fully saturated: boosting must clamp back to s=1.
	c := colorful.Hsl(200, 1, 0.5)
	once := Boost(c, 1.8)
	twice := Boost(once, 1.8)

	_, s1, _ := once.Hsl()
	if s1 > 1+1e-9 {
		t.Fatalf("boosted saturation = %v, want <= 1", s1)
	}
	if math.Abs(once.R-twice.R) > 1e-9 || math.Abs(once.G-twice.G) > 1e-9 || math.Abs(once.B-twice.B) > 1e-9 {
		t.Fatalf("Boost not idempotent on saturated input: %v vs %v", once, twice)
	}
}

func TestBoostRaisesSaturation(t *testing.T) {
	c := colorful.Hsl(120, 0.4, 0.5)
	_, s0, _ := c.Hsl()
	_, s1, _ := Boost(c, 1.5).Hsl()
	if s1 <= s0 {
		t.Fatalf("boosted saturation %v not above original %v", s1, s0)
	}
}

func TestAddDerivesNewHexFromLast(t *testing.T) {
	p := New([]string{"#ff0000", "#00ff00", "#0000ff"}, 1)

	before := append([]string(nil), p.Hex()...)
	if !p.Add() {
		t.Fatal("Add failed below MaxColors")
	}
	after := p.Hex()
	if len(after) != len(before)+1 {
		t.Fatalf("Hex length after Add = %d, want %d", len(after), len(before)+1)
	}
	for i, h := range before {
		if after[i] != h {
			t.Fatalf("Add rewrote existing entry %d: %q -> %q", i, h, after[i])
		}
	}
	added := after[len(after)-1]
	if added == before[len(before)-1] {
		t.Fatalf("Add duplicated the last color %q instead of rotating its hue", added)
	}
	if _, err := colorful.Hex(added); err != nil {
		t.Fatalf("Add produced an unparsable hex %q: %v", added, err)
	}

	if !p.Remove() {
		t.Fatal("Remove failed above MinColors")
	}
	if got := p.Hex(); len(got) != len(before) || got[len(got)-1] != before[len(before)-1] {
		t.Fatalf("Remove did not restore the previous list: %v vs %v", got, before)
	}
}

func TestLengthClampedUnderAddRemove(t *testing.T) {
	p := New([]string{"#ff0000", "#00ff00", "#0000ff"}, 1.4)

	for i := 0; i < 30; i++ {
		p.Add()
		if n := p.Len(); n < MinColors || n > MaxColors {
			t.Fatalf("length %d out of [%d, %d] after add", n, MinColors, MaxColors)
		}
	}
	if p.Len() != MaxColors {
		t.Fatalf("length after repeated Add = %d, want %d", p.Len(), MaxColors)
	}
	if p.Add() {
		t.Fatal("Add succeeded at MaxColors")
	}

	for i := 0; i < 30; i++ {
		p.Remove()
		if n := p.Len(); n < MinColors || n > MaxColors {
			t.Fatalf("length %d out of [%d, %d] after remove", n, MinColors, MaxColors)
		}
	}
	if p.Len() != MinColors {
		t.Fatalf("length after repeated Remove = %d, want %d", p.Len(), MinColors)
	}
	if p.Remove() {
		t.Fatal("Remove succeeded at MinColors")
	}
}

func TestNewPadsShortLists(t *testing.T) {
	p := New([]string{"#123456"}, 1)
	if p.Len() != MinColors {
		t.Fatalf("padded length = %d, want %d", p.Len(), MinColors)
	}
	cols := p.Colors()
	if cols[1] != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("pad color = %v, want white", cols[1])
	}
}

func TestColorsFirstEntryUnmodified(t *testing.T) {
	p := New([]string{"#804020", "#804020", "#804020"}, 2.0)
	cols := p.Colors()
	if cols[0] != (color.RGBA{0x80, 0x40, 0x20, 0xff}) {
		t.Fatalf("first entry altered: %v", cols[0])
	}
	if cols[1] == cols[0] {
		t.Fatal("boost did not change later entries")
	}
}

func TestColorsCacheReusedUntilSourcesChange(t *testing.T) {
	p := New([]string{"#ff0000", "#00ff00", "#0000ff"}, 1.4)
	a := p.Colors()
	b := p.Colors()
	if &a[0] != &b[0] {
		t.Fatal("resolved colors reallocated without a source change")
	}

	p.SetBoost(1.9)
	c := p.Colors()
	if &a[0] == &c[0] {
		t.Fatal("boost change did not invalidate the cache")
	}
}
