package units

import (
	"math"
	"testing"
)

func TestConvertIdentity(t *testing.T) {
	for _, unit := range []string{"g", "kg", "l", "dl", "st", "okänd"} {
		got, warnings := Convert(42.5, unit, unit)
		if got != 42.5 {
			t.Errorf("Convert(42.5, %q, %q) = %v, want 42.5", unit, unit, got)
		}
		if len(warnings) != 0 {
			t.Errorf("identity conversion for %q produced warnings: %v", unit, warnings)
		}
	}
}

func TestConvertIdentityIsCaseInsensitive(t *testing.T) {
	got, warnings := Convert(3, "KG", "kg")
	if got != 3 || len(warnings) != 0 {
		t.Fatalf("Convert(3, KG, kg) = %v (warnings %v), want 3", got, warnings)
	}
}

func TestConvertWeight(t *testing.T) {
	if got, _ := Convert(1, "kg", "g"); got != 1000 {
		t.Errorf("1 kg = %v g, want 1000", got)
	}
	if got, _ := Convert(1000, "g", "kg"); got != 1 {
		t.Errorf("1000 g = %v kg, want 1", got)
	}
}

func TestConvertVolume(t *testing.T) {
	if got, _ := Convert(1, "liter", "dl"); got != 10 {
		t.Errorf("1 liter = %v dl, want 10", got)
	}
	if got, _ := Convert(1, "l", "ml"); got != 1000 {
		t.Errorf("1 l = %v ml, want 1000", got)
	}
	if got, _ := Convert(5, "dl", "l"); got != 0.5 {
		t.Errorf("5 dl = %v l, want 0.5", got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	q := 2.37
	down, _ := Convert(q, "kg", "g")
	back, _ := Convert(down, "g", "kg")
	if math.Abs(back-q) > 1e-9 {
		t.Errorf("round trip kg->g->kg gave %v, want %v", back, q)
	}
}

func TestConvertIncompatibleFallsBack(t *testing.T) {
	got, warnings := Convert(100, "g", "st")
	if got != 100 {
		t.Errorf("incompatible conversion returned %v, want raw quantity 100", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for g->st, got %v", warnings)
	}
}

func TestConvertUnknownUnitFallsBack(t *testing.T) {
	got, warnings := Convert(7, "näve", "g")
	if got != 7 {
		t.Errorf("unknown unit conversion returned %v, want 7", got)
	}
	if len(warnings) != 1 {
		t.Errorf("expected a warning for unknown unit, got %v", warnings)
	}
}

func TestAreCompatible(t *testing.T) {
	cases := []struct {
		u1, u2 string
		want   bool
	}{
		{"kg", "g", true},
		{"g", "KG", true},
		{"l", "dl", true},
		{"liter", "ml", true},
		{"g", "st", false},
		{"st", "port", false},
		{"st", "st", true},
		{"näve", "näve", true},
		{"näve", "g", false},
	}
	for _, c := range cases {
		if got := AreCompatible(c.u1, c.u2); got != c.want {
			t.Errorf("AreCompatible(%q, %q) = %v, want %v", c.u1, c.u2, got, c.want)
		}
	}
}

func TestCompatibleUnits(t *testing.T) {
	got := CompatibleUnits("kg")
	want := map[string]bool{"g": true, "hg": true, "kg": true}
	if len(got) != len(want) {
		t.Fatalf("CompatibleUnits(kg) = %v", got)
	}
	for _, u := range got {
		if !want[u] {
			t.Errorf("unexpected unit %q in weight group", u)
		}
	}

	single := CompatibleUnits("näve")
	if len(single) != 1 || single[0] != "näve" {
		t.Errorf("CompatibleUnits for unknown unit = %v, want just the unit itself", single)
	}
}
