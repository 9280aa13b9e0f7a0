package zoom

import "testing"

func TestParseZoom(t *testing.T) {
	backend, value, ok := ParseZoom("googlemaps:8")
	if !ok || backend != "googlemaps" || value != "8" {
		t.Fatalf("got %q %q %v", backend, value, ok)
	}
	if _, _, ok := ParseZoom("not-a-zoom-string"); ok {
		t.Fatal("expected failure parsing a string with no colon")
	}
}

func TestLevelGoogleMapsAndOSMShareTable(t *testing.T) {
	cases := []struct {
		zoom  string
		level int
	}{
		{"googlemaps:0", 1},
		{"googlemaps:8", 4},
		{"googlemaps:17", 5},
		{"googlemaps:22", 7},
		{"googlemaps:99", 8},
		{"osm:8", 4},
		{"osm:22", 7},
	}
	for _, c := range cases {
		if got := Level(c.zoom); got != c.level {
			t.Errorf("Level(%q) = %d, want %d", c.zoom, got, c.level)
		}
	}
}

func TestLevelMarbleAlwaysDeepest(t *testing.T) {
	if got, want := Level("marble:900"), 8; got != want {
		t.Errorf("Level(marble:900) = %d, want %d", got, want)
	}
}

func TestLevelClampsToMaxLevelMinusOne(t *testing.T) {
	if got := Level("googlemaps:99"); got > 8 {
		t.Errorf("Level should clamp at maxLevel-1=8, got %d", got)
	}
}

func TestLevelUnknownBackend(t *testing.T) {
	if got := Level("bogus:5"); got != 0 {
		t.Errorf("Level with unknown backend = %d, want 0", got)
	}
}

func TestConvertSameBackendIsNoop(t *testing.T) {
	got, ok := Convert("googlemaps:8", "googlemaps")
	if !ok || got != "googlemaps:8" {
		t.Fatalf("got %q %v", got, ok)
	}
}

func TestConvertGoogleMapsToMarble(t *testing.T) {
	got, ok := Convert("googlemaps:0", "marble")
	if !ok || got != "marble:900" {
		t.Fatalf("got %q %v, want marble:900", got, ok)
	}
}

func TestConvertMarbleToGoogleMaps(t *testing.T) {
	got, ok := Convert("marble:1108", "googlemaps")
	if !ok || got != "googlemaps:2" {
		t.Fatalf("got %q %v, want googlemaps:2", got, ok)
	}
}
