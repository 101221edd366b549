package hohmann

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestAngleConversions(t *testing.T) {
	for _, deg := range []float64{-270, -90, 0, 45, 180, 360, 720} {
		if got := Rad2deg(Deg2rad(deg)); !floats.EqualWithinAbs(got, deg, 1e-9) {
			t.Fatalf("round trip of %f° gave %f°", deg, got)
		}
	}
	if !floats.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-12) {
		t.Fatalf("Deg2rad(180)=%f", Deg2rad(180))
	}
	// Signs survive: a trailing rendezvous target stays negative.
	if Rad2deg(-math.Pi/2) != -90 {
		t.Fatalf("Rad2deg(-π/2)=%f", Rad2deg(-math.Pi/2))
	}
}

func TestDurationFromSeconds(t *testing.T) {
	for _, it := range []struct {
		seconds float64
		exp     time.Duration
	}{
		{1.5, 1500 * time.Millisecond},
		{19040.0, 19040 * time.Second},
		{0.000001, time.Microsecond},
	} {
		if got := durationFromSeconds(it.seconds); got != it.exp {
			t.Fatalf("%f s gave %s, expected %s", it.seconds, got, it.exp)
		}
	}
}
