package hohmann

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestBodyInvariants(t *testing.T) {
	for _, gm := range []float64{0, -1, -3.986004418e14} {
		if _, err := NewBody("fake", gm); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("gm=%g accepted: %v", gm, err)
		}
		if _, err := NewBodyWithRadius("fake", gm, 1e6); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("gm=%g accepted with radius: %v", gm, err)
		}
	}
	for _, radius := range []float64{0, -6.371e6} {
		if _, err := NewBodyWithRadius("fake", 3.986004418e14, radius); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("radius=%g accepted: %v", radius, err)
		}
	}
	body, err := NewBody("Ceres", 6.26325e10)
	if err != nil {
		t.Fatalf("valid body rejected: %s", err)
	}
	if _, ok := body.Radius(); ok {
		t.Fatal("radius-less body claims a radius")
	}
	body, err = NewBodyWithRadius("Ceres", 6.26325e10, 469.7e3)
	if err != nil {
		t.Fatalf("valid body rejected: %s", err)
	}
	if radius, ok := body.Radius(); !ok || radius != 469.7e3 {
		t.Fatalf("radius not kept: %g (%v)", radius, ok)
	}
}

func TestEscapeVelocityIdentity(t *testing.T) {
	// For all r > 0: vEscape(r) = √2 * vCircular(r).
	for _, body := range []Body{Sun, Earth, Moon, Mars, Jupiter} {
		for _, r := range []float64{1e5, 6.771e6, 4.2157e7, AU} {
			vCirc, err := body.CircularVelocity(r)
			if err != nil {
				t.Fatalf("%s: %s", body, err)
			}
			vEsc, err := body.EscapeVelocity(r)
			if err != nil {
				t.Fatalf("%s: %s", body, err)
			}
			if !floats.EqualWithinAbs(vEsc, math.Sqrt2*vCirc, 1e-9) {
				t.Fatalf("%s at r=%g: vEsc=%f != √2*vCirc=%f", body, r, vEsc, math.Sqrt2*vCirc)
			}
		}
	}
}

func TestBodyDomainErrors(t *testing.T) {
	for _, r := range []float64{0, -1e6} {
		if _, err := Earth.CircularVelocity(r); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("CircularVelocity(%g) did not fail: %v", r, err)
		}
		if _, err := Earth.EscapeVelocity(r); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("EscapeVelocity(%g) did not fail: %v", r, err)
		}
		if _, err := Earth.OrbitalPeriod(r); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("OrbitalPeriod(%g) did not fail: %v", r, err)
		}
	}
}

func TestPresets(t *testing.T) {
	if Earth.GM() != 3.986004418e14 {
		t.Fatalf("Earth GM=%g", Earth.GM())
	}
	if radius, ok := Earth.Radius(); !ok || radius != 6.371e6 {
		t.Fatalf("Earth radius=%g (%v)", radius, ok)
	}
	if _, ok := Jupiter.Radius(); ok {
		t.Fatal("Jupiter should not have a defined radius")
	}
	for _, name := range []string{"Sun", "earth", "MOON", "mars", "Jupiter"} {
		body, err := BodyFromString(name)
		if err != nil {
			t.Fatalf("%s not found: %s", name, err)
		}
		if body.GM() <= 0 {
			t.Fatalf("%s has invalid GM", name)
		}
	}
	if _, err := BodyFromString("Vesta"); err == nil {
		t.Fatal("undefined body did not fail")
	}
}

func TestBodyEquals(t *testing.T) {
	if !Earth.Equals(Earth) {
		t.Fatal("Earth != Earth")
	}
	if Earth.Equals(Mars) {
		t.Fatal("Earth == Mars")
	}
	almostEarth, _ := NewBodyWithRadius("Earth", Earth.GM()+0.5, 6.371e6)
	if !Earth.Equals(almostEarth) {
		t.Fatal("GM within tolerance should compare equal")
	}
}
