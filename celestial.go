package hohmann

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gonum/floats"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
)

// Body defines a gravitating body via its gravitational parameter.
// The physical radius may be absent: gas giants have no defined surface, so
// altitude-based computations around them are meaningless.
type Body struct {
	name      string
	μ         float64 // gravitational parameter [m³/s²]
	radius    float64 // mean radius [m], meaningful only when hasRadius
	hasRadius bool
}

// NewBody returns a body with no defined physical radius.
func NewBody(name string, gm float64) (Body, error) {
	if gm <= 0 {
		return Body{}, fmt.Errorf("%w: gravitational parameter must be positive, got %g", ErrInvalidParameter, gm)
	}
	return Body{name: name, μ: gm}, nil
}

// NewBodyWithRadius returns a body with a defined mean radius.
func NewBodyWithRadius(name string, gm, radius float64) (Body, error) {
	if radius <= 0 {
		return Body{}, fmt.Errorf("%w: body radius must be positive, got %g", ErrInvalidParameter, radius)
	}
	b, err := NewBody(name, gm)
	if err != nil {
		return Body{}, err
	}
	b.radius = radius
	b.hasRadius = true
	return b, nil
}

// Name returns the display name of this body.
func (b Body) Name() string {
	return b.name
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (b Body) GM() float64 {
	return b.μ
}

// Radius returns the mean radius and whether this body has one defined.
func (b Body) Radius() (float64, bool) {
	return b.radius, b.hasRadius
}

// CircularVelocity returns the speed of a circular orbit of radius r [m]
// around this body.
func (b Body) CircularVelocity(r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidParameter, r)
	}
	return math.Sqrt(b.μ / r), nil
}

// EscapeVelocity returns the escape velocity at distance r [m] from the
// center of this body. It equals √2 times the circular velocity at r.
func (b Body) EscapeVelocity(r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidParameter, r)
	}
	return math.Sqrt(2 * b.μ / r), nil
}

// OrbitalPeriod returns the period of a circular orbit of radius r [m]
// around this body.
func (b Body) OrbitalPeriod(r float64) (time.Duration, error) {
	if r <= 0 {
		return 0, fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidParameter, r)
	}
	return durationFromSeconds(2 * math.Pi * math.Sqrt(math.Pow(r, 3)/b.μ)), nil
}

// Equals returns whether the provided body is the same.
func (b Body) Equals(o Body) bool {
	if b.name != o.name || b.hasRadius != o.hasRadius {
		return false
	}
	if b.hasRadius && b.radius != o.radius {
		return false
	}
	return floats.EqualWithinAbs(b.μ, o.μ, gmε)
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.name + " body"
}

// BodyFromString returns the preset body from its name.
func BodyFromString(name string) (Body, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return Body{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions. GM and radii from the NASA JPL planetary fact sheets, in SI units. */

// Sun is our closest star.
var Sun = Body{name: "Sun", μ: 1.32712440018e20, radius: 6.9634e8, hasRadius: true}

// Earth is home.
var Earth = Body{name: "Earth", μ: 3.986004418e14, radius: 6.371e6, hasRadius: true}

// Moon is the only one we've walked on so far.
var Moon = Body{name: "Moon", μ: 4.9048695e12, radius: 1.7374e6, hasRadius: true}

// Mars is the vacation place.
var Mars = Body{name: "Mars", μ: 4.282837e13, radius: 3.3895e6, hasRadius: true}

// Jupiter is big. It has no well-defined surface, hence no radius: building
// an orbit around Jupiter from an altitude fails with ErrMissingData.
var Jupiter = Body{name: "Jupiter", μ: 1.26686534e17}
