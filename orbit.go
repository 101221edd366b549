package hohmann

import (
	"fmt"
	"math"
	"time"

	"github.com/gonum/matrix/mat64"
)

// Altitudes of the common Earth orbits [m].
const (
	leoAltitude = 400e3
	issAltitude = 420e3
	gpsAltitude = 20200e3
	geoAltitude = 35786e3
)

// Orbit defines a circular orbit around a gravitating body.
// The body is held by value, so mutating a body elsewhere never affects an
// existing orbit.
type Orbit struct {
	body   Body
	radius float64 // distance from the body center [m]
}

// NewOrbit returns the circular orbit of the given radius [m] from the body
// center.
func NewOrbit(body Body, radius float64) (Orbit, error) {
	if radius <= 0 {
		return Orbit{}, fmt.Errorf("%w: orbital radius must be positive, got %g", ErrInvalidParameter, radius)
	}
	return Orbit{body: body, radius: radius}, nil
}

// NewOrbitFromAltitude returns the circular orbit at the given altitude [m]
// above the body surface. The body must have a defined radius. A negative
// altitude is accepted as long as the resulting radius stays positive.
func NewOrbitFromAltitude(body Body, altitude float64) (Orbit, error) {
	bodyRadius, ok := body.Radius()
	if !ok {
		return Orbit{}, fmt.Errorf("%w: cannot build an orbit from altitude, %s has no defined radius", ErrMissingData, body)
	}
	return NewOrbit(body, bodyRadius+altitude)
}

// Body returns the gravitating body of this orbit.
func (o Orbit) Body() Body {
	return o.body
}

// Radius returns the orbital radius [m] from the body center.
func (o Orbit) Radius() float64 {
	return o.radius
}

// Altitude returns the altitude [m] above the body surface and whether it is
// defined at all: orbits around a body with no defined radius have no
// altitude.
func (o Orbit) Altitude() (float64, bool) {
	bodyRadius, ok := o.body.Radius()
	if !ok {
		return 0, false
	}
	return o.radius - bodyRadius, true
}

// Velocity returns the orbital speed [m/s].
func (o Orbit) Velocity() float64 {
	v, _ := o.body.CircularVelocity(o.radius) // radius is positive by construction
	return v
}

// Period returns the period of this orbit.
func (o Orbit) Period() time.Duration {
	p, _ := o.body.OrbitalPeriod(o.radius)
	return p
}

// StateAt returns the perifocal position and velocity vectors of this orbit
// at the provided true anomaly ν [rad]. The third component is always zero.
func (o Orbit) StateAt(ν float64) (R, V *mat64.Vector) {
	sinν, cosν := math.Sincos(ν)
	v := o.Velocity()
	R = mat64.NewVector(3, []float64{o.radius * cosν, o.radius * sinν, 0})
	V = mat64.NewVector(3, []float64{-v * sinν, v * cosν, 0})
	return
}

// String implements the Stringer interface.
func (o Orbit) String() string {
	if alt, ok := o.Altitude(); ok {
		return fmt.Sprintf("r=%.1f km (alt=%.1f km) around %s", o.radius/1e3, alt/1e3, o.body.Name())
	}
	return fmt.Sprintf("r=%.1f km around %s", o.radius/1e3, o.body.Name())
}

/* Common orbits. These are altitude presets, so the body needs a defined radius. */

// LEO returns the low orbit (~400 km altitude) above the provided body.
func LEO(body Body) (Orbit, error) {
	return NewOrbitFromAltitude(body, leoAltitude)
}

// ISS returns the station orbit (~420 km altitude) above the provided body.
func ISS(body Body) (Orbit, error) {
	return NewOrbitFromAltitude(body, issAltitude)
}

// GPS returns the navigation-constellation orbit (~20,200 km altitude) above
// the provided body.
func GPS(body Body) (Orbit, error) {
	return NewOrbitFromAltitude(body, gpsAltitude)
}

// GEO returns the geostationary orbit (~35,786 km altitude) above the
// provided body.
func GEO(body Body) (Orbit, error) {
	return NewOrbitFromAltitude(body, geoAltitude)
}
