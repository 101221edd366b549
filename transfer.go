package hohmann

import (
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"
)

// gmε is the absolute tolerance on gravitational parameters when deciding
// whether two orbits share a body. GM values of distinct bodies differ by
// many orders of magnitude, so a loose tolerance cannot misidentify them.
const gmε = 1.0 // [m³/s²]

// Hohmann computes the two-impulse transfer between two circular radii around
// the provided body. It returns the velocity on the transfer ellipse at the
// departure radius rI and at the arrival radius rF, and the time of flight.
// To get final computations:
// ΔvInit = vDeparture - vCircular(rI)
// ΔvFinal = vCircular(rF) - vArrival
func Hohmann(rI, rF float64, body Body) (vDeparture, vArrival float64, tof time.Duration, err error) {
	if rI <= 0 || rF <= 0 {
		err = fmt.Errorf("%w: transfer radii must be positive, got %g and %g", ErrInvalidParameter, rI, rF)
		return
	}
	aTransfer := 0.5 * (rI + rF)
	vDeparture = math.Sqrt((2 * body.GM() / rI) - (body.GM() / aTransfer))
	vArrival = math.Sqrt((2 * body.GM() / rF) - (body.GM() / aTransfer))
	tof = durationFromSeconds(math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/body.GM()))
	return
}

// Transfer is a two-impulse (Hohmann) transfer plan between two circular
// orbits around the same body. All values are computed at construction and
// never mutated, so a Transfer is safe for concurrent reads.
type Transfer struct {
	initial, final Orbit
	δv1, δv2       float64 // burn magnitudes [m/s]
	δvTotal        float64
	a              float64 // transfer ellipse semi-major axis [m]
	tof            time.Duration
}

// NewTransfer returns the transfer plan from the initial to the final orbit.
// Both orbits must be around the same body, identified by gravitational
// parameter. Equal radii make a valid, degenerate transfer with zero Δv.
func NewTransfer(initial, final Orbit) (Transfer, error) {
	if !floats.EqualWithinAbs(initial.Body().GM(), final.Body().GM(), gmε) {
		return Transfer{}, fmt.Errorf("%w: %s and %s", ErrIncompatibleBodies, initial.Body(), final.Body())
	}
	r1, r2 := initial.Radius(), final.Radius()
	vDeparture, vArrival, tof, err := Hohmann(r1, r2, initial.Body())
	if err != nil {
		return Transfer{}, err
	}
	v1 := initial.Velocity()
	v2 := final.Velocity()
	var Δv1, Δv2 float64
	if r2 > r1 {
		// Raising: both burns prograde.
		Δv1 = vDeparture - v1
		Δv2 = v2 - vArrival
	} else {
		// Lowering: both burns retrograde.
		Δv1 = v1 - vDeparture
		Δv2 = vArrival - v2
	}
	x := Transfer{initial: initial, final: final, a: 0.5 * (r1 + r2), tof: tof}
	x.δv1 = math.Abs(Δv1)
	x.δv2 = math.Abs(Δv2)
	x.δvTotal = x.δv1 + x.δv2
	return x, nil
}

// InitialOrbit returns the departure orbit.
func (x Transfer) InitialOrbit() Orbit {
	return x.initial
}

// FinalOrbit returns the arrival orbit.
func (x Transfer) FinalOrbit() Orbit {
	return x.final
}

// DeltaV1 returns the magnitude [m/s] of the first burn.
func (x Transfer) DeltaV1() float64 {
	return x.δv1
}

// DeltaV2 returns the magnitude [m/s] of the second burn.
func (x Transfer) DeltaV2() float64 {
	return x.δv2
}

// TotalDeltaV returns the summed burn magnitudes [m/s].
func (x Transfer) TotalDeltaV() float64 {
	return x.δvTotal
}

// SemiMajorAxis returns the semi-major axis [m] of the transfer ellipse.
func (x Transfer) SemiMajorAxis() float64 {
	return x.a
}

// TransferTime returns the time of flight from the first to the second burn,
// i.e. half the period of the transfer ellipse.
func (x Transfer) TransferTime() time.Duration {
	return x.tof
}

// IsRaising returns whether this transfer raises the orbit.
func (x Transfer) IsRaising() bool {
	return x.final.Radius() > x.initial.Radius()
}

// PhaseAngle returns the signed angle [rad] by which a rendezvous target in
// the final orbit must lead the spacecraft at the instant of the first burn.
// A negative angle means the target must trail instead, which happens on
// lowering transfers. The sign carries meaning: never clamp or normalize it.
func (x Transfer) PhaseAngle() float64 {
	// The target sweeps at its circular rate during the time of flight while
	// the spacecraft sweeps exactly π. Closing the geometry gives:
	ratio := math.Pow(x.initial.Radius()/x.final.Radius()+1, 1.5)
	return math.Pi * (1 - ratio/(2*math.Sqrt2))
}

// String implements the Stringer interface.
func (x Transfer) String() string {
	direction := "lowering"
	if x.IsRaising() {
		direction = "raising"
	}
	return fmt.Sprintf("%s transfer [%s => %s]: Δv1=%.2f m/s Δv2=%.2f m/s (total %.2f m/s) a=%.1f km tof=%s phase=%.2f°",
		direction, x.initial, x.final, x.δv1, x.δv2, x.δvTotal, x.a/1e3, x.tof, Rad2deg(x.PhaseAngle()))
}
