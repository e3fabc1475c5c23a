package model

import (
	"fmt"
	"math"
)

// Params are the tunable constants of the model. A Simulation reads a
// consistent snapshot during each step; updates are applied between steps.
type Params struct {
	// Tau is the relaxation time in seconds.
	Tau float64
	// VisionHalfAngle is half the field of view, in radians, in (0, Pi].
	VisionHalfAngle float64
	// HorizonDistance caps every vision distance, in metres.
	HorizonDistance float64
	// ContactStiffness is the penalty-force coefficient per metre of
	// overlap, in kg/s^2.
	ContactStiffness float64
	// TimeStep is the integration step in seconds.
	TimeStep float64
	// AngularResolution is the spacing of sampled vision angles in radians.
	AngularResolution float64
}

// DefaultParams returns the published model's constants.
func DefaultParams() Params {
	return Params{
		Tau:               0.5,
		VisionHalfAngle:   75 * math.Pi / 180,
		HorizonDistance:   10,
		ContactStiffness:  5000,
		TimeStep:          0.05,
		AngularResolution: 0.1,
	}
}

// Validate rejects parameter sets that must fail at construction time.
func (p Params) Validate() error {
	if p.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive, got %g", p.TimeStep)
	}
	if p.Tau <= 0 {
		return fmt.Errorf("relaxation time must be positive, got %g", p.Tau)
	}
	if p.VisionHalfAngle <= 0 || p.VisionHalfAngle > math.Pi {
		return fmt.Errorf("vision half-angle must be in (0, pi], got %g", p.VisionHalfAngle)
	}
	if p.HorizonDistance <= 0 {
		return fmt.Errorf("horizon distance must be positive, got %g", p.HorizonDistance)
	}
	if p.AngularResolution <= 0 {
		return fmt.Errorf("angular resolution must be positive, got %g", p.AngularResolution)
	}
	if p.ContactStiffness < 0 {
		return fmt.Errorf("contact stiffness must be non-negative, got %g", p.ContactStiffness)
	}
	return nil
}
