package systems

import (
	"math"
	"testing"
)

func TestChooseDirectionPrefersFreeDestination(t *testing.T) {
	// Straight ahead is clear: alpha 0 wins.
	samples := []VisionSample{
		{Alpha: -0.5, Distance: 10},
		{Alpha: 0, Distance: 10},
		{Alpha: 0.5, Distance: 10},
	}
	dec := ChooseDirection(samples, 10)
	if dec.Alpha != 0 {
		t.Errorf("alpha = %v, want 0", dec.Alpha)
	}
	if dec.Distance != 10 {
		t.Errorf("distance = %v, want 10", dec.Distance)
	}
}

func TestChooseDirectionAvoidsBlockedHeading(t *testing.T) {
	// Straight ahead blocked at 1 m, a slight detour is free.
	samples := []VisionSample{
		{Alpha: -0.3, Distance: 10},
		{Alpha: 0, Distance: 1},
		{Alpha: 0.3, Distance: 10},
	}
	dec := ChooseDirection(samples, 10)
	if dec.Alpha != -0.3 {
		t.Errorf("alpha = %v, want -0.3 (first of the two free detours)", dec.Alpha)
	}
}

func TestChooseDirectionTieBreak(t *testing.T) {
	// Symmetric samples give identical scores; the ascending scan must
	// keep the more negative angle.
	samples := []VisionSample{
		{Alpha: -0.4, Distance: 6},
		{Alpha: -0.2, Distance: 2},
		{Alpha: 0.2, Distance: 2},
		{Alpha: 0.4, Distance: 6},
	}
	dec := ChooseDirection(samples, 10)
	if dec.Alpha != -0.4 {
		t.Errorf("alpha = %v, want -0.4", dec.Alpha)
	}
}

func TestChooseSpeedCap(t *testing.T) {
	// desiredSpeed 1.3, free distance 0.4, tau 0.5 -> min(1.3, 0.8) = 0.8.
	if got := ChooseSpeed(1.3, 0.4, 0.5); math.Abs(got-0.8) > tol {
		t.Errorf("speed = %v, want 0.8", got)
	}
	// Plenty of room: keep the preferred speed.
	if got := ChooseSpeed(1.3, 10, 0.5); got != 1.3 {
		t.Errorf("speed = %v, want 1.3", got)
	}
}

func TestDesiredVelocity(t *testing.T) {
	v := DesiredVelocity(math.Pi/2, Decision{Alpha: 0, Distance: 10}, 1.3, 0.5)
	if math.Abs(v.X) > tol || math.Abs(v.Y-1.3) > tol {
		t.Errorf("desired velocity = %v, want (0, 1.3)", v)
	}
}

func TestHeuristicsDeterministic(t *testing.T) {
	samples := []VisionSample{
		{Alpha: -0.4, Distance: 3.7},
		{Alpha: 0, Distance: 1.2},
		{Alpha: 0.4, Distance: 9.9},
	}
	first := ChooseDirection(samples, 10)
	for i := 0; i < 100; i++ {
		if got := ChooseDirection(samples, 10); got != first {
			t.Fatalf("run %d: decision %v differs from %v", i, got, first)
		}
	}
}
