// synth_envelope_test.go - ADSR envelope state machine tests

package main

import "testing"

// stepN steps the envelope n times with fixed parameters.
func stepN(e *Envelope, n int, gate bool, a, d, s, r uint8) {
	for i := 0; i < n; i++ {
		e.Step(gate, a, d, s, r)
	}
}

func TestEnvelope_PowerOnIsIdleAtZero(t *testing.T) {
	var env Envelope
	env.Reset()
	if env.state != ENV_IDLE || env.Level() != 0 {
		t.Fatalf("after Reset: state=%d level=%d, want Idle at 0", env.state, env.Level())
	}
	// Idle with the gate low stays put forever.
	stepN(&env, 1000, false, 0, 0, 15, 0)
	if env.state != ENV_IDLE || env.Level() != 0 {
		t.Errorf("idle drifted: state=%d level=%d", env.state, env.Level())
	}
}

func TestEnvelope_AttackTiming(t *testing.T) {
	// Attack code 1 is one level unit every 2 periods. The rising-edge step
	// itself only changes state, so the level first moves on step 3 and
	// reaches 255 on step 1+2*255 = 511.
	var env Envelope
	env.Reset()

	stepN(&env, 511, true, 1, 0, 15, 0)
	if env.Level() != ENV_LEVEL_MAX {
		t.Fatalf("level after 511 steps = %d, want %d", env.Level(), ENV_LEVEL_MAX)
	}
	if env.state != ENV_ATTACK {
		t.Fatalf("state after 511 steps = %d, want Attack", env.state)
	}

	// The next step notices the ceiling and hands over to Decay; with
	// sustain 15 the very next step settles into Sustain at full level.
	env.Step(true, 1, 0, 15, 0)
	if env.state != ENV_DECAY {
		t.Fatalf("state after ceiling = %d, want Decay", env.state)
	}
	env.Step(true, 1, 0, 15, 0)
	if env.state != ENV_SUSTAIN || env.Level() != ENV_LEVEL_MAX {
		t.Fatalf("state=%d level=%d, want Sustain at %d", env.state, env.Level(), ENV_LEVEL_MAX)
	}

	// Sustain 15 holds 255 indefinitely while the gate stays high.
	stepN(&env, 1000, true, 1, 0, 15, 0)
	if env.Level() != ENV_LEVEL_MAX {
		t.Errorf("sustain level drifted to %d", env.Level())
	}
}

func TestEnvelope_DecayStopsAtSustainLevel(t *testing.T) {
	// Sustain code 8 maps to level 0x88. Attack 2, decay 4: generously
	// bounded, 10000 gate-high steps are enough to pass clean through
	// Attack and Decay into Sustain.
	var env Envelope
	env.Reset()

	stepN(&env, 10000, true, 2, 4, 8, 5)
	if env.state != ENV_SUSTAIN {
		t.Fatalf("state = %d, want Sustain", env.state)
	}
	if env.Level() != 0x88 {
		t.Fatalf("sustain level = %#x, want 0x88", env.Level())
	}
	stepN(&env, 1000, true, 2, 4, 8, 5)
	if env.Level() != 0x88 {
		t.Errorf("sustain level drifted to %#x", env.Level())
	}
}

func TestEnvelope_ReleaseDecaysMonotonicallyToIdle(t *testing.T) {
	var env Envelope
	env.Reset()
	stepN(&env, 10000, true, 2, 4, 8, 5)

	// Gate falls: Release, level untouched by the edge itself.
	env.Step(false, 2, 4, 8, 5)
	if env.state != ENV_RELEASE {
		t.Fatalf("state after gate fall = %d, want Release", env.state)
	}
	if env.Level() != 0x88 {
		t.Fatalf("level changed on the gate edge: %#x", env.Level())
	}

	prev := env.Level()
	reachedIdle := false
	for i := 0; i < 10000; i++ {
		env.Step(false, 2, 4, 8, 5)
		if env.Level() > prev {
			t.Fatalf("release level rose from %d to %d at step %d", prev, env.Level(), i)
		}
		prev = env.Level()
		if env.state == ENV_IDLE {
			reachedIdle = true
			break
		}
	}
	if !reachedIdle {
		t.Fatalf("release never reached Idle, stuck at level %d", env.Level())
	}
	if env.Level() != 0 {
		t.Errorf("idle level = %d, want 0", env.Level())
	}
}

func TestEnvelope_RetriggerDuringReleaseKeepsLevel(t *testing.T) {
	var env Envelope
	env.Reset()
	stepN(&env, 10000, true, 0, 4, 12, 3)
	stepN(&env, 200, false, 0, 4, 12, 3)
	if env.state != ENV_RELEASE {
		t.Fatalf("state = %d, want Release", env.state)
	}
	floor := env.Level()
	if floor == 0 {
		t.Fatalf("release already hit zero, pick a slower release for this test")
	}

	// Re-attack mid-release: the edge changes state only, and the attack
	// then rises from the partially released level with no dip.
	env.Step(true, 0, 4, 12, 3)
	if env.state != ENV_ATTACK {
		t.Fatalf("state after re-gate = %d, want Attack", env.state)
	}
	if env.Level() != floor {
		t.Fatalf("re-gate edge moved the level from %d to %d", floor, env.Level())
	}
	for i := 0; i < 1000; i++ {
		env.Step(true, 0, 4, 12, 3)
		if env.Level() < floor {
			t.Fatalf("level dipped below %d after re-trigger", floor)
		}
	}
}

func TestEnvelope_GateHighWhileIdleRestartsAttack(t *testing.T) {
	// A held gate in Idle re-enters Attack even without a fresh edge.
	var env Envelope
	env.Reset()
	env.gatePrev = true
	env.Step(true, 0, 0, 15, 0)
	if env.state != ENV_ATTACK {
		t.Errorf("state = %d, want Attack", env.state)
	}
}

func TestEnvelope_SustainLevelNibbleDoubling(t *testing.T) {
	for code, want := range map[uint8]uint8{0: 0x00, 1: 0x11, 8: 0x88, 15: 0xFF} {
		if got := sustainLevels[code]; got != want {
			t.Errorf("sustainLevels[%d] = %#x, want %#x", code, got, want)
		}
	}
}

func TestEnvelope_RateTableRatio(t *testing.T) {
	// Decay/release slopes are three times the attack slope for a given code.
	for code := 0; code < 16; code++ {
		if decayReleaseRatePeriods[code] != 3*attackRatePeriods[code] {
			t.Errorf("code %d: decay period %d != 3 * attack period %d",
				code, decayReleaseRatePeriods[code], attackRatePeriods[code])
		}
	}
}
