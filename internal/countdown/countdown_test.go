package countdown

import "testing"

func TestCountdown_EmitsEveryStateOnce(t *testing.T) {
	for _, d := range []int{0, 1, 2, 5, 25} {
		c := New(d)
		c.Start()

		states := []int{c.Remaining()}
		completions := 0
		for i := 0; i < d+3; i++ {
			if c.Tick() {
				completions++
			}
			if r := c.Remaining(); r != states[len(states)-1] {
				states = append(states, r)
			}
		}

		if len(states) != d+1 {
			t.Errorf("D=%d: got %d states %v, want %d", d, len(states), states, d+1)
		}
		for i, s := range states {
			if s != d-i {
				t.Errorf("D=%d: state[%d] = %d, want %d", d, i, s, d-i)
			}
		}
		if completions != 1 {
			t.Errorf("D=%d: completions = %d, want 1", d, completions)
		}
	}
}

func TestCountdown_NegativeClampsAndCompletesNextTick(t *testing.T) {
	c := New(-10)
	if c.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", c.Remaining())
	}
	c.Start()
	if !c.Tick() {
		t.Error("expected completion on first tick")
	}
	if c.Tick() {
		t.Error("completion fired twice")
	}
}

func TestCountdown_PauseKeepsRemaining(t *testing.T) {
	c := New(5)
	c.Start()
	c.Tick()
	c.Pause()

	for i := 0; i < 3; i++ {
		if c.Tick() {
			t.Fatal("paused countdown completed")
		}
	}
	if c.Remaining() != 4 {
		t.Errorf("Remaining = %d, want 4", c.Remaining())
	}

	if !c.Toggle() {
		t.Error("Toggle should resume")
	}
	c.Tick()
	if c.Remaining() != 3 {
		t.Errorf("Remaining = %d, want 3", c.Remaining())
	}
}

func TestCountdown_ResetPausesAndRearms(t *testing.T) {
	c := New(1)
	c.Start()
	if !c.Tick() {
		t.Fatal("expected completion")
	}

	c.Reset(3)
	if c.Running() {
		t.Error("Reset should pause")
	}
	if c.Done() {
		t.Error("Reset should re-arm completion")
	}
	if c.Remaining() != 3 {
		t.Errorf("Remaining = %d, want 3", c.Remaining())
	}

	c.Start()
	fired := 0
	for i := 0; i < 5; i++ {
		if c.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestCountdown_StartAfterDoneIsNoop(t *testing.T) {
	c := New(0)
	c.Start()
	c.Tick()
	c.Start()
	if c.Running() {
		t.Error("completed countdown should not run")
	}
}
