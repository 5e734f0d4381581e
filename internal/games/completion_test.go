package games

import "testing"

func TestCompletion_FirstResolutionWins(t *testing.T) {
	c := NewCompletion(Trivia)
	if !c.Complete(Score(3)) {
		t.Fatal("first Complete should win")
	}
	if c.Complete(Score(5)) {
		t.Error("second Complete should be ignored")
	}
	if c.Dismiss() {
		t.Error("Dismiss after Complete should be ignored")
	}

	r, ok := c.TryResult()
	if !ok {
		t.Fatal("expected a result")
	}
	if r.Game != Trivia || r.Score == nil || *r.Score != 3 || r.Dismissed {
		t.Errorf("result = %+v", r)
	}
	if _, ok := c.TryResult(); ok {
		t.Error("result delivered twice")
	}
}

func TestCompletion_DismissThenComplete(t *testing.T) {
	c := NewCompletion(Jump)
	c.Dismiss()
	c.Complete(Score(40))

	r := <-c.Done()
	if !r.Dismissed || r.HasScore() {
		t.Errorf("result = %+v, want dismissed without score", r)
	}
}

func TestCompletion_PendingHasNoResult(t *testing.T) {
	c := NewCompletion(Photo)
	if _, ok := c.TryResult(); ok {
		t.Error("unresolved completion returned a result")
	}
}

func TestParse(t *testing.T) {
	for _, id := range All {
		got, err := Parse(string(id))
		if err != nil || got != id {
			t.Errorf("Parse(%q) = %q, %v", id, got, err)
		}
	}
	if _, err := Parse("chess"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestDescribe(t *testing.T) {
	for _, id := range All {
		info := Describe(id)
		if info.Name == "" || info.Description == "" || info.Icon == "" {
			t.Errorf("Describe(%q) incomplete: %+v", id, info)
		}
	}
}
