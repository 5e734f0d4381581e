package history

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/router"
	"github.com/abhisek/wolfchan/internal/store"
)

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func seed(t *testing.T, repo store.EventRepo) {
	t.Helper()
	ctx := context.Background()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(repo.AppendPomodoroEvent(ctx, store.PomodoroEventData{RunID: "r1", Kind: store.PomodoroWorkComplete, WorkSeconds: 1500}))
	must(repo.AppendGameEvent(ctx, store.GameEventData{RunID: "r1", Game: string(games.Trivia), Score: games.Score(4)}))
	must(repo.AppendGameEvent(ctx, store.GameEventData{RunID: "r1", Game: string(games.Jump), Score: games.Score(120)}))
	must(repo.AppendGameEvent(ctx, store.GameEventData{RunID: "r1", Game: string(games.Photo), Dismissed: true}))
}

func load(t *testing.T, s *Screen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should load history")
	}
	s.Update(cmd())
	if !s.loaded {
		t.Fatal("history not loaded")
	}
}

func TestHistory_ShowsTotalsAndGames(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)
	s := New(repo, true)
	load(t, s)

	v := s.View(120, 40)
	for _, want := range []string{"1 pomodoros", "3 games", "0h 25m", "Trivia Quiz", "score 4", "skipped", "best 120"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistory_GamesTotalFollowsDismissPolicy(t *testing.T) {
	tests := []struct {
		name           string
		countDismissed bool
		want           string
	}{
		{"with_skipped", true, "3 games"},
		{"without_skipped", false, "2 games"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := openRepo(t)
			seed(t, repo)
			s := New(repo, tt.countDismissed)
			load(t, s)

			if v := s.View(120, 40); !strings.Contains(v, tt.want) {
				t.Errorf("view missing %q", tt.want)
			}
		})
	}
}

func TestHistory_Filter(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)
	s := New(repo, true)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !s.filtering {
		t.Fatal("/ should open the filter")
	}
	for _, r := range "jump" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	rows := s.visible()
	if len(rows) != 1 || rows[0].Game != string(games.Jump) {
		t.Fatalf("visible = %+v, want only jump", rows)
	}

	s.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if len(s.visible()) != 3 {
		t.Error("esc in the filter should clear it")
	}
}

func TestHistory_NavigationAndBack(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)
	s := New(repo, true)
	load(t, s)

	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 2 {
		t.Errorf("selected = %d, want clamp at 2", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := New(openRepo(t), true)
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No games yet") {
		t.Error("empty notice missing")
	}
}

func TestHistory_NoJournal(t *testing.T) {
	s := New(nil, true)
	if s.Init() != nil {
		t.Error("no repo should not load")
	}
	if !strings.Contains(s.View(100, 30), "History is off") {
		t.Error("disabled notice missing")
	}
}
