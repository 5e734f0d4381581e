package progress

// Achievement identifies a milestone unlocked by the session counters.
type Achievement string

const (
	FirstSession    Achievement = "first_session"
	GameMaster      Achievement = "game_master"
	FocusWarrior    Achievement = "focus_warrior"
	ProductivityPro Achievement = "productivity_pro"
)

// AllAchievements returns every achievement in display order.
func AllAchievements() []Achievement {
	return []Achievement{FirstSession, GameMaster, FocusWarrior, ProductivityPro}
}

// DisplayName returns a human-readable label.
func (a Achievement) DisplayName() string {
	switch a {
	case FirstSession:
		return "First Session"
	case GameMaster:
		return "Game Master"
	case FocusWarrior:
		return "Focus Warrior"
	case ProductivityPro:
		return "Productivity Pro"
	default:
		return string(a)
	}
}

// Description explains how the achievement is earned.
func (a Achievement) Description() string {
	switch a {
	case FirstSession:
		return "Complete your first pomodoro"
	case GameMaster:
		return "Play 5 mini-games"
	case FocusWarrior:
		return "Complete 5 pomodoros"
	case ProductivityPro:
		return "Complete 10 pomodoros"
	default:
		return ""
	}
}

// Icon returns the display icon.
func (a Achievement) Icon() string {
	switch a {
	case FirstSession:
		return "🌱"
	case GameMaster:
		return "🎮"
	case FocusWarrior:
		return "⚔️"
	case ProductivityPro:
		return "🚀"
	default:
		return "✦"
	}
}

// Unlocked reports whether the achievement is earned at the given counts.
func (a Achievement) Unlocked(s Stats) bool {
	switch a {
	case FirstSession:
		return s.PomodorosCompleted >= 1
	case GameMaster:
		return s.GamesPlayed >= 5
	case FocusWarrior:
		return s.PomodorosCompleted >= 5
	case ProductivityPro:
		return s.PomodorosCompleted >= 10
	default:
		return false
	}
}

// Status pairs an achievement with its unlock state.
type Status struct {
	Achievement Achievement
	Unlocked    bool
}

// Evaluate computes every achievement for s.
func Evaluate(s Stats) []Status {
	all := AllAchievements()
	out := make([]Status, len(all))
	for i, a := range all {
		out[i] = Status{Achievement: a, Unlocked: a.Unlocked(s)}
	}
	return out
}
