package games

import "sync"

// Completion is a single-shot result channel handed to a running game.
// The first resolution wins; later calls are ignored.
type Completion struct {
	game ID
	once sync.Once
	ch   chan Result
}

// NewCompletion returns an unresolved completion for game.
func NewCompletion(game ID) *Completion {
	return &Completion{game: game, ch: make(chan Result, 1)}
}

// Game returns the game the completion is bound to.
func (c *Completion) Game() ID { return c.game }

// Complete resolves the completion with an optional score. It reports
// whether this call was the one that resolved it.
func (c *Completion) Complete(score *int) bool {
	return c.resolve(Result{Game: c.game, Score: score})
}

// Dismiss resolves the completion as closed by the user.
func (c *Completion) Dismiss() bool {
	return c.resolve(Result{Game: c.game, Dismissed: true})
}

func (c *Completion) resolve(r Result) bool {
	won := false
	c.once.Do(func() {
		c.ch <- r
		won = true
	})
	return won
}

// Done returns the channel that receives the single result.
func (c *Completion) Done() <-chan Result { return c.ch }

// TryResult returns the result if one is ready, without blocking.
// The result can be taken only once.
func (c *Completion) TryResult() (Result, bool) {
	select {
	case r := <-c.ch:
		return r, true
	default:
		return Result{}, false
	}
}
