package experiments

import "duel/game"

// Tally aggregates trial outcomes. Each worker keeps its own partial tally
// and the driver merges them at the end, so no counter is ever shared between
// running trials.
type Tally struct {
	LeftWins  int
	RightWins int
	BothDead  int
	Ties      int
	Trials    int
}

func (t *Tally) Add(outcome game.Outcome) {
	t.Trials++
	switch outcome {
	case game.LeftWins:
		t.LeftWins++
	case game.RightWins:
		t.RightWins++
	case game.BothDead:
		t.BothDead++
	case game.Tie:
		t.Ties++
	}
}

func (t *Tally) Merge(other Tally) {
	t.LeftWins += other.LeftWins
	t.RightWins += other.RightWins
	t.BothDead += other.BothDead
	t.Ties += other.Ties
	t.Trials += other.Trials
}
