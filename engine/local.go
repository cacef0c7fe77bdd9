package engine

import (
	"errors"

	"github.com/rs/zerolog/log"

	"duel/agent"
	"duel/game"
)

// Update records one resolved turn for a duel transcript.
type Update struct {
	Left  game.Action
	Right game.Action
	Hash  game.StateHash
}

// LocalEngine drives one duel to completion in-process. It owns its DuelState
// for the duel's whole lifetime; nothing else reads or writes it.
type LocalEngine struct {
	State game.DuelState
	Left  agent.Selector
	Right agent.Selector

	rejected       int
	keepTranscript bool
	transcript     []Update
}

func NewLocalEngine(left, right agent.Selector, rules game.Rules) *LocalEngine {
	if left == nil || right == nil {
		panic("both sides need a selector")
	}
	return &LocalEngine{
		State: game.NewDuelState(rules),
		Left:  left,
		Right: right,
	}
}

// WithTranscript makes Run record every resolved turn.
func (e *LocalEngine) WithTranscript() *LocalEngine {
	e.keepTranscript = true
	return e
}

// Run executes the duel loop until a terminal state. An illegal selection
// skips the turn entirely: no state change, no turn increment, and both
// sides pick fresh actions on the next iteration.
func (e *LocalEngine) Run() Result {
	for {
		if over, outcome := e.State.Completed(); over {
			return e.result(outcome)
		}
		if maxTurns := e.State.Rules.MaxTurns; maxTurns > 0 && e.State.TurnCount >= maxTurns {
			log.Debug().Int("turns", e.State.TurnCount).Msg("turn cap reached, calling the duel a tie")
			return e.result(game.Tie)
		}

		left := e.Left.SelectAction()
		right := e.Right.SelectAction()

		next, err := e.State.Resolve(left, right)
		if err != nil {
			var illegal game.IllegalMoveError
			if errors.As(err, &illegal) {
				log.Debug().
					Stringer("side", illegal.Side).
					Stringer("action", illegal.Action).
					Msg("illegal move skipped")
			}
			e.rejected++
			continue
		}

		e.State = next
		if e.keepTranscript {
			e.transcript = append(e.transcript, Update{Left: left, Right: right, Hash: next.Hash()})
		}
	}
}

// Transcript returns the per-turn updates recorded when WithTranscript was
// set, in turn order.
func (e *LocalEngine) Transcript() []Update {
	return e.transcript
}

func (e *LocalEngine) result(outcome game.Outcome) Result {
	return Result{
		Outcome:       outcome,
		Final:         e.State,
		Turns:         e.State.TurnCount,
		RejectedTurns: e.rejected,
	}
}
