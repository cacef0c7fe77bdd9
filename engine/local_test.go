package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"duel/agent"
	"duel/game"
)

func TestLocalEngineRun(t *testing.T) {
	t.Run("mutual strikes end in mutual destruction", func(t *testing.T) {
		// Both wizards lose 2 health per turn from 25, so both hit 0 on turn 13.
		e := NewLocalEngine(
			agent.NewScripted(game.Strike),
			agent.NewScripted(game.Strike),
			game.NewStandardRules(),
		)

		result := e.Run()

		require.Equal(t, game.BothDead, result.Outcome)
		require.Equal(t, 13, result.Turns)
		require.Equal(t, 0, result.RejectedTurns)
		require.Equal(t, 0, result.Final.Left.Health)
		require.Equal(t, 0, result.Final.Right.Health)
	})

	t.Run("illegal selections skip the turn and the loop continues", func(t *testing.T) {
		rules := game.NewStandardRules()
		rules.InitialHealth = 2
		rules.InitialMana = 0
		e := NewLocalEngine(
			agent.NewScripted(game.Fireball, game.Strike),
			agent.NewScripted(game.Strike),
			rules,
		)

		result := e.Run()

		require.Equal(t, 1, result.RejectedTurns,
			"Fireball with no mana should be discarded, not retried")
		require.Equal(t, 1, result.Turns,
			"Only the strike exchange should count as a turn")
		require.Equal(t, game.BothDead, result.Outcome)
	})

	t.Run("turn cap calls a stalemate a tie", func(t *testing.T) {
		// Two shielding wizards never lose health; mana pays 1 and regains 1
		// every turn, so the duel would run forever without the cap.
		rules := game.NewStandardRules()
		rules.MaxTurns = 5
		e := NewLocalEngine(
			agent.NewScripted(game.ManaShield),
			agent.NewScripted(game.ManaShield),
			rules,
		)

		result := e.Run()

		require.Equal(t, game.Tie, result.Outcome)
		require.Equal(t, 5, result.Turns)
	})

	t.Run("transcript replays the duel exactly", func(t *testing.T) {
		rules := game.NewShortRules()
		e := NewLocalEngine(
			agent.NewScripted(game.Strike, game.Fireball, game.Concentrate),
			agent.NewScripted(game.Concentrate, game.ManaShield, game.Strike),
			rules,
		).WithTranscript()

		result := e.Run()

		require.Equal(t, game.LeftWins, result.Outcome)

		transcript := e.Transcript()
		require.Len(t, transcript, result.Turns,
			"Transcript should hold exactly one update per resolved turn")

		replayed := game.NewDuelState(rules)
		for _, update := range transcript {
			next, err := replayed.Resolve(update.Left, update.Right)
			require.NoError(t, err, "Recorded turns were legal when played")
			require.Equal(t, update.Hash, next.Hash(),
				"Replaying the recorded actions should reproduce each state")
			replayed = next
		}
		require.Equal(t, result.Final, replayed)
	})

	t.Run("panics without selectors", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(nil, nil, game.NewStandardRules())
		})
	})
}
