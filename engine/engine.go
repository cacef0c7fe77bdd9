package engine

import "duel/game"

// Result is what a single duel produces for the Monte Carlo driver.
type Result struct {
	Outcome game.Outcome
	Final   game.DuelState
	Turns   int
	// RejectedTurns counts selections that were discarded as illegal. They
	// never touched the state or the turn count.
	RejectedTurns int
}

type Engine interface {
	// Run starts a duel till a wizard dies or the rules' turn cap is reached
	Run() Result
}
