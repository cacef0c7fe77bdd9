package agent

import "duel/game"

// Selector picks one action per turn for one side of a duel. The engine calls
// it once per side per turn, independently.
//
// Liveness assumption: health only drops when an attack lands, so a selector
// that never attacks can keep a duel going forever. Selectors must attack
// with nonzero long-run probability unless the rules set a turn cap.
type Selector interface {
	SelectAction() game.Action
}
