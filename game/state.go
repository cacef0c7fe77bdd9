package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Side identifies one of the two wizards in a duel.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Outcome classifies a finished duel.
type Outcome int

const (
	OutcomeNone Outcome = iota
	LeftWins
	RightWins
	// BothDead is mutual destruction on the same turn, distinct from a
	// turn-capped Tie.
	BothDead
	Tie
)

var outcomeNames = []string{"None", "LeftWins", "RightWins", "BothDead", "Tie"}

func (o Outcome) String() string {
	if o < OutcomeNone || o > Tie {
		return "Unknown"
	}
	return outcomeNames[o]
}

// WizardState is one wizard's health and mana pool. Both values saturate at
// a floor of 0 and never go negative.
type WizardState struct {
	Health int
	Mana   int
}

type StateHash uint64

// DuelState is the full state of one duel: two wizards plus a turn counter.
// It is a value type - Resolve always returns a new copy, the receiver is
// never mutated. Each DuelState is owned by exactly one trial at a time.
type DuelState struct {
	Left      WizardState
	Right     WizardState
	TurnCount int
	Rules     Rules
}

// NewDuelState initializes both wizards from the rules' starting values.
func NewDuelState(rules Rules) DuelState {
	wizard := WizardState{Health: rules.InitialHealth, Mana: rules.InitialMana}
	return DuelState{
		Left:  wizard,
		Right: wizard,
		Rules: rules,
	}
}

// Completed reports whether the duel is over and who won. Both wizards dying
// on the same turn is its own outcome.
func (gs DuelState) Completed() (bool, Outcome) {
	switch {
	case gs.Left.Health == 0 && gs.Right.Health == 0:
		return true, BothDead
	case gs.Left.Health == 0:
		return true, RightWins
	case gs.Right.Health == 0:
		return true, LeftWins
	}
	return false, OutcomeNone
}

func (gs DuelState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Left.Health))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Left.Mana))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Right.Health))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Right.Mana))
	binary.Write(hasher, binary.LittleEndian, int64(gs.TurnCount))

	return StateHash(hasher.Sum64())
}

func (gs *DuelState) wizard(side Side) *WizardState {
	if side == SideLeft {
		return &gs.Left
	}
	return &gs.Right
}

func (gs *DuelState) damageWizard(side Side, damage int) {
	w := gs.wizard(side)
	w.Health = saturatingSub(w.Health, damage)
}

func (gs *DuelState) spendMana(side Side, cost int) {
	w := gs.wizard(side)
	w.Mana = saturatingSub(w.Mana, cost)
}

func (gs *DuelState) restoreMana(side Side, gain int) {
	gs.wizard(side).Mana += gain
}

func saturatingSub(value, amount int) int {
	if amount >= value {
		return 0
	}
	return value - amount
}
