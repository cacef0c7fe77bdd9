package game

import (
	"fmt"

	"duel/utils"
)

// Action is one of the six moves a wizard can pick on a turn. The set is
// closed: resolution switches exhaustively over it.
type Action int

const (
	Strike Action = iota
	Fireball
	LightningBolt
	ManaShield
	Reflect
	Concentrate
)

var actionNames = []string{
	"Strike",
	"Fireball",
	"LightningBolt",
	"ManaShield",
	"Reflect",
	"Concentrate",
}

func (a Action) String() string {
	if a < Strike || a > Concentrate {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Damage returns the damage dealt to an unshielded, non-reflecting opponent.
func (a Action) Damage() int {
	switch a {
	case Strike:
		return 2
	case Fireball:
		return 3
	case LightningBolt:
		return 5
	case ManaShield, Reflect, Concentrate:
		return 0
	}
	return 0
}

// ManaCost returns the mana paid to play the action, as a positive magnitude.
// Concentrate costs nothing; its mana effect is a gain (Rules.ConcentrateGain).
func (a Action) ManaCost() int {
	switch a {
	case Strike, Concentrate:
		return 0
	case Fireball, ManaShield:
		return 1
	case LightningBolt, Reflect:
		return 2
	}
	return 0
}

// IsAttack reports whether the action deals damage when it lands.
func (a Action) IsAttack() bool {
	return a.Damage() > 0
}

// Actions returns the full catalog in declaration order.
func Actions() []Action {
	return []Action{Strike, Fireball, LightningBolt, ManaShield, Reflect, Concentrate}
}

// ParseAction maps an action name (as produced by String) back to its variant.
func ParseAction(name string) (Action, error) {
	i := utils.FindIndex(actionNames, name)
	if i < 0 {
		return 0, fmt.Errorf("unknown action %q", name)
	}
	return Action(i), nil
}
