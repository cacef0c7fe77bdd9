package game

import "fmt"

// IllegalMoveError reports a wizard trying to pay more mana than it holds.
// It is the only error the resolution engine produces.
type IllegalMoveError struct {
	Side   Side
	Action Action
}

func (e IllegalMoveError) Error() string {
	return fmt.Sprintf("%s wizard cannot afford %s (cost %d)", e.Side, e.Action, e.Action.ManaCost())
}

// Resolve applies one simultaneous turn and returns the resulting state.
//
// Legality is checked on the pre-turn state before anything else: each side's
// action cost is compared against that same side's own mana. If either action
// is illegal the turn is rejected atomically - the receiver is returned
// unchanged, including its turn count.
//
// A legal turn applies, in order: both sides' mana costs (each against the
// pre-turn pool, neither deduction sees the other), both action evaluations,
// the passive mana gain for both sides, and the turn count increment.
func (gs DuelState) Resolve(left, right Action) (DuelState, error) {
	if gs.Left.Mana < left.ManaCost() {
		return gs, IllegalMoveError{Side: SideLeft, Action: left}
	}
	if gs.Right.Mana < right.ManaCost() {
		return gs, IllegalMoveError{Side: SideRight, Action: right}
	}

	next := gs
	next.spendMana(SideLeft, left.ManaCost())
	next.spendMana(SideRight, right.ManaCost())

	next.evaluate(SideLeft, left, right)
	next.evaluate(SideRight, right, left)

	next.restoreMana(SideLeft, gs.Rules.PassiveManaGain)
	next.restoreMana(SideRight, gs.Rules.PassiveManaGain)
	next.TurnCount++

	return next, nil
}

// evaluate applies one side's action against the opponent's chosen action.
// ManaShield and Reflect only matter when facing an attack; against anything
// else their cost was their whole effect.
func (gs *DuelState) evaluate(attacker Side, action, defense Action) {
	switch action {
	case Strike, Fireball, LightningBolt:
		switch defense {
		case Reflect:
			gs.damageWizard(attacker, action.Damage())
		case ManaShield:
			// Fully blocked.
		default:
			gs.damageWizard(attacker.Opponent(), action.Damage())
		}
	case Concentrate:
		gs.restoreMana(attacker, gs.Rules.ConcentrateGain)
	case ManaShield, Reflect:
	}
}
