package agent

import "duel/game"

// Scripted replays a fixed sequence of actions, cycling once exhausted. A
// duel transcript is reproducible from its chosen actions alone, so Scripted
// doubles as the replay mechanism in tests.
type Scripted struct {
	actions []game.Action
	next    int
}

func NewScripted(actions ...game.Action) *Scripted {
	if len(actions) == 0 {
		panic("scripted selector needs at least one action")
	}
	return &Scripted{actions: actions}
}

func (s *Scripted) SelectAction() game.Action {
	action := s.actions[s.next%len(s.actions)]
	s.next++
	return action
}
