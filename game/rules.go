package game

// Rules carries the tunable duel parameters. Everything that was a constant
// in early prototypes lives here so experiments can vary it per run.
type Rules struct {
	InitialHealth   int `yaml:"initial_health"`
	InitialMana     int `yaml:"initial_mana"`
	PassiveManaGain int `yaml:"passive_mana_gain"`
	ConcentrateGain int `yaml:"concentrate_gain"`
	// MaxTurns caps a duel when > 0; reaching the cap ends it as a tie.
	// With 0 the duel runs until someone dies, which relies on the selectors
	// attacking with nonzero long-run probability.
	MaxTurns int `yaml:"max_turns"`
}

// NewStandardRules returns the reference configuration: 25 health, 1 starting
// mana, +1 passive mana per turn, +4 mana from Concentrate, no turn cap.
func NewStandardRules() Rules {
	return Rules{
		InitialHealth:   25,
		InitialMana:     1,
		PassiveManaGain: 1,
		ConcentrateGain: 4,
	}
}

// NewShortRules returns the 15-health variant for quicker duels.
func NewShortRules() Rules {
	r := NewStandardRules()
	r.InitialHealth = 15
	return r
}
