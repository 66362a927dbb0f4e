package data

// Matchup classifies an ordered attacker/defender type pair.
type Matchup int

const (
	MatchupNeutral Matchup = iota
	MatchupAdvantage
	MatchupDisadvantage
)

func (m Matchup) String() string {
	switch m {
	case MatchupAdvantage:
		return "advantage"
	case MatchupDisadvantage:
		return "disadvantage"
	default:
		return "neutral"
	}
}

type typePair struct {
	attacker Type
	defender Type
}

// advantageTable — hand-curated ordered pairs. Asymmetric, no transitivity:
// a disadvantage exists only as the reverse of a listed pair.
var advantageTable = map[typePair]struct{}{
	{TypeFire, TypeGrass}:     {},
	{TypeWater, TypeFire}:     {},
	{TypeElectric, TypeWater}: {},
	{TypeGrass, TypeWater}:    {},
	{TypeGhost, TypePsychic}:  {},
}

// MatchupOf looks up the attacker→defender pair, then the reversed pair.
func MatchupOf(attacker, defender Type) Matchup {
	if _, ok := advantageTable[typePair{attacker, defender}]; ok {
		return MatchupAdvantage
	}
	if _, ok := advantageTable[typePair{defender, attacker}]; ok {
		return MatchupDisadvantage
	}
	return MatchupNeutral
}
