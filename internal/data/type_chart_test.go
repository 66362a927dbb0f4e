package data

import "testing"

func TestMatchupOf(t *testing.T) {
	tests := []struct {
		attacker, defender Type
		want               Matchup
	}{
		{TypeFire, TypeGrass, MatchupAdvantage},
		{TypeWater, TypeFire, MatchupAdvantage},
		{TypeElectric, TypeWater, MatchupAdvantage},
		{TypeGrass, TypeWater, MatchupAdvantage},
		{TypeGhost, TypePsychic, MatchupAdvantage},

		{TypeGrass, TypeFire, MatchupDisadvantage},
		{TypeFire, TypeWater, MatchupDisadvantage},
		{TypeWater, TypeElectric, MatchupDisadvantage},
		{TypeWater, TypeGrass, MatchupDisadvantage},
		{TypePsychic, TypeGhost, MatchupDisadvantage},

		// not in the table in either direction
		{TypeElectric, TypeGrass, MatchupNeutral},
		{TypeFighting, TypePsychic, MatchupNeutral},
		{TypeFire, TypeFire, MatchupNeutral},
		{TypeFire, TypeElectric, MatchupNeutral},
	}

	for _, tt := range tests {
		if got := MatchupOf(tt.attacker, tt.defender); got != tt.want {
			t.Errorf("MatchupOf(%s, %s) = %s; want %s", tt.attacker, tt.defender, got, tt.want)
		}
	}
}
