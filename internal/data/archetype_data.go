package data

// archetypeDef — built-in roster entry.
type archetypeDef struct {
	key      string
	display  string
	typ      Type
	baseHP   int
	moves    []Move
	ultimate Move
	ability  AbilityTag
}

// archetypeDefs is the built-in roster in display order.
var archetypeDefs = []archetypeDef{
	{
		key: "pikachu", display: "Pikachu", typ: TypeElectric, baseHP: 100,
		moves:    []Move{{"Thunderbolt", 22}, {"Quick Attack", 12}, {"Iron Tail", 16}},
		ultimate: Move{"Volt Tackle", 65},
		ability:  AbilityStatic,
	},
	{
		key: "charizard", display: "Charizard", typ: TypeFire, baseHP: 130,
		moves:    []Move{{"Flamethrower", 30}, {"Slash", 16}, {"Wing Attack", 18}},
		ultimate: Move{"Inferno Overdrive", 95},
		ability:  AbilityBlaze,
	},
	{
		key: "blastoise", display: "Blastoise", typ: TypeWater, baseHP: 135,
		moves:    []Move{{"Hydro Pump", 36}, {"Tackle", 12}, {"Bite", 14}},
		ultimate: Move{"Tsunami Strike", 100},
		ability:  AbilityShellArmor,
	},
	{
		key: "venusaur", display: "Venusaur", typ: TypeGrass, baseHP: 128,
		moves:    []Move{{"Vine Whip", 20}, {"Razor Leaf", 26}, {"Earthquake", 20}},
		ultimate: Move{"Eternal Bloom", 100},
		ability:  AbilityOvergrow,
	},
	{
		key: "gengar", display: "Gengar", typ: TypeGhost, baseHP: 110,
		moves:    []Move{{"Shadow Ball", 28}, {"Dark Pulse", 20}, {"Hex", 18}},
		ultimate: Move{"Phantom Nova", 95},
		ability:  AbilityCurse,
	},
	{
		key: "lucario", display: "Lucario", typ: TypeFighting, baseHP: 120,
		moves:    []Move{{"Aura Sphere", 28}, {"Close Combat", 24}, {"Metal Claw", 16}},
		ultimate: Move{"Sonic Edge", 100},
		ability:  AbilitySteadfast,
	},
	{
		key: "mewtwo", display: "Mewtwo (Boss)", typ: TypePsychic, baseHP: 200,
		moves:    []Move{{"Psystrike", 42}, {"Confusion", 22}, {"Psychic Blast", 36}},
		ultimate: Move{"Psycho Crusher", 150},
		ability:  AbilityNone,
	},
}
