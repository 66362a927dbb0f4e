package ability

// Ability tuning. Values are part of the archetype design, not server config.
const (
	// StaticChance — probability that Static adds its bonus to an attack.
	StaticChance = 0.15
	// StaticBonus — flat power added by Static.
	StaticBonus = 5

	// PinchThreshold — HP fraction at or below which Blaze/Overgrow kick in.
	PinchThreshold = 0.3
	// BlazeBonus — flat power added by Blaze in a pinch.
	BlazeBonus = 10
	// OvergrowBonus — flat power added by Overgrow in a pinch.
	OvergrowBonus = 8

	// ShellArmorReduction — flat reduction of every incoming hit.
	ShellArmorReduction = 5

	// SteadfastBonus — power bonus granted once the holder takes its first hit.
	SteadfastBonus = 5

	// CurseTick — HP the cursed opponent loses after every round.
	CurseTick = 5
)
