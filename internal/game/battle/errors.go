package battle

import "errors"

var (
	// ErrUltimateOnCooldown is returned when a controller picks the ultimate while it is recharging.
	ErrUltimateOnCooldown = errors.New("ultimate on cooldown")

	// ErrNoItemCharges is returned when a controller picks the item with no potions left.
	ErrNoItemCharges = errors.New("no item charges left")
)
