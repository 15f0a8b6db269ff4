package conf

// MinCapacity - The capacity floor of the slot array, no resize ever shrinks below it.
// Any odd floor would do, this one matches the documented reference configuration.
const MinCapacity int64 = 11

// DefaultMaxFullness - How full the slot array may get before a resize is triggered
const DefaultMaxFullness float64 = 0.75

// DefaultMinFullness - How empty the slot array may get before a resize is triggered
const DefaultMinFullness float64 = 0.25

// DefaultSetFullness - The fullness the slot array is given when a resize occurs
const DefaultSetFullness float64 = 0.5
