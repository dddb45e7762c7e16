package dice

// DefaultSides is the die size togarashi pools use unless told otherwise
const DefaultSides = 10

// MaxDice is the largest pool a single roll may use
const MaxDice = 100

// ClampPool bounds a stat-derived pool to [0, MaxDice]
func ClampPool(n int) int {
	return min(max(0, n), MaxDice)
}

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult holds the individual dice of one roll
type RollResult struct {
	Total    int   `json:"total"`
	Rolls    []int `json:"rolls"`
	Bonus    int   `json:"bonus"`
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	RawTotal int   `json:"raw_total"`
}
