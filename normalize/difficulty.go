package normalize

// Difficulty is the canonical three-level problem difficulty.
type Difficulty string

const (
	DifficultyLow  Difficulty = "Low"
	DifficultyMid  Difficulty = "Mid"
	DifficultyHigh Difficulty = "High"
)

// ParseDifficulty folds whatever the backend sent into one of the three
// canonical values. Matching is deliberately exact: "low", "HIGH" and
// "Medium" all become Mid, same as a missing field. The legacy admin UI
// behaves this way and problem tables are grouped on the three values, so
// a fourth bucket must never leak out of an adapter.
func ParseDifficulty(v any) Difficulty {
	s := StrOr(v, string(DifficultyMid))
	switch Difficulty(s) {
	case DifficultyLow:
		return DifficultyLow
	case DifficultyHigh:
		return DifficultyHigh
	default:
		return DifficultyMid
	}
}
