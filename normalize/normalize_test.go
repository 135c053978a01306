package normalize_test

import (
	"testing"

	"github.com/programme-lv/console/normalize"
	"github.com/stretchr/testify/assert"
)

func TestParseBoolStrings(t *testing.T) {
	truthy := []string{"true", "TRUE", "1", "yes", "Y", " y ", "Yes"}
	for _, s := range truthy {
		assert.True(t, normalize.ParseBool(s), "input %q", s)
	}

	falsy := []string{"false", "0", "no", "n", "", "banana", "maybe", "  "}
	for _, s := range falsy {
		assert.False(t, normalize.ParseBool(s), "input %q", s)
	}
}

func TestParseBoolNumbers(t *testing.T) {
	assert.False(t, normalize.ParseBool(0))
	assert.False(t, normalize.ParseBool(float64(0)))
	assert.True(t, normalize.ParseBool(1))
	assert.True(t, normalize.ParseBool(-1))
	assert.True(t, normalize.ParseBool(float64(0.5)))
}

func TestParseBoolOther(t *testing.T) {
	assert.False(t, normalize.ParseBool(nil))
	assert.True(t, normalize.ParseBool(map[string]any{}))
	assert.True(t, normalize.ParseBool([]any{}))
	assert.True(t, normalize.ParseBool(true))
	assert.False(t, normalize.ParseBool(false))
}

func TestNumOr(t *testing.T) {
	assert.Equal(t, 5.0, normalize.NumOr(5.0, 0))
	assert.Equal(t, 5.0, normalize.NumOr(5, 0))
	assert.Equal(t, 1000.0, normalize.NumOr("1000", 0))
	assert.Equal(t, 1.5, normalize.NumOr(" 1.5 ", 0))
	assert.Equal(t, 7.0, normalize.NumOr("garbage", 7))
	assert.Equal(t, 7.0, normalize.NumOr(nil, 7))
	assert.Equal(t, 7.0, normalize.NumOr([]any{1}, 7))
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 256, normalize.IntOr(float64(256), 0))
	assert.Equal(t, 0, normalize.IntOr("x", 0))
	assert.Equal(t, 3, normalize.IntOr(nil, 3))
}

func TestFirstPresent(t *testing.T) {
	obj := map[string]any{"visible": false, "is_public": true}

	v, ok := normalize.FirstPresent(obj, "visible", "is_public")
	assert.True(t, ok)
	assert.Equal(t, false, v, "first present key wins even when its value is false")

	v, ok = normalize.FirstPresent(map[string]any{"is_public": true}, "visible", "is_public")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	_, ok = normalize.FirstPresent(map[string]any{}, "visible", "is_public")
	assert.False(t, ok)

	// nil counts as absent
	_, ok = normalize.FirstPresent(map[string]any{"visible": nil}, "visible")
	assert.False(t, ok)
}

func TestProblemKey(t *testing.T) {
	assert.Equal(t, "p100", normalize.ProblemKey(" P100 ", 3))
	assert.Equal(t, "42", normalize.ProblemKey("", 42))
	assert.Equal(t, "42", normalize.ProblemKey("   ", 42))
	assert.Equal(t, "", normalize.ProblemKey("", 0))
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, normalize.DifficultyLow, normalize.ParseDifficulty("Low"))
	assert.Equal(t, normalize.DifficultyHigh, normalize.ParseDifficulty("High"))

	mid := []any{"low", "HIGH", "Medium", "", nil, 3, "Mid"}
	for _, v := range mid {
		assert.Equal(t, normalize.DifficultyMid, normalize.ParseDifficulty(v), "input %v", v)
	}
}

func TestParseDifficultyIdempotent(t *testing.T) {
	inputs := []any{"Low", "low", "High", "banana", nil}
	for _, v := range inputs {
		once := normalize.ParseDifficulty(v)
		twice := normalize.ParseDifficulty(string(once))
		assert.Equal(t, once, twice)
	}
}

func TestStrSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, normalize.StrSlice([]any{"a", 1, "b", nil}))
	assert.Equal(t, []string{}, normalize.StrSlice("not an array"))
	assert.Equal(t, []string{}, normalize.StrSlice(nil))
}
