package pagelist_test

import (
	"testing"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/pagelist"
	"github.com/stretchr/testify/assert"
)

func nums(vals ...float64) []any {
	res := make([]any, len(vals))
	for i, v := range vals {
		res[i] = v
	}
	return res
}

func TestNormalizeBareArraySlicesManually(t *testing.T) {
	l := pagelist.Normalize(nums(1, 2, 3, 4, 5), 2, 2)
	assert.Equal(t, nums(3, 4), l.Results)
	assert.Equal(t, 5, l.Total)
	assert.Equal(t, 2, l.Offset)
	assert.Equal(t, 2, l.Limit)
}

func TestNormalizeBareArrayLastPartialPage(t *testing.T) {
	l := pagelist.Normalize(nums(1, 2, 3, 4, 5), 3, 2)
	assert.Equal(t, nums(5), l.Results)
	assert.Equal(t, 5, l.Total)

	l = pagelist.Normalize(nums(1, 2, 3), 9, 2)
	assert.Empty(t, l.Results, "page past the end is empty, not a panic")
	assert.Equal(t, 3, l.Total)
}

func TestNormalizeBareArrayZeroLimit(t *testing.T) {
	l := pagelist.Normalize(nums(1, 2, 3), 1, 0)
	assert.Equal(t, nums(1, 2, 3), l.Results, "no limit means no client-side slicing")
	assert.Equal(t, 0, l.Offset)
}

func TestNormalizeResultsShape(t *testing.T) {
	raw := map[string]any{
		"results": []any{map[string]any{"id": float64(1)}},
		"total":   float64(50),
	}
	l := pagelist.Normalize(raw, 1, 20)
	assert.Len(t, l.Results, 1, "server already paginated, no re-slicing")
	assert.Equal(t, 50, l.Total)
	assert.Equal(t, 0, l.Offset)
	assert.Equal(t, 20, l.Limit)
}

func TestNormalizeResultsShapeMissingTotal(t *testing.T) {
	raw := map[string]any{"results": nums(1, 2)}
	l := pagelist.Normalize(raw, 1, 10)
	assert.Equal(t, 2, l.Total)
}

func TestNormalizeItemsShape(t *testing.T) {
	raw := map[string]any{"items": nums(7), "total": float64(30)}
	l := pagelist.Normalize(raw, 2, 10)
	assert.Equal(t, nums(7), l.Results)
	assert.Equal(t, 30, l.Total)
	assert.Equal(t, 10, l.Offset)
}

func TestNormalizeDataShape(t *testing.T) {
	raw := map[string]any{"data": []any{map[string]any{"id": float64(9)}}}
	l := pagelist.Normalize(raw, 3, 7)
	assert.Len(t, l.Results, 1)
	assert.Equal(t, 1, l.Total)
}

func TestNormalizeGarbage(t *testing.T) {
	for _, raw := range []any{"garbage", nil, float64(3), map[string]any{"data": "x"}} {
		l := pagelist.Normalize(raw, 1, 10)
		assert.Empty(t, l.Results, "input %v", raw)
		assert.Equal(t, 0, l.Total, "input %v", raw)
	}
}

func TestMapAdaptsInOrder(t *testing.T) {
	raw := []any{
		map[string]any{"id": float64(2), "title": "b"},
		map[string]any{"id": float64(1), "title": "a"},
	}
	l := pagelist.Normalize(raw, 1, 0)
	problems := pagelist.Map(l, entity.AdaptProblem)
	assert.Equal(t, []int{2, 1}, []int{problems[0].ID, problems[1].ID})
}
