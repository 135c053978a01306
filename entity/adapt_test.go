package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	var raw any
	err := json.Unmarshal([]byte(body), &raw)
	require.NoError(t, err)
	return raw
}

func TestAdaptProblemSnakeCase(t *testing.T) {
	raw := decode(t, `{
		"id": 12,
		"_id": "P100",
		"title": "Two Sum",
		"time_limit": 1000,
		"memory_limit": 256,
		"difficulty": "Low",
		"tags": ["dp", "math"],
		"is_public": true,
		"create_time": "2024-05-01T10:00:00Z"
	}`)

	p := entity.AdaptProblem(raw)
	assert.Equal(t, 12, p.ID)
	assert.Equal(t, "P100", p.DisplayID)
	assert.Equal(t, "Two Sum", p.Title)
	assert.Equal(t, 1000, p.TimeLimitMs)
	assert.Equal(t, 256, p.MemoryLimMb)
	assert.Equal(t, normalize.DifficultyLow, p.Difficulty)
	assert.Equal(t, []string{"dp", "math"}, p.Tags)
	assert.True(t, p.Visible)
	assert.Equal(t, "2024-05-01T10:00:00Z", p.CreateTime)
}

func TestAdaptProblemCamelCasePreferred(t *testing.T) {
	raw := decode(t, `{"timeLimitMs": 2000, "time_limit": 1000}`)
	p := entity.AdaptProblem(raw)
	assert.Equal(t, 2000, p.TimeLimitMs)
}

func TestAdaptProblemVisiblePrecedence(t *testing.T) {
	// first present wins, not first truthy
	p := entity.AdaptProblem(decode(t, `{"visible": false, "is_public": true}`))
	assert.False(t, p.Visible)

	p = entity.AdaptProblem(decode(t, `{"is_public": true}`))
	assert.True(t, p.Visible)

	p = entity.AdaptProblem(decode(t, `{}`))
	assert.False(t, p.Visible)

	// boolean-ish string encodings
	p = entity.AdaptProblem(decode(t, `{"visible": "1"}`))
	assert.True(t, p.Visible)
	p = entity.AdaptProblem(decode(t, `{"visible": "no"}`))
	assert.False(t, p.Visible)
}

func TestAdaptProblemDifficultyFallsBackToMid(t *testing.T) {
	for _, body := range []string{
		`{"difficulty": "low"}`,
		`{"difficulty": "HIGH"}`,
		`{"difficulty": "Medium"}`,
		`{"difficulty": ""}`,
		`{}`,
		`null`,
	} {
		p := entity.AdaptProblem(decode(t, body))
		assert.Equal(t, normalize.DifficultyMid, p.Difficulty, "body %s", body)
	}
}

func TestAdaptProblemTotal(t *testing.T) {
	for _, raw := range []any{nil, "garbage", 42.0, []any{1, 2}} {
		p := entity.AdaptProblem(raw)
		assert.Equal(t, 0, p.ID)
		assert.Equal(t, "", p.DisplayID)
		assert.Equal(t, normalize.DifficultyMid, p.Difficulty)
		assert.NotNil(t, p.Tags)
		assert.NotNil(t, p.Languages)
		assert.False(t, p.Visible)
	}
}

func TestAdaptProblemNumericStrings(t *testing.T) {
	p := entity.AdaptProblem(decode(t, `{"id": "17", "time_limit": "1000"}`))
	assert.Equal(t, 17, p.ID)
	assert.Equal(t, 1000, p.TimeLimitMs)
}

func TestAdaptProblemDetailDefaults(t *testing.T) {
	d := entity.AdaptProblemDetail(nil)
	assert.Equal(t, "standard", d.IOMode.IOMode)
	assert.Equal(t, "input.txt", d.IOMode.Input)
	assert.Equal(t, "output.txt", d.IOMode.Output)
	assert.Empty(t, d.Samples)
	assert.Empty(t, d.TestCaseScore)
	assert.NotNil(t, d.Template)
}

func TestAdaptProblemDetailFull(t *testing.T) {
	raw := decode(t, `{
		"id": 3,
		"samples": [{"input": "1 2", "output": "3"}, "not an object"],
		"test_case_id": "abc123",
		"test_case_score": [{"input_name": "1.in", "output_name": "1.out", "score": 50}],
		"template": {"cpp": "int main(){}", "broken": 7},
		"io_mode": {"io_mode": "file", "input": "data.in"},
		"spj": "1",
		"spj_language": "c"
	}`)

	d := entity.AdaptProblemDetail(raw)
	require.Len(t, d.Samples, 1)
	assert.Equal(t, "1 2", d.Samples[0].Input)
	assert.Equal(t, "abc123", d.TestCaseID)
	require.Len(t, d.TestCaseScore, 1)
	assert.Equal(t, 50, d.TestCaseScore[0].Score)
	assert.Equal(t, map[string]string{"cpp": "int main(){}"}, d.Template)
	assert.Equal(t, "file", d.IOMode.IOMode)
	assert.Equal(t, "data.in", d.IOMode.Input)
	assert.Equal(t, "output.txt", d.IOMode.Output, "missing io_mode members keep defaults")
	assert.True(t, d.SPJ)
	assert.Equal(t, "c", d.SPJLanguage)
}

func TestAdaptContest(t *testing.T) {
	raw := decode(t, `{
		"id": 8,
		"title": "Weekly Round",
		"rule_type": "OI",
		"real_time_rank": "1",
		"allowed_ip_ranges": ["10.0.0.0/8"],
		"password": "",
		"created_by": {"id": 1, "username": "admin", "real_name": "Admin"}
	}`)

	c := entity.AdaptContest(raw)
	assert.Equal(t, entity.RuleTypeOI, c.RuleType)
	assert.True(t, c.RealTimeRank)
	assert.Equal(t, []string{"10.0.0.0/8"}, c.AllowedIPRanges)
	require.NotNil(t, c.Password)
	assert.Equal(t, "", *c.Password, "empty password is still a password")
	require.NotNil(t, c.CreatedBy)
	assert.Equal(t, "admin", c.CreatedBy.Username)
}

func TestAdaptContestDefaults(t *testing.T) {
	c := entity.AdaptContest(decode(t, `{"rule_type": "ioi"}`))
	assert.Equal(t, entity.RuleTypeACM, c.RuleType, "unknown rule type becomes ACM")
	assert.Nil(t, c.Password)
	assert.Nil(t, c.CreatedBy)
	assert.Empty(t, c.AllowedIPRanges)
}

func TestAdaptWorkbookProblem(t *testing.T) {
	raw := decode(t, `{
		"id": 100,
		"order": 2,
		"added_time": "2024-01-01",
		"problem": {"id": 7, "_id": "A", "title": "Hello"}
	}`)

	wp := entity.AdaptWorkbookProblem(raw)
	assert.Equal(t, 100, wp.ID)
	assert.Equal(t, 2, wp.Order)
	assert.Equal(t, 7, wp.ProblemID, "problem id backfilled from nested problem")
	assert.Equal(t, "A", wp.Problem.DisplayID)
}

func TestProblemKeyMethod(t *testing.T) {
	assert.Equal(t, "p100", entity.Problem{ID: 3, DisplayID: " P100 "}.Key())
	assert.Equal(t, "42", entity.Problem{ID: 42}.Key())
	assert.Equal(t, "", entity.Problem{}.Key())
}
