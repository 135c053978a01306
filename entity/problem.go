// Package entity defines the canonical client-side projections of the
// objects both backends serve, together with the adapters that build them
// out of raw decoded JSON. The two backends disagree on key casing
// (time_limit vs timeLimitMs), on boolean encoding and on which fields
// they include, so nothing downstream of an adapter ever touches a raw
// payload directly.
//
// Adapters are total: any input, including nil or a non-object, yields a
// fully defaulted entity. They never return an error and never panic.
package entity

import (
	"github.com/programme-lv/console/normalize"
)

type Problem struct {
	ID          int
	DisplayID   string
	Title       string
	Description string
	Difficulty  normalize.Difficulty
	TimeLimitMs int
	MemoryLimMb int
	Tags        []string
	Languages   []string
	Visible     bool
	CreateTime  string
}

// Key returns the identity key for selection and duplicate checks.
func (p Problem) Key() string {
	return normalize.ProblemKey(p.DisplayID, p.ID)
}

// visibleFieldOrder is the scan order for the visibility flag. The first
// field present wins even when its value is false; a later truthy alias
// must not override it. Absence of all five means hidden.
var visibleFieldOrder = []string{"visible", "is_public", "isPublic", "public", "Visible"}

func adaptVisible(obj map[string]any) bool {
	v, ok := normalize.FirstPresent(obj, visibleFieldOrder...)
	if !ok {
		return false
	}
	return normalize.ParseBool(v)
}

// AdaptProblem builds a canonical Problem from a raw decoded JSON value.
func AdaptProblem(raw any) Problem {
	p := Problem{
		Difficulty: normalize.DifficultyMid,
		Tags:       []string{},
		Languages:  []string{},
	}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return p
	}

	p.ID = intField(obj, 0, "id", "ID")
	p.DisplayID = strField(obj, "", "displayId", "display_id", "_id")
	p.Title = strField(obj, "", "title", "Title")
	p.Description = strField(obj, "", "description", "Description")
	p.TimeLimitMs = intField(obj, 0, "timeLimitMs", "time_limit_ms", "time_limit", "timeLimit")
	p.MemoryLimMb = intField(obj, 0, "memoryLimitMb", "memory_limit_mb", "memory_limit", "memoryLimit")
	p.CreateTime = strField(obj, "", "createTime", "create_time", "created_at")

	if v, ok := normalize.FirstPresent(obj, "difficulty", "Difficulty"); ok {
		p.Difficulty = normalize.ParseDifficulty(v)
	}
	if v, ok := normalize.FirstPresent(obj, "tags", "Tags"); ok {
		p.Tags = normalize.StrSlice(v)
	}
	if v, ok := normalize.FirstPresent(obj, "languages", "Languages"); ok {
		p.Languages = normalize.StrSlice(v)
	}
	p.Visible = adaptVisible(obj)

	return p
}

// AdaptProblems maps a raw decoded JSON array; non-array input yields an
// empty slice.
func AdaptProblems(raw any) []Problem {
	arr, _ := normalize.AsArray(raw)
	res := make([]Problem, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptProblem(item))
	}
	return res
}

// intField resolves the first present key and coerces it, in that order:
// presence is decided before coercion so an explicit 0 is kept.
func intField(obj map[string]any, fallback int, keys ...string) int {
	v, ok := normalize.FirstPresent(obj, keys...)
	if !ok {
		return fallback
	}
	return normalize.IntOr(v, fallback)
}

func strField(obj map[string]any, fallback string, keys ...string) string {
	v, ok := normalize.FirstPresent(obj, keys...)
	if !ok {
		return fallback
	}
	return normalize.StrOr(v, fallback)
}

func boolField(obj map[string]any, fallback bool, keys ...string) bool {
	v, ok := normalize.FirstPresent(obj, keys...)
	if !ok {
		return fallback
	}
	return normalize.ParseBool(v)
}
