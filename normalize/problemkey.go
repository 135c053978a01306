package normalize

import (
	"strconv"
	"strings"
)

// ProblemKey derives the identity key used for "is this the same problem"
// comparisons across selection, duplicate detection and removal flows.
// The human-facing display id wins when present; display ids are compared
// case-insensitively, so "P100" and "p100" collide. A problem with neither
// a display id nor a positive numeric id keys to "" and must never be
// matched by key (only by numeric id).
//
// Every identity comparison goes through this function. Comparing id or
// display id ad hoc at a call site reintroduces the duplicate-selection
// bugs this exists to prevent.
func ProblemKey(displayID string, id int) string {
	trimmed := strings.TrimSpace(displayID)
	if trimmed != "" {
		return strings.ToLower(trimmed)
	}
	if id > 0 {
		return strconv.Itoa(id)
	}
	return ""
}
