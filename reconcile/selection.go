// Package reconcile keeps the in-memory problem selection of a contest or
// workbook form consistent with freshly fetched search results. Problems
// have two independent identities, the backend-assigned numeric id and the
// human-chosen display id, and a duplicate on either one must be caught.
package reconcile

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/programme-lv/console/apierr"
	"github.com/programme-lv/console/entity"
)

// Selection is the set of problems picked so far while composing a
// contest or workbook. It lives for one form session and is not safe for
// concurrent use; the console drives it from a single update loop.
type Selection struct {
	items []entity.Problem
	ids   mapset.Set[int]
	keys  mapset.Set[string]
}

func NewSelection() *Selection {
	return &Selection{
		ids:  mapset.NewThreadUnsafeSet[int](),
		keys: mapset.NewThreadUnsafeSet[string](),
	}
}

// Contains reports whether p collides with the selection on either
// identity: numeric id, or non-empty case-insensitive display key.
func (s *Selection) Contains(p entity.Problem) bool {
	if p.ID != 0 && s.ids.Contains(p.ID) {
		return true
	}
	key := p.Key()
	return key != "" && s.keys.Contains(key)
}

// Add appends p to the selection. A collision on either identity is
// rejected with a selection_conflict error carrying a message fit for the
// form; the selection is left untouched. Duplicates are never merged or
// overwritten silently.
func (s *Selection) Add(p entity.Problem) error {
	if s.Contains(p) {
		name := p.DisplayID
		if name == "" {
			name = fmt.Sprintf("#%d", p.ID)
		}
		return apierr.ErrSelectionConflict(
			fmt.Sprintf("uzdevums %s jau ir pievienots", name))
	}
	s.items = append(s.items, p)
	if p.ID != 0 {
		s.ids.Add(p.ID)
	}
	if key := p.Key(); key != "" {
		s.keys.Add(key)
	}
	return nil
}

// Remove drops the problem matching p's identity, if present.
func (s *Selection) Remove(p entity.Problem) {
	for i, item := range s.items {
		if !sameProblem(item, p) {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		if item.ID != 0 {
			s.ids.Remove(item.ID)
		}
		if key := item.Key(); key != "" {
			s.keys.Remove(key)
		}
		return
	}
}

// Items returns the selected problems in insertion order.
func (s *Selection) Items() []entity.Problem {
	res := make([]entity.Problem, len(s.items))
	copy(res, s.items)
	return res
}

func (s *Selection) Len() int {
	return len(s.items)
}

func sameProblem(a, b entity.Problem) bool {
	if a.ID != 0 && b.ID != 0 {
		return a.ID == b.ID
	}
	ak, bk := a.Key(), b.Key()
	return ak != "" && ak == bk
}
