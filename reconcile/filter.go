package reconcile

import (
	"github.com/programme-lv/console/entity"
)

// FilterSelected drops from searchResults every problem the selection
// already holds, so the picker never offers a duplicate. The filter is
// stable: survivors keep the order the backend returned them in. A
// problem with an empty identity key is only ever excluded by numeric id,
// never by key, so unnamed problems are not spuriously filtered against
// each other.
func FilterSelected(searchResults []entity.Problem, selected *Selection) []entity.Problem {
	res := make([]entity.Problem, 0, len(searchResults))
	for _, p := range searchResults {
		if selected.Contains(p) {
			continue
		}
		res = append(res, p)
	}
	return res
}

// Renumber re-derives contiguous order values from list position after an
// add or remove, so a workbook's order column never goes sparse. Input
// order is preserved; only the Order field changes.
func Renumber(ws []entity.WorkbookProblem) []entity.WorkbookProblem {
	res := make([]entity.WorkbookProblem, len(ws))
	copy(res, ws)
	for i := range res {
		res[i].Order = i
	}
	return res
}
