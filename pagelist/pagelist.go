// Package pagelist absorbs the pagination inconsistencies of the two
// backends at a single boundary. Endpoints variously answer with a bare
// array, {results,total}, {items,total} or {data:[...]}; some paginate
// server-side and some dump the whole collection. Every list-shaped
// response goes through Normalize before anything looks at it.
package pagelist

import (
	"github.com/programme-lv/console/normalize"
)

// List is the uniform list shape handed to tables and pickers.
type List struct {
	Results []any
	Total   int
	Offset  int
	Limit   int
}

// Normalize sniffs the payload shape, first match wins:
//
//  1. a bare array: the backend sent the whole collection, so when limit
//     is positive the page is sliced out client-side;
//  2. {results: [...]}: already paginated, total taken from the payload
//     or from the slice length, never re-sliced;
//  3. {items: [...]}: the microservice variant of 2;
//  4. {data: [...]}: same again;
//  5. anything else: empty list.
//
// Offset is always computed from page and limit, never read back from
// the payload. Page numbers start at 1; page < 1 is treated as 1.
func Normalize(raw any, page int, limit int) List {
	if page < 1 {
		page = 1
	}
	res := List{
		Results: []any{},
		Offset:  (page - 1) * limit,
		Limit:   limit,
	}

	if arr, ok := normalize.AsArray(raw); ok {
		res.Total = len(arr)
		res.Results = slicePage(arr, page, limit)
		return res
	}

	obj, ok := normalize.AsObject(raw)
	if !ok {
		return res
	}
	for _, key := range []string{"results", "items", "data"} {
		if arr, ok := normalize.AsArray(obj[key]); ok {
			res.Results = arr
			res.Total = normalize.IntOr(obj["total"], len(arr))
			return res
		}
	}
	return res
}

// Map adapts every element of a normalized list, preserving order.
func Map[T any](l List, adapt func(raw any) T) []T {
	out := make([]T, 0, len(l.Results))
	for _, item := range l.Results {
		out = append(out, adapt(item))
	}
	return out
}

func slicePage(arr []any, page int, limit int) []any {
	if limit <= 0 {
		return arr
	}
	start := (page - 1) * limit
	if start >= len(arr) {
		return []any{}
	}
	end := start + limit
	if end > len(arr) {
		end = len(arr)
	}
	return arr[start:end]
}
