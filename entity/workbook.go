package entity

import (
	"github.com/programme-lv/console/normalize"
)

// Workbook is a curated, ordered problem set.
type Workbook struct {
	ID           int
	Title        string
	Description  string
	Visible      bool
	OrgID        int
	ProblemCount int
	CreateTime   string
}

// WorkbookProblem is the join row between a workbook and a problem.
// Order defines the display and solve order inside the workbook and is
// kept contiguous by reconcile.Renumber after every add or remove.
type WorkbookProblem struct {
	ID        int
	ProblemID int
	Problem   Problem
	Order     int
	AddedTime string
}

func AdaptWorkbook(raw any) Workbook {
	w := Workbook{}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return w
	}
	w.ID = intField(obj, 0, "id", "ID")
	w.Title = strField(obj, "", "title", "name", "Title")
	w.Description = strField(obj, "", "description", "Description")
	w.Visible = adaptVisible(obj)
	w.OrgID = intField(obj, 0, "orgId", "org_id", "organizationId", "organization_id")
	w.ProblemCount = intField(obj, 0, "problemCount", "problem_count")
	w.CreateTime = strField(obj, "", "createTime", "create_time", "createdAt", "created_at")
	return w
}

func AdaptWorkbooks(raw any) []Workbook {
	arr, _ := normalize.AsArray(raw)
	res := make([]Workbook, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptWorkbook(item))
	}
	return res
}

func AdaptWorkbookProblem(raw any) WorkbookProblem {
	wp := WorkbookProblem{}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return wp
	}
	wp.ID = intField(obj, 0, "id", "ID")
	wp.ProblemID = intField(obj, 0, "problemId", "problem_id")
	wp.Order = intField(obj, 0, "order", "Order", "sort_order")
	wp.AddedTime = strField(obj, "", "addedTime", "added_time", "createdAt", "created_at")
	if v, ok := normalize.FirstPresent(obj, "problem", "Problem"); ok {
		wp.Problem = AdaptProblem(v)
	}
	if wp.ProblemID == 0 {
		wp.ProblemID = wp.Problem.ID
	}
	return wp
}

func AdaptWorkbookProblems(raw any) []WorkbookProblem {
	arr, _ := normalize.AsArray(raw)
	res := make([]WorkbookProblem, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptWorkbookProblem(item))
	}
	return res
}
