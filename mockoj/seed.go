package mockoj

import "fmt"

// seed loads the fixture data the console is developed against. The
// casing mess is intentional: real deployments mix snake_case and
// camelCase exactly like this.
func (s *Server) seed() {
	difficulties := []string{"Low", "Mid", "High", "Medium"}
	for i := 1; i <= 25; i++ {
		s.problems = append(s.problems, map[string]any{
			"id":           i,
			"_id":          fmt.Sprintf("P%03d", i),
			"title":        fmt.Sprintf("Problem %d", i),
			"description":  "<p>statement</p>",
			"difficulty":   difficulties[i%len(difficulties)],
			"time_limit":   1000,
			"memory_limit": 256,
			"tags":         []any{"seed"},
			"languages":    []any{"C++", "Go"},
			"is_public":    i%2 == 0,
			"create_time":  "2024-01-01T00:00:00Z",
		})
	}

	s.contests = append(s.contests, map[string]any{
		"id":             1,
		"title":          "Seed Round",
		"rule_type":      "ACM",
		"start_time":     "2024-06-01T10:00:00Z",
		"end_time":       "2024-06-01T15:00:00Z",
		"real_time_rank": 1,
		"visible":        true,
		"created_by": map[string]any{
			"id": 1, "username": "admin", "real_name": "Admin",
		},
	})

	s.workbooks = append(s.workbooks, map[string]any{
		"id":      1,
		"title":   "Beginner Set",
		"visible": "1",
		"orgId":   1,
	})
	s.workbookProblems[1] = []map[string]any{
		{
			"id": 11, "problemId": 1, "order": 0,
			"problem": map[string]any{"id": 1, "_id": "P001", "title": "Problem 1"},
		},
		{
			"id": 12, "problemId": 3, "order": 5, // sparse on purpose
			"problem": map[string]any{"id": 3, "_id": "P003", "title": "Problem 3"},
		},
	}
}
