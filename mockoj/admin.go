package mockoj

import (
	"encoding/json"
	"net/http"

	"github.com/programme-lv/console/httpjson"
)

func (s *Server) listOrGetContests(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idStr := r.URL.Query().Get("id"); idStr != "" {
		id := atoiOr(idStr, -1)
		for _, c := range s.contests {
			if intOr(c["id"], -1) == id {
				httpjson.WriteLegacySuccessJson(w, c)
				return
			}
		}
		httpjson.WriteLegacyErrorJson(w, "contest-not-found", "")
		return
	}

	rows := make([]any, 0, len(s.contests))
	for _, c := range s.contests {
		rows = append(rows, c)
	}
	httpjson.WriteLegacySuccessJson(w, map[string]any{
		"results": rows,
		"total":   len(rows),
	})
}

func (s *Server) createContest(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "body is not json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	body["id"] = s.allocID()
	s.contests = append(s.contests, body)
	httpjson.WriteLegacySuccessJson(w, body)
}

func (s *Server) updateContest(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "body is not json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := intOr(body["id"], 0)
	for i, c := range s.contests {
		if intOr(c["id"], -1) == id {
			s.contests[i] = body
			httpjson.WriteLegacySuccessJson(w, body)
			return
		}
	}
	httpjson.WriteLegacyErrorJson(w, "contest-not-found", "")
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteLegacySuccessJson(w, map[string]any{
		"results": []any{
			map[string]any{"id": 1, "username": "admin", "admin_type": "Super Admin"},
			map[string]any{"id": 2, "username": "alice", "is_disabled": "0"},
		},
		"total": 2,
	})
}

// listJudgeServers answers a bare array: this endpoint never learned to
// paginate.
func (s *Server) listJudgeServers(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteLegacySuccessJson(w, []any{
		map[string]any{
			"id": 1, "hostname": "judge-1", "cpu_core": 8,
			"cpu_usage": 12.5, "memory_usage": 40.0,
			"task_number": 0, "status": "normal",
			"last_heartbeat": "2024-06-01T10:00:00Z",
		},
		map[string]any{
			"id": 2, "hostname": "judge-2", "cpu_core": 8,
			"is_disabled": "1", "status": "abnormal",
		},
	})
}

func (s *Server) listSubmissions(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteLegacySuccessJson(w, map[string]any{
		"results": []any{
			map[string]any{
				"id": "sub-1", "problem": "P001", "username": "alice",
				"language": "Go", "result": 0,
				"create_time": "2024-06-01T10:05:00Z",
			},
		},
		"total": 1,
	})
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteLegacySuccessJson(w, map[string]any{
		"user": map[string]any{
			"id": 2, "username": "alice", "email": "alice@example.com",
		},
		"school":            "Riga 1",
		"accepted_number":   12,
		"submission_number": 40,
	})
}
