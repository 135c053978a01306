package mockoj

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/programme-lv/console/httpjson"
	"github.com/programme-lv/console/session"
)

// listWorkbooks rotates through the three list shapes the real
// microservice emits depending on which deployment answered: bare array,
// {items,total}, {data:[...]}. The console has to cope with all of them.
func (s *Server) listWorkbooks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]any, 0, len(s.workbooks))
	for _, wb := range s.workbooks {
		rows = append(rows, wb)
	}

	s.workbookListCalls++
	switch s.workbookListCalls % 3 {
	case 1:
		httpjson.WriteSuccessJson(w, rows)
	case 2:
		httpjson.WriteSuccessJson(w, map[string]any{"items": rows, "total": len(rows)})
	default:
		httpjson.WriteSuccessJson(w, map[string]any{"data": rows})
	}
}

func (s *Server) getWorkbook(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := atoiOr(chi.URLParam(r, "id"), -1)
	for _, wb := range s.workbooks {
		if intOr(wb["id"], -1) == id {
			httpjson.WriteSuccessJson(w, wb)
			return
		}
	}
	httpjson.WriteErrorJson(w, "workbook not found", http.StatusNotFound, "not_found")
}

func (s *Server) createWorkbook(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteErrorJson(w, "body is not json", http.StatusBadRequest, "invalid_parameter")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	body["id"] = s.allocID()
	s.workbooks = append(s.workbooks, body)
	s.workbookProblems[intOr(body["id"], 0)] = []map[string]any{}
	httpjson.WriteSuccessJson(w, body)
}

func (s *Server) updateWorkbook(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteErrorJson(w, "body is not json", http.StatusBadRequest, "invalid_parameter")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := atoiOr(chi.URLParam(r, "id"), -1)
	for i, wb := range s.workbooks {
		if intOr(wb["id"], -1) == id {
			body["id"] = id
			s.workbooks[i] = body
			httpjson.WriteSuccessJson(w, body)
			return
		}
	}
	httpjson.WriteErrorJson(w, "workbook not found", http.StatusNotFound, "not_found")
}

func (s *Server) deleteWorkbook(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := atoiOr(chi.URLParam(r, "id"), -1)
	for i, wb := range s.workbooks {
		if intOr(wb["id"], -1) == id {
			s.workbooks = append(s.workbooks[:i], s.workbooks[i+1:]...)
			delete(s.workbookProblems, id)
			httpjson.WriteSuccessJson(w, nil)
			return
		}
	}
	httpjson.WriteErrorJson(w, "workbook not found", http.StatusNotFound, "not_found")
}

func (s *Server) listWorkbookProblems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := atoiOr(chi.URLParam(r, "id"), -1)
	rows := make([]any, 0, len(s.workbookProblems[id]))
	for _, row := range s.workbookProblems[id] {
		rows = append(rows, row)
	}
	// bare array, order values possibly sparse; renumbering is the
	// console's job
	httpjson.WriteSuccessJson(w, rows)
}

func (s *Server) addWorkbookProblem(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteErrorJson(w, "body is not json", http.StatusBadRequest, "invalid_parameter")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workbookID := atoiOr(chi.URLParam(r, "id"), -1)
	problemID := intOr(body["problemId"], 0)
	for _, row := range s.workbookProblems[workbookID] {
		if intOr(row["problemId"], -1) == problemID {
			httpjson.WriteErrorJson(w, "problem already in workbook",
				http.StatusConflict, "duplicate_problem")
			return
		}
	}

	row := map[string]any{
		"id":        s.allocID(),
		"problemId": problemID,
		"order":     len(s.workbookProblems[workbookID]),
	}
	for _, p := range s.problems {
		if intOr(p["id"], -1) == problemID {
			row["problem"] = p
			break
		}
	}
	s.workbookProblems[workbookID] = append(s.workbookProblems[workbookID], row)
	httpjson.WriteSuccessJson(w, row)
}

func (s *Server) removeWorkbookProblem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workbookID := atoiOr(chi.URLParam(r, "id"), -1)
	rowID := atoiOr(chi.URLParam(r, "rowId"), -1)
	rows := s.workbookProblems[workbookID]
	for i, row := range rows {
		if intOr(row["id"], -1) == rowID {
			s.workbookProblems[workbookID] = append(rows[:i], rows[i+1:]...)
			httpjson.WriteSuccessJson(w, nil)
			return
		}
	}
	httpjson.WriteErrorJson(w, "row not found", http.StatusNotFound, "not_found")
}

func (s *Server) listOrganizations(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, map[string]any{
		"items": []any{
			map[string]any{"id": 1, "name": "Riga 1", "member_count": 30},
			map[string]any{"id": 2, "name": "LU", "memberCount": 120},
		},
		"total": 2,
	})
}

func (s *Server) joinOrganization(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, nil)
}

func (s *Server) getUserProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	httpjson.WriteSuccessJson(w, map[string]any{
		"user":   map[string]any{"id": 2, "username": username},
		"school": "Riga 1",
		"mood":   "practising",
	})
}

func (s *Server) updateUserProfile(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteErrorJson(w, "body is not json", http.StatusBadRequest, "invalid_parameter")
		return
	}
	username := chi.URLParam(r, "username")
	body["user"] = map[string]any{"id": 2, "username": username}
	httpjson.WriteSuccessJson(w, body)
}

func (s *Server) monitorStatus(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, map[string]any{
		"data": []any{
			map[string]any{"id": 1, "hostname": "judge-1", "cpuUsage": 20.0},
		},
	})
}

func (s *Server) authLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" {
		httpjson.WriteErrorJson(w, "username and password are required",
			http.StatusBadRequest, "invalid_parameter")
		return
	}
	if body.Password == "wrong" {
		httpjson.WriteErrorJson(w, "invalid credentials",
			http.StatusUnauthorized, "invalid_credentials")
		return
	}

	adminType := ""
	if body.Username == "admin" {
		adminType = "Super Admin"
	}
	token, err := session.MintToken(body.Username, body.Username+"@example.com", adminType, s.jwtKey)
	if err != nil {
		httpjson.WriteErrorJson(w, "failed to mint token",
			http.StatusInternalServerError, "internal_server_error")
		return
	}
	httpjson.WriteSuccessJson(w, map[string]any{"token": token})
}

func (s *Server) authRefresh(w http.ResponseWriter, r *http.Request) {
	token, err := session.MintToken("admin", "admin@example.com", "Super Admin", s.jwtKey)
	if err != nil {
		httpjson.WriteErrorJson(w, "failed to mint token",
			http.StatusInternalServerError, "internal_server_error")
		return
	}
	httpjson.WriteSuccessJson(w, map[string]any{"token": token})
}
