package mockoj

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/wailsapp/mimetype"

	"github.com/programme-lv/console/httpjson"
)

// listOrGetProblems mirrors the real backend's habit of multiplexing the
// table and the detail view on one route: a problem_id query switches to
// the single-problem response.
func (s *Server) listOrGetProblems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if displayID := r.URL.Query().Get("problem_id"); displayID != "" {
		for _, p := range s.problems {
			if p["_id"] == displayID {
				httpjson.WriteLegacySuccessJson(w, p)
				return
			}
		}
		httpjson.WriteLegacyErrorJson(w, "problem-not-found",
			"no problem with display id "+displayID)
		return
	}

	keyword := strings.ToLower(r.URL.Query().Get("keyword"))
	matched := []any{}
	for _, p := range s.problems {
		if keyword == "" ||
			strings.Contains(strings.ToLower(asString(p["title"])), keyword) ||
			strings.Contains(strings.ToLower(asString(p["_id"])), keyword) {
			matched = append(matched, p)
		}
	}

	// offset-paginated {results,total}; the bare-array habit lives on
	// the workbook side
	offset := atoiOr(r.URL.Query().Get("offset"), 0)
	limit := atoiOr(r.URL.Query().Get("limit"), len(matched))
	page := matched
	if offset < len(matched) {
		end := offset + limit
		if limit <= 0 || end > len(matched) {
			end = len(matched)
		}
		page = matched[offset:end]
	} else {
		page = []any{}
	}

	httpjson.WriteLegacySuccessJson(w, map[string]any{
		"results": page,
		"total":   len(matched),
	})
}

func (s *Server) createProblem(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "body is not json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	displayID := asString(body["_id"])
	if displayID == "" {
		httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "display id is required")
		return
	}
	for _, p := range s.problems {
		if strings.EqualFold(asString(p["_id"]), displayID) {
			httpjson.WriteLegacyErrorJson(w, "duplicate-display-id",
				"display id "+displayID+" already exists")
			return
		}
	}

	body["id"] = s.allocID()
	body["create_time"] = "2024-01-02T00:00:00Z"
	s.problems = append(s.problems, body)
	httpjson.WriteLegacySuccessJson(w, body)
}

func (s *Server) updateProblem(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "body is not json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := intOr(body["id"], 0)
	for i, p := range s.problems {
		if intOr(p["id"], -1) == id {
			body["id"] = id
			s.problems[i] = body
			httpjson.WriteLegacySuccessJson(w, body)
			return
		}
	}
	httpjson.WriteLegacyErrorJson(w, "problem-not-found", "")
}

func (s *Server) deleteProblem(w http.ResponseWriter, r *http.Request) {
	id := atoiOr(r.URL.Query().Get("id"), -1)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.problems {
		if intOr(p["id"], -1) == id {
			s.problems = append(s.problems[:i], s.problems[i+1:]...)
			httpjson.WriteLegacySuccessJson(w, nil)
			return
		}
	}
	httpjson.WriteLegacyErrorJson(w, "problem-not-found", "")
}

// uploadTestCase accepts a zstd-compressed zip and answers with the
// test case id and score rows the way the real backend does.
func (s *Server) uploadTestCase(w http.ResponseWriter, r *http.Request) {
	body := io.Reader(r.Body)
	if r.Header.Get("Content-Encoding") == "zstd" {
		dec, err := zstd.NewReader(r.Body)
		if err != nil {
			httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "bad zstd stream")
			return
		}
		defer dec.Close()
		body = dec
	}

	raw, err := io.ReadAll(io.LimitReader(body, 64<<20))
	if err != nil {
		httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "unreadable body")
		return
	}
	if !mimetype.Detect(raw).Is("application/zip") {
		httpjson.WriteLegacyErrorJson(w, "invalid-parameter", "archive is not a zip")
		return
	}

	httpjson.WriteLegacySuccessJson(w, map[string]any{
		"test_case_id": "tc-" + strconv.Itoa(len(raw)),
		"test_case_score": []any{
			map[string]any{"input_name": "1.in", "output_name": "1.out", "score": 100},
		},
	})
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func intOr(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return fallback
	}
}
