// Package mockoj is a development stand-in for both backends. It serves
// the primary OJ REST API under /api and the microservice sub-paths at
// the root, and it deliberately reproduces their inconsistencies: legacy
// {error,data} envelopes with snake_case keys on one side, rotating list
// shapes on the other. The console is developed and tested against it.
package mockoj

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

type Server struct {
	router *chi.Mux

	mu sync.Mutex
	// wire-shaped rows, kept raw on purpose: the fixtures mimic what
	// the real backends emit, not the console's canonical entities
	problems         []map[string]any
	contests         []map[string]any
	workbooks        []map[string]any
	workbookProblems map[int][]map[string]any
	nextID           int
	// counts /workbook list calls to rotate response shapes
	workbookListCalls int

	jwtKey []byte
}

func NewServer(jwtKey []byte) *Server {
	router := chi.NewRouter()

	logger := httplog.NewLogger("mockoj", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	s := &Server{
		router:           router,
		workbookProblems: map[int][]map[string]any{},
		nextID:           1000,
		jwtKey:           jwtKey,
	}
	s.seed()
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

func (s *Server) routes() {
	r := s.router

	// primary OJ REST API, legacy envelope
	r.Route("/api", func(r chi.Router) {
		r.Get("/admin/problem", s.listOrGetProblems)
		r.Post("/admin/problem", s.createProblem)
		r.Put("/admin/problem", s.updateProblem)
		r.Delete("/admin/problem", s.deleteProblem)
		r.Post("/admin/test_case", s.uploadTestCase)
		r.Get("/admin/contest", s.listOrGetContests)
		r.Post("/admin/contest", s.createContest)
		r.Put("/admin/contest", s.updateContest)
		r.Get("/admin/user", s.listUsers)
		r.Get("/admin/judge_server", s.listJudgeServers)
		r.Get("/submission", s.listSubmissions)
		r.Get("/profile", s.getProfile)
	})

	// microservice API, modern envelope and rotating list shapes
	r.Get("/workbook", s.listWorkbooks)
	r.Post("/workbook", s.createWorkbook)
	r.Get("/workbook/{id}", s.getWorkbook)
	r.Put("/workbook/{id}", s.updateWorkbook)
	r.Delete("/workbook/{id}", s.deleteWorkbook)
	r.Get("/workbook/{id}/problem", s.listWorkbookProblems)
	r.Post("/workbook/{id}/problem", s.addWorkbookProblem)
	r.Delete("/workbook/{id}/problem/{rowId}", s.removeWorkbookProblem)
	r.Get("/organization", s.listOrganizations)
	r.Post("/organization/{id}/join", s.joinOrganization)
	r.Get("/user/{username}", s.getUserProfile)
	r.Put("/user/{username}", s.updateUserProfile)
	r.Get("/monitor", s.monitorStatus)
	r.Post("/auth/login", s.authLogin)
	r.Post("/auth/refresh", s.authRefresh)
}

func (s *Server) allocID() int {
	s.nextID++
	return s.nextID
}
