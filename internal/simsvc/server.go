// Package simsvc serves the SehatAI wire contract locally, backed by the
// deterministic offline engines. It exists so the client (or its demos) can
// run end-to-end without a real deployment; nothing here is production
// behavior.
package simsvc

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatdto "sehat/internal/modules/chat/dto"
	chatin "sehat/internal/modules/chat/port/in"
	diagdto "sehat/internal/modules/diagnosis/dto"
	diagin "sehat/internal/modules/diagnosis/port/in"
	"sehat/internal/platform/id"
)

type Server struct {
	diagnosis diagin.Usecase
	chat      chatin.Usecase
	idGen     id.Generator
	log       *slog.Logger
}

func NewServer(diagnosis diagin.Usecase, chat chatin.Usecase, idGen id.Generator, log *slog.Logger) *Server {
	return &Server{diagnosis: diagnosis, chat: chat, idGen: idGen, log: log}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleHealth)
	r.Post("/auth/login", s.handleLogin)
	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/llm/query", s.handleQuery)
	return r
}

// ListenAndServe blocks until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("simulated service listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "online", "system": "SehatAI Sim"})
}

type loginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Role == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}
	name := req.Email
	if at := strings.IndexByte(name, '@'); at > 0 {
		name = name[:at]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": "sim-" + s.idGen.New(),
		"user": map[string]any{
			"id":    "U-" + s.idGen.New(),
			"name":  name,
			"email": req.Email,
			"role":  req.Role,
		},
	})
}

type analyzeRequest struct {
	PatientID      string   `json:"patient_id"`
	Symptoms       []string `json:"symptoms"`
	DurationDays   int      `json:"duration_days"`
	Severity       int      `json:"severity"`
	MedicalHistory []string `json:"medical_history"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	out, err := s.diagnosis.Analyze(r.Context(), diagdto.AnalyzeInput{
		PatientID:      req.PatientID,
		Symptoms:       req.Symptoms,
		DurationDays:   req.DurationDays,
		Severity:       req.Severity,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		s.log.Warn("analyze failed", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"analysis_id":                out.AnalysisID,
		"timestamp":                  out.Timestamp.Format(time.RFC3339),
		"risk_level":                 out.RiskLevel,
		"confidence_score":           out.ConfidenceScore,
		"clinical_summary":           out.ClinicalSummary,
		"actionable_recommendations": out.Recommendations,
		"rag_sources":                out.Sources,
		"processing_time_ms":         out.ProcessingTimeMS,
	})
}

type queryRequest struct {
	Query     string `json:"query"`
	Mode      string `json:"mode"`
	ContextID string `json:"context_id"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	out, err := s.chat.Query(r.Context(), chatdto.QueryInput{
		Text:      req.Query,
		Mode:      req.Mode,
		ContextID: req.ContextID,
	})
	if err != nil {
		s.log.Warn("llm query failed", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        out.ID,
		"role":      out.Role,
		"content":   out.Content,
		"thoughts":  out.Thoughts,
		"sources":   out.Sources,
		"timestamp": out.Timestamp.Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
