package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/salarywatch/backend/internal/common"
	"github.com/salarywatch/backend/internal/submissions"
)

// Handler returns the mux exposing the REST API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/submissions", s.handleSubmissions)
	mux.HandleFunc("/api/admin/login", s.handleAdminLogin)
	mux.HandleFunc("/api/admin/submissions", s.requireToken(s.handleAdminSubmissions))
	mux.HandleFunc("/api/admin/submissions/", s.requireToken(s.handleAdminSubmissionByID))
	mux.HandleFunc("/api/health", s.handleHealth)
	return s.cors.Handler(mux)
}

func (s *Server) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listSubmissions(w, r)

	case http.MethodPost:
		var payload submissions.Payload
		if err := decodeJSON(r.Body, &payload); err != nil {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		created, err := s.submissions.Create(r.Context(), &payload)
		if err != nil {
			if errors.Is(err, common.ErrorValidation) {
				writeError(w, http.StatusBadRequest, "Missing required fields")
				return
			}
			s.logger.Error(r.Context(), "creating submission", "error", err)
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "Salary submission created successfully",
			"id":      created.ID,
		})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// listSubmissions serves both the public and the admin listing; the data is
// identical, only the auth requirement differs.
func (s *Server) listSubmissions(w http.ResponseWriter, r *http.Request) {
	result, err := s.submissions.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing submissions", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	token, err := s.admins.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "admin login", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":   token,
		"message": "Login successful",
	})
}

func (s *Server) handleAdminSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.listSubmissions(w, r)
}

func (s *Server) handleAdminSubmissionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/admin/submissions"), "/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := s.submissions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Submission not found")
			return
		}
		s.logger.Error(r.Context(), "deleting submission", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Submission deleted successfully",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
