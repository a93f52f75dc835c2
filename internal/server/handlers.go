package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AdamPostMontjoie/resumefy/internal/server/middleware"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// handleGetUser returns a user's email and profile document.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, err := s.store.GetUser(r.Context(), id)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusNotFound {
			s.errorResponse(w, status, "User not found")
			return
		}
		log.Printf("Error fetching user %s: %v", id, err)
		s.errorResponse(w, status, "Failed to fetch user")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"email":   user.Email,
		"profile": user.Profile,
	})
}

// handleRegister creates a user record with an empty profile. Registering
// an existing id resets the account to a fresh state.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.CreateProfile(r.Context(), req.ID, req.Email); err != nil {
		log.Printf("Error registering user %s: %v", req.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": req.ID})
}

// handleUpdateProfile replaces a user's profile document wholesale.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !s.authorizeSubject(w, r, id) {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	profile, err := s.store.UpdateProfile(r.Context(), id, body)
	if err != nil {
		status := HTTPStatus(err)
		switch status {
		case http.StatusNotFound:
			s.errorResponse(w, status, "User not found")
		case http.StatusBadRequest:
			s.errorResponse(w, status, err.Error())
		default:
			log.Printf("Error updating profile for %s: %v", id, err)
			s.errorResponse(w, status, "Failed to update profile")
		}
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"profile": profile})
}

// handleFiles serves a previously generated PDF from the files directory.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	// Reject anything that could escape the files directory.
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		s.errorResponse(w, http.StatusNotFound, "File not found")
		return
	}

	path := filepath.Join(s.filesDir, name)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		s.errorResponse(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

// authorizeSubject verifies that the authenticated token subject matches the
// target user id. Always true when auth is disabled.
func (s *Server) authorizeSubject(w http.ResponseWriter, r *http.Request, id string) bool {
	if s.jwtService == nil {
		return true
	}
	subject, err := middleware.GetUserID(r)
	if err != nil || subject != id {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
