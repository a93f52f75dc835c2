package server

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/AdamPostMontjoie/resumefy/internal/rendering"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// handleGenerate runs the full tailoring pipeline: load the profile, tailor
// it against the job description, render a PDF, and return its URL.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.authorizeSubject(w, r, req.UserID) {
		return
	}

	ctx := r.Context()

	description := req.JobDescription
	if description == "" && req.JobURL != "" {
		text, err := s.ingest(ctx, req.JobURL)
		if err != nil {
			log.Printf("Error ingesting job posting %s: %v", req.JobURL, err)
			s.errorResponse(w, http.StatusBadRequest, "Failed to fetch job posting from URL")
			return
		}
		description = text
	}

	user, err := s.store.GetUser(ctx, req.UserID)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusNotFound {
			s.errorResponse(w, status, "User not found")
			return
		}
		log.Printf("Error fetching user %s: %v", req.UserID, err)
		s.errorResponse(w, status, "Failed to fetch user")
		return
	}

	job := types.JobTarget{
		Description:      description,
		Responsibilities: req.JobResponsibilities,
	}

	content, err := s.generator.Generate(ctx, user.Profile, job)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusBadRequest {
			s.errorResponse(w, status, err.Error())
			return
		}
		log.Printf("Error generating resume for %s: %v", req.UserID, err)
		s.errorResponse(w, status, "Failed to generate resume")
		return
	}

	pdf, err := s.renderer.Render(ctx, user.Profile.Personal, content)
	if err != nil {
		log.Printf("Error rendering PDF for %s: %v", req.UserID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	name := rendering.OutputName()
	if err := os.WriteFile(filepath.Join(s.filesDir, name), pdf, 0o644); err != nil {
		log.Printf("Error writing PDF %s: %v", name, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store PDF")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"pdfUrl":    s.baseURL + "/files/" + name,
		"rawResume": content,
	})
}
