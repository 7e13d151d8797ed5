package api

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pardivkamishetty/outliner/internal/persona"
)

// handleRank harvests sections from the uploaded PDFs and ranks them
// by relevance to the persona and task given in the form fields.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	role := r.FormValue("persona")
	task := r.FormValue("job_to_be_done")
	if role == "" || task == "" {
		jsonError(w, "persona and job_to_be_done are required", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var documents []string
	var allSections []persona.Section
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
			jsonError(w, "ranking only accepts pdf files: "+filename, http.StatusBadRequest)
			return
		}
		documents = append(documents, filename)

		sections, err := s.collectUploadSections(fh, filename)
		if err != nil {
			s.log.Warn("section harvest failed", "filename", filename, "error", err)
			continue
		}
		allSections = append(allSections, sections...)
	}

	ranked := persona.Rank(allSections, role, task)
	result := persona.BuildResult(ranked, documents, role, task, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// collectUploadSections spools one uploaded PDF to a temp file so the
// reader can seek, then harvests candidate sections from it.
func (s *Server) collectUploadSections(fh *multipart.FileHeader, filename string) ([]persona.Section, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tmp, err := os.CreateTemp("", "rank-*.pdf")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, io.LimitReader(f, s.cfg.MaxUploadBytes+1)); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	sections, err := persona.CollectSections(tmpName)
	if err != nil {
		return nil, err
	}
	// Report the upload's name, not the temp file's.
	for i := range sections {
		sections[i].Document = filename
	}
	return sections, nil
}
