package transport

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"puzshelf/internal/app"
)

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	rows, err := s.Service.ListPuzzles(r.Context(), limit, offset)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	summaries := make([]puzzleSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, puzzleSummary{
			ID:         row.ID,
			Filename:   row.Filename,
			Title:      row.Title,
			Author:     row.Author,
			Version:    row.Version,
			Width:      row.Width,
			Height:     row.Height,
			ClueCount:  row.ClueCount,
			PuzzleType: row.PuzzleType,
			CreatedAt:  row.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleImportPuzzle(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty upload")
		return
	}

	p, created, err := s.Service.ImportPuzzle(r.Context(), filename, data)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/puzzles/"+p.ID)
	}
	writeJSON(w, status, importResponse{
		ID:       p.ID,
		Title:    p.Title,
		Digest:   p.Digest,
		Created:  created,
		Filename: p.Filename,
	})
}

// readUpload accepts a multipart form with a "file" field or the raw file
// as the request body, named by the filename query parameter.
func readUpload(r *http.Request) (string, []byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		return header.Filename, data, err
	}

	data, err := io.ReadAll(r.Body)
	return r.URL.Query().Get("filename"), data, err
}

func (s *Server) handleViewPuzzle(w http.ResponseWriter, r *http.Request) {
	d, err := s.Service.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleClues(w http.ResponseWriter, r *http.Request) {
	clues, err := s.Service.GetClues(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clues)
}

func (s *Server) handleCellClues(w http.ResponseWriter, r *http.Request) {
	row, rowErr := strconv.Atoi(chi.URLParam(r, "row"))
	col, colErr := strconv.Atoi(chi.URLParam(r, "col"))
	if rowErr != nil || colErr != nil {
		writeError(w, http.StatusBadRequest, "row and col must be integers")
		return
	}

	clues, err := s.Service.CluesAt(r.Context(), chi.URLParam(r, "id"), row, col)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clues)
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	p, err := s.Service.GetPuzzle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	name := p.Filename
	if name == "" {
		name = p.ID + ".puz"
	}
	w.Header().Set("Content-Type", "application/x-crossword")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(p.Raw)))
	_, _ = w.Write(p.Raw)
}

func (s *Server) handleDeletePuzzle(w http.ResponseWriter, r *http.Request) {
	if err := s.Service.DeletePuzzle(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serviceError maps service errors to status codes. Decode diagnostics are
// only shown outside production.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, "puzzle not found")
	case errors.Is(err, app.ErrCellOutOfBounds):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrUnsupportedFormat):
		writeError(w, http.StatusUnsupportedMediaType, "only .puz files are supported")
	case errors.Is(err, app.ErrInvalidPuzzle):
		if s.IsProd {
			writeError(w, http.StatusUnprocessableEntity, "puzzle could not be decoded")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
