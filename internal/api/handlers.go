package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/renameservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *renameservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *renameservice.Service) *Handler {
	return &Handler{svc: svc}
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindDirectoryNotFound:
		return http.StatusNotFound
	case apperr.KindForbiddenPath, apperr.KindInvalidName:
		return http.StatusBadRequest
	case apperr.KindVerificationFailed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err. res carries partial progress when a batch
// halted mid-way and may be nil.
func writeError(w http.ResponseWriter, op, path string, err error, res *models.Result) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		slog.Error(op+" failed", slog.String("path", path), slog.String("error", err.Error()))
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: string(kind), Result: res})
}

func decodePathRequest(w http.ResponseWriter, r *http.Request) (RenameRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return req, false
	}
	return req, true
}

// ListFiles handles GET /api/files.
//
//	@Summary		List the files a batch would rename, in order
//	@Tags			files
//	@Produce		json
//	@Param			path	query		string	false	"Directory relative to the serve root"
//	@Success		200		{object}	FileListResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	files, err := h.svc.List(r.Context(), path)
	if err != nil {
		writeError(w, "list files", path, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, FileListResponse{Files: files, Total: len(files)})
}

// Plan handles POST /api/plan.
//
//	@Summary		Preview a batch without touching the directory
//	@Tags			rename
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RenameRequest	true	"Directory to plan"
//	@Success		200		{object}	models.Result
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/plan [post]
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePathRequest(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Plan(r.Context(), req.Path)
	if err != nil {
		writeError(w, "plan", req.Path, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Rename handles POST /api/rename.
//
//	@Summary		Rename every regular file in a directory to "part N.ext"
//	@Tags			rename
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RenameRequest	true	"Directory to rename"
//	@Success		200		{object}	models.Result
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/rename [post]
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePathRequest(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Rename(r.Context(), req.Path, req.Verify)
	if err != nil {
		writeError(w, "rename", req.Path, err, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
