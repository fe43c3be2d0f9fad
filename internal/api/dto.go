package api

import "github.com/starford/seqren/internal/models"

// RenameRequest is the request body for plan and rename.
type RenameRequest struct {
	Path   string `json:"path" example:"photos/trip"`
	Verify bool   `json:"verify,omitempty"`
}

// FileListResponse lists the files a batch would rename, in order.
type FileListResponse struct {
	Files []string `json:"files" validate:"required"`
	Total int      `json:"total" example:"3" validate:"required"`
}

// ErrorResponse is returned for every failed request. Result is present
// when a batch halted after renaming some files.
type ErrorResponse struct {
	Error  string         `json:"error" validate:"required"`
	Kind   string         `json:"kind,omitempty" example:"directory_not_found"`
	Result *models.Result `json:"result,omitempty"`
}
