package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetd-dev/budgetd/internal/accounts"
	"github.com/budgetd-dev/budgetd/internal/importer"
	"github.com/budgetd-dev/budgetd/internal/ingest"
)

// Upload accepts one multipart statement file and runs the ingestion
// pipeline. The caller gets a single terminal outcome: a summary on
// success, one error classification otherwise. Never partial success.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	dst := filepath.Join(os.TempDir(), "budgetd-upload-"+uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.log.Error().Err(err).Msg("saving upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer os.Remove(dst)

	summary, err := h.ingest.Run(c.Request.Context(), dst, file.Filename)
	if err != nil {
		h.log.Error().Err(err).Str("file", file.Filename).Msg("ingestion failed")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "File uploaded successfully",
		"rowsWritten":     summary.RowsWritten,
		"rowsSkipped":     summary.RowsSkipped,
		"accountsCreated": summary.AccountsCreated,
	})
}

// statusFor maps ingestion errors onto the response contract: bad input
// is the client's fault, everything else is a server failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ingest.ErrNoFile),
		errors.Is(err, importer.ErrMalformedInput),
		errors.Is(err, importer.ErrUnknownFormat),
		errors.Is(err, importer.ErrUnparsableAmount),
		errors.Is(err, accounts.ErrInvalidAccount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
