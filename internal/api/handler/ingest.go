package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/postwise-api/internal/usecases/ingesting"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
)

const uploadField = "file"

// Ingest recebe o CSV via multipart no campo "file"
func Ingest(service ingesting.Ingester, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.ForContext(r.Context()).WithField("limit", maxUploadBytes).Warn("ingest: upload acima do limite")
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, ingesting.ErrFileTooLarge.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No file provided", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No file provided", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("ingest: erro ao ler arquivo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, internalErrorMessage, nil)
			return
		}

		resp, err := service.Ingest(r.Context(), header.Filename, data)
		if err != nil {
			writeServiceError(w, r, "ingest", err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
