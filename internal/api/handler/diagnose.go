package handler

import (
	"net/http"

	"github.com/vfg2006/postwise-api/internal/usecases/diagnosing"
)

// datasetIDParam é opcional; vazio seleciona o dataset mais recente
const datasetIDParam = "datasetId"

func Diagnose(service diagnosing.Diagnoser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		diagnosis, err := service.Diagnose(r.Context(), r.URL.Query().Get(datasetIDParam))
		if err != nil {
			writeServiceError(w, r, "diagnose", err)
			return
		}

		writeJSON(w, r, http.StatusOK, diagnosis)
	})
}

func Waste(service diagnosing.Diagnoser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Waste(r.Context(), r.URL.Query().Get(datasetIDParam))
		if err != nil {
			writeServiceError(w, r, "waste", err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
