package handler

import (
	"net/http"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/internal/usecases/recommending"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
)

func Recommend(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		aggressiveness, err := recommending.ParseAggressiveness(query.Get("aggressiveness"))
		if err != nil {
			writeServiceError(w, r, "recommend", err)
			return
		}

		batch, err := service.Generate(r.Context(), query.Get(datasetIDParam), aggressiveness)
		if err != nil {
			writeServiceError(w, r, "recommend", err)
			return
		}

		writeJSON(w, r, http.StatusOK, batch)
	})
}

func ListRecommendations(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recommendations, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, "recommendations", err)
			return
		}

		writeJSON(w, r, http.StatusOK, recommendations)
	})
}

// UpdateRecommendation aceita ou rejeita uma recomendação pendente
func UpdateRecommendation(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateRecommendationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		recommendation, err := service.UpdateStatus(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, "recommendations", err)
			return
		}

		writeJSON(w, r, http.StatusOK, recommendation)
	})
}
