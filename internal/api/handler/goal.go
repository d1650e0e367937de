package handler

import (
	"net/http"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/internal/usecases/goal"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
)

func CreateGoal(service goal.GoalService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		created, err := service.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, "goals", err)
			return
		}

		writeJSON(w, r, http.StatusOK, created)
	})
}

func ListGoals(service goal.GoalService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goals, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, "goals", err)
			return
		}

		writeJSON(w, r, http.StatusOK, goals)
	})
}
