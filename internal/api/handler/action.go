package handler

import (
	"net/http"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/internal/usecases/executing"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
)

func ListActions(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actions, err := service.ListActions(r.Context())
		if err != nil {
			writeServiceError(w, r, "actions", err)
			return
		}

		writeJSON(w, r, http.StatusOK, actions)
	})
}

func ExecuteAction(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeActionRequest(w, r)
		if !ok {
			return
		}

		resp, err := service.Execute(r.Context(), req.ActionID)
		if err != nil {
			writeServiceError(w, r, "execute", err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func SimulateAction(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeActionRequest(w, r)
		if !ok {
			return
		}

		result, err := service.Simulate(r.Context(), req.ActionID)
		if err != nil {
			writeServiceError(w, r, "simulate", err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func decodeActionRequest(w http.ResponseWriter, r *http.Request) (domain.ActionRequest, bool) {
	var req domain.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return req, false
	}
	return req, true
}
