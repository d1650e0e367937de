package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/postwise-api/internal/usecases/connecting"
	"github.com/vfg2006/postwise-api/internal/usecases/diagnosing"
	"github.com/vfg2006/postwise-api/internal/usecases/executing"
	"github.com/vfg2006/postwise-api/internal/usecases/goal"
	"github.com/vfg2006/postwise-api/internal/usecases/ingesting"
	"github.com/vfg2006/postwise-api/internal/usecases/recommending"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const internalErrorMessage = "Internal server error"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada.
// Falhas internas nunca expõem a mensagem original ao cliente.
func writeServiceError(w http.ResponseWriter, r *http.Request, area string, err error) {
	code, message, details := describeError(err)
	logger := log.ForContext(r.Context()).WithError(err)

	if strings.HasPrefix(code, "SRV_") {
		logger.Errorf("%s: falha interna", area)
		apiErrors.WriteError(w, code, internalErrorMessage, nil)
		return
	}

	logger.Warnf("%s: requisição rejeitada", area)
	apiErrors.WriteError(w, code, message, details)
}

func describeError(err error) (code string, message string, details any) {
	var (
		ingestErr     *ingesting.IngestError
		diagnosisErr  *diagnosing.DiagnosisError
		recommendErr  *recommending.RecommendationError
		executionErr  *executing.ExecutionError
		goalErr       *goal.GoalError
		connectionErr *connecting.ConnectionError
	)

	switch {
	case errors.As(err, &ingestErr):
		return ingestErr.Code, ingestErr.Err.Error(), ingestErr.Details
	case errors.As(err, &diagnosisErr):
		return diagnosisErr.Code, diagnosisErr.Err.Error(), nil
	case errors.As(err, &recommendErr):
		return recommendErr.Code, recommendErr.Err.Error(), nil
	case errors.As(err, &executionErr):
		return executionErr.Code, executionErr.Err.Error(), nil
	case errors.As(err, &goalErr):
		return goalErr.Code, goalErr.Err.Error(), goalErr.Details
	case errors.As(err, &connectionErr):
		return connectionErr.Code, connectionErr.Err.Error(), nil
	}

	return apiErrors.ErrInternalServer, internalErrorMessage, nil
}
