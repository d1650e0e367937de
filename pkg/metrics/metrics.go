// Package metrics expõe os contadores da API no formato Prometheus
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "postwise"

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})

	ingestedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingested_rows_total",
		Help:      "Linhas de CSV processadas por resultado",
	}, []string{"platform", "result"})

	recommendationsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_generated_total",
		Help:      "Recomendações persistidas por nível",
	}, []string{"level"})

	rationaleOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rationale_rewrites_total",
		Help:      "Reescritas de justificativa por resultado",
	}, []string{"provider", "result"})

	actionsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_executed_total",
		Help:      "Ações executadas em simulação por tipo",
	}, []string{"action_type"})

	datasetsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datasets_purged_total",
		Help:      "Datasets removidos pela rotina de retenção",
	})
)

func ObserveRequest(method string, status int, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func IngestedRows(platform, result string, n int) {
	ingestedRows.WithLabelValues(platform, result).Add(float64(n))
}

func RecommendationGenerated(level string) {
	recommendationsGenerated.WithLabelValues(level).Inc()
}

func RationaleOutcome(provider, result string) {
	rationaleOutcomes.WithLabelValues(provider, result).Inc()
}

func ActionExecuted(actionType string) {
	actionsExecuted.WithLabelValues(actionType).Inc()
}

func DatasetsPurged(n int64) {
	datasetsPurged.Add(float64(n))
}

// Handler serve o registro padrão do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
