package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/internal/usecases/connecting"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
)

func ConnectGoogleAds(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.GoogleAdsConnectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		resp, err := service.ConnectGoogleAds(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, "integrations", err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

// TestIntegration devolve o snapshot de demonstração da plataforma informada na rota
func TestIntegration(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")

		snapshot, err := service.DemoSnapshot(r.Context(), platform)
		if err != nil {
			writeServiceError(w, r, "integrations", err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}
