package connecting

import (
	"context"
	"strings"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
)

const googleConnectedMessage = "Google Ads connected successfully"

type Connector interface {
	ConnectGoogleAds(ctx context.Context, req domain.GoogleAdsConnectRequest) (*domain.ConnectResponse, error)
	DemoSnapshot(ctx context.Context, platform string) (*domain.DemoSnapshot, error)
}

// Service simula a conexão com as plataformas de anúncio. Credenciais não são gravadas.
type Service struct{}

func NewService() Connector {
	return &Service{}
}

func (s *Service) ConnectGoogleAds(ctx context.Context, req domain.GoogleAdsConnectRequest) (*domain.ConnectResponse, error) {
	for _, value := range []string{req.CustomerID, req.DeveloperToken, req.ClientID, req.ClientSecret, req.RefreshToken} {
		if strings.TrimSpace(value) == "" {
			return nil, NewConnectionError(ErrMissingCredentials, apiErrors.ErrMissingRequiredData, "")
		}
	}

	// apenas o customer id vai para o log
	log.ForContext(ctx).Infof("integrations: Google Ads conectado para o cliente %s", req.CustomerID)

	return &domain.ConnectResponse{
		Success:    true,
		Message:    googleConnectedMessage,
		CustomerID: req.CustomerID,
	}, nil
}

func (s *Service) DemoSnapshot(ctx context.Context, platform string) (*domain.DemoSnapshot, error) {
	campaigns, ok := demoCampaigns[domain.Platform(strings.ToLower(platform))]
	if !ok {
		return nil, NewConnectionError(ErrUnknownPlatform, apiErrors.ErrResourceNotFound, platform)
	}
	return snapshot(campaigns), nil
}
