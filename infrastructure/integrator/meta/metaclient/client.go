package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/config"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

type Client interface {
	ListAds(accountID string) ([]metadomain.Ad, error)
	GetAdInsights(adID string, filters *domain.InsigthFilters) (*metadomain.RawAdInsight, error)
	GetAdBreakdowns(adID string, filters *domain.InsigthFilters, dimensions []string) ([]metadomain.RawAdInsight, error)
	GetAdSpendBatch(accountID string, adIDs []string, filters *domain.InsigthFilters, minSpend float64) ([]metadomain.AdSpend, error)
	GetAccountDailyInsights(accountID string, filters *domain.InsigthFilters) ([]metadomain.RawAdInsight, error)
	GetAdCreative(adID string) (*metadomain.Creative, error)
	RefreshToken() error
	EnsureValidToken() error
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
	limiter      *rateLimiter
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		limiter: newRateLimiter(
			time.Duration(cfg.Meta.MinRequestDelaySeconds)*time.Second,
			time.Duration(cfg.Meta.MaxRequestDelaySeconds)*time.Second,
		),
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}
