package adsclient

import (
	"net/http"
	"time"

	adsdomain "github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ads/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

type Client interface {
	GetAccountInsights(accountExternalID string, filters *domain.PeriodFilters) (*adsdomain.AccountInsight, error)
	GetSkuInsights(accountExternalID string, filters *domain.PeriodFilters) ([]adsdomain.SkuInsight, error)
	GetCampaignInsights(accountExternalID string, filters *domain.PeriodFilters) ([]adsdomain.CampaignInsight, error)
	GetDailyInsights(accountExternalID string, filters *domain.PeriodFilters) ([]adsdomain.DailyInsight, error)
	ListAdAccounts() ([]adsdomain.AdAccount, error)
}

type AdsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AdsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
