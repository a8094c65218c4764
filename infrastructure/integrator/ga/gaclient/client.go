package gaclient

import (
	"net/http"
	"time"

	gadomain "github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ga/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

type Client interface {
	GetSummaryReport(propertyID string, filters *domain.PeriodFilters) (*gadomain.SummaryReport, error)
	GetRetentionReport(propertyID string, filters *domain.PeriodFilters) (*gadomain.RetentionReport, error)
	GetFunnelReport(propertyID string, filters *domain.PeriodFilters) ([]gadomain.FunnelStepRow, error)
	GetProperty(propertyID string) (*gadomain.Property, error)
}

type GaClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
