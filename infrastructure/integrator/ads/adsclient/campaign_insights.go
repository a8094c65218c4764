package adsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	adsdomain "github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ads/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

type ResponseCampaignInsights struct {
	Data []adsdomain.CampaignInsight `json:"data"`
}

func (c *AdsClient) GetCampaignInsights(accountExternalID string, filters *domain.PeriodFilters) ([]adsdomain.CampaignInsight, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Ads.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("/accounts/%s/campaigns", accountExternalID))

	query := endpoint.Query()
	query.Set("start_date", filters.StartDate.Format(time.DateOnly))
	query.Set("end_date", filters.EndDate.Format(time.DateOnly))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Ads.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response ResponseCampaignInsights
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Data, nil
}
