package gaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	gadomain "github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ga/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

type ResponseFunnelReport struct {
	Steps []gadomain.FunnelStepRow `json:"steps"`
}

func (c *GaClient) GetFunnelReport(propertyID string, filters *domain.PeriodFilters) ([]gadomain.FunnelStepRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Analytics.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("/properties/%s/reports/funnel", propertyID))

	query := endpoint.Query()
	query.Set("start_date", filters.StartDate.Format(time.DateOnly))
	query.Set("end_date", filters.EndDate.Format(time.DateOnly))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Analytics.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response ResponseFunnelReport
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Steps, nil
}
