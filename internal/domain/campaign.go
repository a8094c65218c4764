package domain

import "github.com/vfg2006/marketing-intelligence-api/pkg/utils"

// ChannelType identifica o canal de veiculação da campanha
type ChannelType string

const (
	ChannelSearch  ChannelType = "SEARCH"
	ChannelSocial  ChannelType = "SOCIAL"
	ChannelDisplay ChannelType = "DISPLAY"
	ChannelVideo   ChannelType = "VIDEO"
	ChannelOther   ChannelType = "OTHER"
)

// CampaignLifecycle é o estado de veiculação reportado pelo provedor
type CampaignLifecycle string

const (
	CampaignActive   CampaignLifecycle = "ACTIVE"
	CampaignPaused   CampaignLifecycle = "PAUSED"
	CampaignArchived CampaignLifecycle = "ARCHIVED"
)

// CampaignMetrics são as métricas normalizadas de uma campanha para um período
type CampaignMetrics struct {
	CampaignID  string            `json:"campaign_id"`
	Name        string            `json:"name"`
	Channel     ChannelType       `json:"channel"`
	Lifecycle   CampaignLifecycle `json:"lifecycle"`
	Spend       float64           `json:"spend"`
	Revenue     float64           `json:"revenue"`
	ROAS        float64           `json:"roas"`
	CPA         float64           `json:"cpa"`
	Conversions float64           `json:"conversions"`
	Impressions int               `json:"impressions"`
	Clicks      int               `json:"clicks"`
}

// NewCampaignMetrics monta as métricas da campanha derivando ROAS e CPA
func NewCampaignMetrics(id, name string, channel ChannelType, lifecycle CampaignLifecycle, spend, revenue, conversions float64, impressions, clicks int) *CampaignMetrics {
	return &CampaignMetrics{
		CampaignID:  id,
		Name:        name,
		Channel:     channel,
		Lifecycle:   lifecycle,
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Revenue:     utils.RoundWithTwoDecimalPlace(revenue),
		ROAS:        utils.SafeRatio(revenue, spend),
		CPA:         utils.SafeRatio(spend, conversions),
		Conversions: conversions,
		Impressions: impressions,
		Clicks:      clicks,
	}
}
