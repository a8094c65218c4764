package domain

// AccountStatus é o estado de acompanhamento de uma conta
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account é uma conta de anúncios acompanhada pela plataforma (o tenant
// de todas as operações de inteligência)
type Account struct {
	ID         string        `json:"id"`
	ExternalID string        `json:"external_id"`
	Name       string        `json:"name"`
	Nickname   *string       `json:"nickname"`
	PropertyID *string       `json:"property_id"` // Propriedade do web analytics vinculada
	Status     AccountStatus `json:"status"`
	RoasTarget float64       `json:"roas_target"`
	CpaCeiling float64       `json:"cpa_ceiling"`
}

// UpdateAccountRequest é o corpo da atualização de conta
type UpdateAccountRequest struct {
	ID         string  `json:"id"`
	Nickname   *string `json:"nickname,omitempty"`
	PropertyID *string `json:"property_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// SyncAccountsResponse resume o resultado da sincronização de contas
type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
