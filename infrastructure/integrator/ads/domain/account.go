package domain

// AdAccount é uma conta de anúncios listada pelo provedor
type AdAccount struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
