package domain

import "time"

// Narrative é o resumo executivo em linguagem natural gerado a partir de
// um resultado de inteligência. A geração é sempre opcional: o motor
// numérico nunca depende dela.
type Narrative struct {
	AccountID   string    `json:"account_id"`
	Period      string    `json:"period"`
	Text        string    `json:"text"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}
