package narrating

import (
	"context"

	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// Narrator transforma um resultado de inteligência em um resumo executivo
// em linguagem natural. Implementações podem chamar serviços externos e
// devem respeitar o cancelamento do contexto.
type Narrator interface {
	Narrate(ctx context.Context, accountID string, period domain.PeriodMeta, result *domain.IntelligenceResult) (*domain.Narrative, error)
}
