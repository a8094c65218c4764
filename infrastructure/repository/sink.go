package repository

import (
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// InsightSink reúne os repositórios de insights e de fotografias diárias
// em um único destino de persistência para o motor de análise
type InsightSink struct {
	insights  InsightRepository
	snapshots SnapshotRepository
}

func NewInsightSink(insights InsightRepository, snapshots SnapshotRepository) *InsightSink {
	return &InsightSink{
		insights:  insights,
		snapshots: snapshots,
	}
}

func (s *InsightSink) AppendInsights(accountID string, period domain.PeriodMeta, insights []domain.Insight) error {
	return s.insights.AppendInsights(accountID, period, insights)
}

func (s *InsightSink) AppendDailySnapshot(snapshot *domain.DailySnapshot) error {
	return s.snapshots.SaveOrUpdate(snapshot)
}
