package planning

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// Service implementa Planner sobre a loja de planejamento mensal
type Service struct {
	planningRepo repository.PlanningRepository
}

func NewService(planningRepo repository.PlanningRepository) Planner {
	return &Service{
		planningRepo: planningRepo,
	}
}

func (s *Service) GetTargetMonth(accountID string, year, month int) (domain.PlanningMetrics, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	inputs, err := s.planningRepo.GetByAccountAndMonth(accountID, year, month, domain.PlanTypeTarget)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"year":       year,
			"month":      month,
		}).Error("Erro ao buscar entradas de planejamento")
		return nil, err
	}

	return ComputeTargetMonth(inputs), nil
}

func (s *Service) SaveTargetMonth(accountID string, year, month int, inputs domain.PlanningMetrics) (domain.PlanningMetrics, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("é necessário informar ao menos uma métrica de planejamento")
	}

	entries := make([]*domain.PlanningEntry, 0, len(inputs))
	for metric, value := range inputs {
		entries = append(entries, &domain.PlanningEntry{
			AccountID: accountID,
			Year:      year,
			Month:     month,
			PlanType:  domain.PlanTypeTarget,
			Metric:    metric,
			Value:     value,
		})
	}

	if err := s.planningRepo.SaveOrUpdate(entries); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"year":       year,
			"month":      month,
			"metrics":    len(entries),
		}).Error("Erro ao salvar entradas de planejamento")
		return nil, err
	}

	return s.GetTargetMonth(accountID, year, month)
}

func validatePeriod(year, month int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("ano inválido: %d", year)
	}

	if month < 1 || month > 12 {
		return fmt.Errorf("mês inválido: %d", month)
	}

	return nil
}
