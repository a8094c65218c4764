package planning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetTargetMonth(t *testing.T) {
	t.Run("expande as entradas armazenadas com a cascata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		planningRepo := mocks.NewMockPlanningRepository(ctrl)
		planningRepo.EXPECT().
			GetByAccountAndMonth("acc_1", 2025, 3, domain.PlanTypeTarget).
			Return(domain.PlanningMetrics{
				domain.MetricCapturedRevenue: 100000,
				domain.MetricTotalInvestment: 20000,
				domain.MetricApprovalRate:    0.8,
			}, nil)

		service := NewService(planningRepo)

		result, err := service.GetTargetMonth("acc_1", 2025, 3)
		require.NoError(t, err)

		assert.Equal(t, float64(80000), result[domain.MetricBilledRevenue])
		assert.Equal(t, 5.0, result[domain.MetricCapturedRoas])
		assert.Equal(t, 4.0, result[domain.MetricBilledRoas])
		assert.False(t, result.Has(domain.MetricOrders))
	})

	t.Run("período inválido não consulta o repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		planningRepo := mocks.NewMockPlanningRepository(ctrl)
		service := NewService(planningRepo)

		_, err := service.GetTargetMonth("acc_1", 2025, 13)
		assert.Error(t, err)

		_, err = service.GetTargetMonth("acc_1", 1999, 3)
		assert.Error(t, err)
	})

	t.Run("erro do repositório é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		planningRepo := mocks.NewMockPlanningRepository(ctrl)
		planningRepo.EXPECT().
			GetByAccountAndMonth("acc_1", 2025, 3, domain.PlanTypeTarget).
			Return(nil, errors.New("falha no banco"))

		service := NewService(planningRepo)

		_, err := service.GetTargetMonth("acc_1", 2025, 3)
		assert.Error(t, err)
	})
}

func TestService_SaveTargetMonth(t *testing.T) {
	t.Run("persiste as entradas e retorna o mês expandido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inputs := domain.PlanningMetrics{
			domain.MetricCapturedRevenue: 50000,
			domain.MetricAverageTicket:   250,
		}

		planningRepo := mocks.NewMockPlanningRepository(ctrl)
		planningRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(entries []*domain.PlanningEntry) error {
				assert.Len(t, entries, 2)
				for _, entry := range entries {
					assert.Equal(t, "acc_1", entry.AccountID)
					assert.Equal(t, 2025, entry.Year)
					assert.Equal(t, 4, entry.Month)
					assert.Equal(t, domain.PlanTypeTarget, entry.PlanType)
				}
				return nil
			})
		planningRepo.EXPECT().
			GetByAccountAndMonth("acc_1", 2025, 4, domain.PlanTypeTarget).
			Return(inputs.Clone(), nil)

		service := NewService(planningRepo)

		result, err := service.SaveTargetMonth("acc_1", 2025, 4, inputs)
		require.NoError(t, err)

		assert.Equal(t, float64(200), result[domain.MetricOrders])
	})

	t.Run("entrada vazia é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		planningRepo := mocks.NewMockPlanningRepository(ctrl)
		service := NewService(planningRepo)

		_, err := service.SaveTargetMonth("acc_1", 2025, 4, domain.PlanningMetrics{})
		assert.Error(t, err)
	})

	t.Run("falha ao salvar não reconsulta o mês", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		planningRepo := mocks.NewMockPlanningRepository(ctrl)
		planningRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(errors.New("falha no banco"))

		service := NewService(planningRepo)

		_, err := service.SaveTargetMonth("acc_1", 2025, 4, domain.PlanningMetrics{
			domain.MetricCapturedRevenue: 50000,
		})
		assert.Error(t, err)
	})
}
