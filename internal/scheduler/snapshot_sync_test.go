package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	analyzingmocks "github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestSnapshotSyncService_processAccountSnapshot(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	account := &domain.Account{
		ID:         "acc-001",
		ExternalID: "ext-123",
		Name:       "Loja A",
		Status:     domain.AccountStatusActive,
	}

	tests := []struct {
		name  string
		setup func(ads *analyzingmocks.MockAdsInsighter, snapshots *mocks.MockSnapshotRepository)
	}{
		{
			name: "Persiste fotografia quando o dia tem métricas",
			setup: func(ads *analyzingmocks.MockAdsInsighter, snapshots *mocks.MockSnapshotRepository) {
				ads.EXPECT().
					AccountTotals("ext-123", gomock.Any()).
					Return(domain.NewAccountMetrics(100.0, 1000, 50, 4, 520.0), nil)

				ads.EXPECT().
					AllSkuMetrics("ext-123", gomock.Any()).
					Return([]*domain.SkuMetrics{
						domain.NewSkuMetrics("SKU-A", 520.0, 100.0, 1000, 50, 4, nil),
					}, nil)

				snapshots.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.DailySnapshot) error {
						assert.Equal(t, "acc-001", snapshot.AccountID)
						assert.Equal(t, date, snapshot.Date)
						assert.Equal(t, 520.0, snapshot.Account.Revenue)
						assert.Len(t, snapshot.Skus, 1)
						return nil
					})
			},
		},
		{
			name: "Dia sem métricas não gera fotografia",
			setup: func(ads *analyzingmocks.MockAdsInsighter, snapshots *mocks.MockSnapshotRepository) {
				ads.EXPECT().
					AccountTotals("ext-123", gomock.Any()).
					Return(domain.NewAccountMetrics(0, 0, 0, 0, 0), nil)
			},
		},
		{
			name: "Falha do provedor não persiste nada",
			setup: func(ads *analyzingmocks.MockAdsInsighter, snapshots *mocks.MockSnapshotRepository) {
				ads.EXPECT().
					AccountTotals("ext-123", gomock.Any()).
					Return(nil, errors.New("api indisponível"))
			},
		},
		{
			name: "Falha ao buscar SKUs não persiste nada",
			setup: func(ads *analyzingmocks.MockAdsInsighter, snapshots *mocks.MockSnapshotRepository) {
				ads.EXPECT().
					AccountTotals("ext-123", gomock.Any()).
					Return(domain.NewAccountMetrics(100.0, 1000, 50, 4, 520.0), nil)

				ads.EXPECT().
					AllSkuMetrics("ext-123", gomock.Any()).
					Return(nil, errors.New("api indisponível"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAds := analyzingmocks.NewMockAdsInsighter(ctrl)
			mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)

			tt.setup(mockAds, mockSnapshots)

			service := &SnapshotSyncService{
				adsService:   mockAds,
				snapshotRepo: mockSnapshots,
			}

			service.processAccountSnapshot(account, date)
		})
	}
}

func TestSnapshotSyncService_syncAllSnapshots(t *testing.T) {
	t.Run("Processa todas as datas das contas ativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccounts := mocks.NewMockAccountRepository(ctrl)
		mockAds := analyzingmocks.NewMockAdsInsighter(ctrl)
		mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)

		mockAccounts.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
			Return([]*domain.Account{
				{ID: "acc-001", ExternalID: "ext-123", Name: "Loja A"},
				{ID: "acc-002", Name: "Loja sem external_id"},
			}, nil)

		// Dois dias de lookback, apenas a conta com external_id é processada
		mockAds.EXPECT().
			AccountTotals("ext-123", gomock.Any()).
			Return(domain.NewAccountMetrics(100.0, 1000, 50, 4, 520.0), nil).
			Times(2)

		mockAds.EXPECT().
			AllSkuMetrics("ext-123", gomock.Any()).
			Return([]*domain.SkuMetrics{}, nil).
			Times(2)

		mockSnapshots.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil).
			Times(2)

		service := &SnapshotSyncService{
			config: SnapshotSyncConfig{
				LookbackDays:        2,
				RequestDelaySeconds: 0,
				MaxConcurrentJobs:   1,
			},
			accountRepo:  mockAccounts,
			snapshotRepo: mockSnapshots,
			adsService:   mockAds,
		}

		service.syncAllSnapshots()
	})

	t.Run("Nenhuma conta ativa encerra sem processar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccounts := mocks.NewMockAccountRepository(ctrl)

		mockAccounts.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
			Return([]*domain.Account{}, nil)

		service := &SnapshotSyncService{
			config:      SnapshotSyncConfig{LookbackDays: 1, MaxConcurrentJobs: 1},
			accountRepo: mockAccounts,
		}

		service.syncAllSnapshots()
	})
}
