package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
)

// SnapshotSyncConfig representa a configuração do agendador de fotografias diárias
type SnapshotSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SnapshotSyncService gerencia o agendamento e a execução da sincronização
// das fotografias diárias de métricas das contas ativas
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	snapshotRepo        repository.SnapshotRepository
	adsService          analyzing.AdsInsighter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de fotografias
func NewSnapshotSyncService(
	accountRepo repository.AccountRepository,
	snapshotRepo repository.SnapshotRepository,
	adsService analyzing.AdsInsighter,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		LookbackDays:        appConfig.SnapshotSync.LookbackDays,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SnapshotSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de fotografias diárias carregada")

	return &SnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		adsService:   adsService,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de fotografias diárias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fotografias diárias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de fotografias diárias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fotografias diárias")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots sincroniza as fotografias diárias de todas as contas ativas
func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de fotografias já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de fotografias diárias para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de fotografias")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de fotografias")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de fotografias diárias")

	s.processSnapshotsForDates(activeAccounts, dates)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de fotografias diárias concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync dispara a sincronização fora do agendamento
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de fotografias já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de fotografias diárias")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// getActiveAccounts busca e filtra contas ativas
func (s *SnapshotSyncService) getActiveAccounts() ([]*domain.Account, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AccountStatus{domain.AccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de fotografias")
		return []*domain.Account{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de fotografias")

	return activeAccounts, nil
}

// getDatesToProcess cria o conjunto de datas a processar, de ontem para trás
func (s *SnapshotSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1)
	}
	return dates
}

// processSnapshotsForDates processa as fotografias de cada conta com concorrência limitada
func (s *SnapshotSyncService) processSnapshotsForDates(accounts []*domain.Account, dates []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"external_id":  acc.ExternalID,
				"account_name": acc.Name,
				"total_dates":  len(dates),
			}).Info("Processando fotografias diárias para conta")

			s.processAccountForAllDates(acc, dates)
		}(account)
	}

	wg.Wait()
}

// processAccountForAllDates processa as fotografias de uma conta em todas as datas
func (s *SnapshotSyncService) processAccountForAllDates(acc *domain.Account, dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		s.processAccountSnapshot(acc, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processAccountSnapshot monta e persiste a fotografia de uma conta e data
func (s *SnapshotSyncService) processAccountSnapshot(acc *domain.Account, date time.Time) {
	filters := &domain.PeriodFilters{
		StartDate: &date,
		EndDate:   &date,
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"external_id": acc.ExternalID,
		"date":        date.Format(time.DateOnly),
	}).Info("Obtendo métricas para fotografia diária")

	accountMetrics, err := s.adsService.AccountTotals(acc.ExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"external_id": acc.ExternalID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao obter totais da conta para fotografia")
		return
	}

	if accountMetrics.IsEmpty() {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"external_id": acc.ExternalID,
			"date":        date.Format(time.DateOnly),
		}).Warn("Nenhuma métrica obtida para conta e data")
		return
	}

	skus, err := s.adsService.AllSkuMetrics(acc.ExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"external_id": acc.ExternalID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao obter métricas por SKU para fotografia")
		return
	}

	snapshot := &domain.DailySnapshot{
		AccountID: acc.ID,
		Date:      date,
		Account:   accountMetrics,
		Skus:      skus,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"date":       date.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("Erro ao persistir fotografia diária")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"date":       date.Format(time.DateOnly),
		"skus":       len(skus),
	}).Debug("Fotografia diária persistida com sucesso")
}
