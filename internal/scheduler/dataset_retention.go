package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/config"
	"github.com/vfg2006/postwise-api/pkg/metrics"
)

const purgeTimeout = 5 * time.Minute

// DatasetRetentionService remove periodicamente datasets antigos que nunca geraram recomendações.
// As linhas de métricas saem junto pelo ON DELETE CASCADE; audit logs nunca são tocados.
type DatasetRetentionService struct {
	scheduler           *gocron.Scheduler
	config              config.DatasetRetention
	datasetRepo         repository.DatasetRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastPurged          int64
}

func NewDatasetRetentionService(datasetRepo repository.DatasetRepository, cfg config.DatasetRetention) *DatasetRetentionService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cfg.CronSchedule,
		"retention_days": cfg.Days,
		"enabled":        cfg.Enabled,
	}).Info("Configuração da retenção de datasets carregada")

	return &DatasetRetentionService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cfg,
		datasetRepo: datasetRepo,
		now:         time.Now,
	}
}

// Start agenda a limpeza. Não faz nada quando desabilitada.
func (s *DatasetRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purge(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de datasets: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// purge executa uma rodada, ignorando a chamada se outra já estiver em andamento
func (s *DatasetRetentionService) purge(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retenção de datasets já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if _, err := s.RunOnce(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao remover datasets antigos")
	}
}

// RunOnce remove os datasets criados antes do limite de retenção
func (s *DatasetRetentionService) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	cutoff := s.now().AddDate(0, 0, -s.config.Days)

	deleted, err := s.datasetRepo.DeleteStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	metrics.DatasetsPurged(deleted)

	s.syncMutex.Lock()
	s.lastPurged = deleted
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"deleted": deleted,
		"cutoff":  cutoff.Format(time.DateOnly),
	}).Info("Retenção de datasets concluída")

	return deleted, nil
}

// TriggerManualSync dispara uma limpeza fora do agendamento.
// Retorna false quando já existe uma execução em andamento.
func (s *DatasetRetentionService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Retenção de datasets já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando retenção manual de datasets")
	go s.purge(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"retention_days":         s.config.Days,
		"running":                s.syncRunning,
		"last_purged":            s.lastPurged,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
