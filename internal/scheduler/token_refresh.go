package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsclient"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/pkg/utils"
)

// TokenRefresher renova o token de longa duração do Threads (implementado por threadsclient.TokenManager)
type TokenRefresher interface {
	RefreshToken(ctx context.Context) error
	ExpiresAt() time.Time
}

// TokenRefreshService renova o token do Threads diariamente
type TokenRefreshService struct {
	scheduler *gocron.Scheduler
	enabled   bool
	cron      string
	timeout   time.Duration
	tokens    TokenRefresher

	mu            sync.Mutex
	lastRefreshAt time.Time
	lastError     string
}

func NewTokenRefreshService(tokens TokenRefresher, appConfig *config.Config) *TokenRefreshService {
	timeout := appConfig.Threads.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &TokenRefreshService{
		scheduler: gocron.NewScheduler(appConfig.App.Location()),
		enabled:   appConfig.Threads.TokenRefreshEnabled && appConfig.Threads.Configured(),
		cron:      appConfig.Threads.TokenRefreshCron,
		timeout:   timeout,
		tokens:    tokens,
	}
}

// Start inicia o agendador
func (s *TokenRefreshService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Renovação automática do token do Threads desabilitada")
		return nil
	}

	_, err := s.scheduler.Cron(s.cron).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar renovação do token do Threads: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.cron).Info("Agendador de renovação do token do Threads iniciado")

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TokenRefreshService) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.tokens.RefreshToken(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRefreshAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao renovar token do Threads")
		return
	}

	s.lastError = ""
	logrus.WithField("expires_in", threadsclient.FormatDuration(int64(time.Until(s.tokens.ExpiresAt()).Seconds()))).
		Info("Token do Threads renovado")
}

// GetStatus retorna o status da última renovação
func (s *TokenRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"token_refresh_enabled": s.enabled,
		"token_refresh_cron":    s.cron,
		"token_expires_at":      s.tokens.ExpiresAt(),
		"last_refresh_at":       s.lastRefreshAt,
		"last_refresh_error":    s.lastError,
	}
}

// TriggerManualSync renova o token imediatamente em background
func (s *TokenRefreshService) TriggerManualSync() (string, bool) {
	if !s.enabled {
		logrus.Info("Renovação do token do Threads desabilitada, ignorando solicitação manual")
		return "", false
	}

	runID := utils.GenerateRunID()

	logrus.WithField("run_id", runID).Info("Iniciando renovação manual do token do Threads")
	go s.refresh(context.Background())

	return runID, true
}
