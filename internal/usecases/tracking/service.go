package tracking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/somework/landing-api/infrastructure/repository"
	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/pkg/log"
)

const (
	EventPageView = "pageview"
	EventClick    = "click"

	adminPathPrefix = "/admin"

	DefaultWriteTimeout = 5 * time.Second
)

var ErrMissingResource = errors.New("resource_id é obrigatório")

// FailureRecorder contabiliza eventos que não puderam ser gravados
type FailureRecorder interface {
	IncTrackingFailure(event string)
}

type Tracker interface {
	// TrackPageView retorna false quando o caminho não é rastreado (área administrativa)
	TrackPageView(ctx context.Context, path, userAgent string) bool
	TrackClick(ctx context.Context, resourceID, resourceTitle string) error
	// Wait aguarda as gravações pendentes, usado no shutdown
	Wait()
}

type Service struct {
	pageViews repository.PageViewRepository
	clicks    repository.ResourceClickRepository
	recorder  FailureRecorder
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewService(
	pageViews repository.PageViewRepository,
	clicks repository.ResourceClickRepository,
	recorder FailureRecorder,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}

	return &Service{
		pageViews: pageViews,
		clicks:    clicks,
		recorder:  recorder,
		timeout:   timeout,
	}
}

func (s *Service) TrackPageView(ctx context.Context, path, userAgent string) bool {
	if IsAdminPath(path) {
		return false
	}

	view := &domain.PageView{Path: path, UserAgent: userAgent}
	s.dispatch(ctx, EventPageView, func(ctx context.Context) error {
		return s.pageViews.Insert(ctx, view)
	})

	return true
}

func (s *Service) TrackClick(ctx context.Context, resourceID, resourceTitle string) error {
	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return ErrMissingResource
	}

	click := &domain.ResourceClick{ResourceID: resourceID, ResourceTitle: resourceTitle}
	s.dispatch(ctx, EventClick, func(ctx context.Context) error {
		return s.clicks.Insert(ctx, click)
	})

	return nil
}

func (s *Service) Wait() {
	s.wg.Wait()
}

// dispatch grava o evento em background. Falhas são registradas e descartadas, sem retry.
func (s *Service) dispatch(ctx context.Context, event string, write func(ctx context.Context) error) {
	// Mantém os valores do contexto (correlation id) mas não o cancelamento da requisição
	base := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		writeCtx, cancel := context.WithTimeout(base, s.timeout)
		defer cancel()

		if err := write(writeCtx); err != nil {
			log.ForContext(writeCtx).WithFields(log.Fields{
				"event": event,
				"error": err.Error(),
			}).Warn("tracking: failed to record event")

			if s.recorder != nil {
				s.recorder.IncTrackingFailure(event)
			}
		}
	}()
}

// IsAdminPath indica se o caminho pertence à área administrativa (qualquer caminho iniciado por /admin)
func IsAdminPath(path string) bool {
	return strings.HasPrefix(path, adminPathPrefix)
}
