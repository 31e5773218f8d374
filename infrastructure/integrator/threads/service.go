package threads

import (
	"context"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsclient"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/domain"
)

// AccountMetrics métricas da conta solicitadas em /threads_insights
var AccountMetrics = []string{"views", "likes", "replies", "reposts", "quotes", "followers_count"}

const (
	cacheHit  = "hit"
	cacheMiss = "miss"
)

// CacheRecorder registra acertos e falhas do cache de insights
type CacheRecorder interface {
	IncThreadsCache(result string)
}

type ThreadsIntegrator interface {
	Configured() bool
	GetInsights(ctx context.Context, days int) (*domain.InsightsData, error)
	GetProfile(ctx context.Context) (*domain.ThreadsProfile, error)
	GetTopPosts(ctx context.Context, limit int) ([]domain.ThreadsPost, error)
	Purge()
}

type ThreadsService struct {
	cfg      config.Threads
	Client   threadsclient.Client
	cache    *lru.LRU[string, *domain.InsightsData]
	recorder CacheRecorder
	now      func() time.Time
}

func New(cfg config.Threads, client threadsclient.Client, recorder CacheRecorder) *ThreadsService {
	s := &ThreadsService{
		cfg:      cfg,
		Client:   client,
		recorder: recorder,
		now:      time.Now,
	}

	if cfg.CacheSize > 0 && cfg.CacheTTL > 0 {
		s.cache = lru.NewLRU[string, *domain.InsightsData](cfg.CacheSize, nil, cfg.CacheTTL)
	}

	return s
}

func (s *ThreadsService) Configured() bool {
	return s.cfg.Configured()
}

// GetInsights busca as métricas da conta dos últimos `days` dias. Respostas bem-sucedidas
// ficam em cache pelo TTL configurado.
func (s *ThreadsService) GetInsights(ctx context.Context, days int) (*domain.InsightsData, error) {
	key := strings.Join(AccountMetrics, ",") + "|" + strconv.Itoa(days)

	if s.cache != nil {
		if data, ok := s.cache.Get(key); ok {
			s.record(cacheHit)
			return data, nil
		}
		s.record(cacheMiss)
	}

	until := s.now()
	since := until.Add(-time.Duration(days) * 24 * time.Hour)

	data, err := s.Client.GetInsights(ctx, AccountMetrics, since, until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"days":  days,
			"error": threadsclient.RedactURLError(err).Error(),
		}).Error("threads: failed to get account insights")
		return nil, err
	}

	if s.cache != nil && data != nil {
		s.cache.Add(key, data)
	}

	return data, nil
}

func (s *ThreadsService) GetProfile(ctx context.Context) (*domain.ThreadsProfile, error) {
	profile, err := s.Client.GetProfile(ctx)
	if err != nil {
		logrus.WithError(threadsclient.RedactURLError(err)).Warn("threads: failed to get profile")
		return nil, err
	}

	return profile, nil
}

// GetTopPosts busca os posts recentes e as métricas de cada um em paralelo.
// Falhas nas métricas de um post deixam views e likes zerados.
func (s *ThreadsService) GetTopPosts(ctx context.Context, limit int) ([]domain.ThreadsPost, error) {
	posts, err := s.Client.GetRecentPosts(ctx, limit)
	if err != nil {
		logrus.WithError(threadsclient.RedactURLError(err)).Warn("threads: failed to get recent posts")
		return nil, err
	}

	result := make([]domain.ThreadsPost, len(posts))
	fetchedAt := s.now()

	eg, egCtx := errgroup.WithContext(ctx)
	if s.cfg.MaxConcurrency > 0 {
		eg.SetLimit(s.cfg.MaxConcurrency)
	}

	for i, p := range posts {
		result[i] = domain.ThreadsPost{
			ID:        p.ID,
			Text:      p.Text,
			Permalink: p.Permalink,
			Timestamp: p.Timestamp,
			MediaType: p.MediaType,
			MediaURL:  p.MediaURL,
			FetchedAt: fetchedAt,
		}

		eg.Go(func() error {
			insights, err := s.Client.GetPostInsights(egCtx, p.ID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"post_id": p.ID,
					"error":   threadsclient.RedactURLError(err).Error(),
				}).Warn("threads: failed to get post insights")
				return nil
			}

			result[i].Views = insights.FirstValue("views")
			result[i].Likes = insights.FirstValue("likes")
			return nil
		})
	}

	_ = eg.Wait()

	return result, nil
}

// Purge descarta as métricas em cache
func (s *ThreadsService) Purge() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *ThreadsService) record(result string) {
	if s.recorder != nil {
		s.recorder.IncThreadsCache(result)
	}
}
