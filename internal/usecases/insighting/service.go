package insighting

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/infrastructure/integrator/threads"
	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsdomain"
	"github.com/somework/landing-api/internal/domain"
)

const (
	MessageCredentialsMissing = "Credentials missing"
	MessageEmptyResponse      = "No data returned from Threads API (Empty Response)"

	insightsErrorPrefix = "Insights Error: "
	serverErrorPrefix   = "Server Error: "

	// TopPostsLimit quantidade de posts recentes consultados
	TopPostsLimit = 5
)

// Service implementa Insighter sobre o integrador do Threads
type Service struct {
	threadsService threads.ThreadsIntegrator
}

// NewService cria uma nova instância do serviço de analytics
func NewService(threadsService threads.ThreadsIntegrator) Insighter {
	return &Service{
		threadsService: threadsService,
	}
}

func (s *Service) GetAnalytics(ctx context.Context, days int) (report *domain.AnalyticsReport) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("analytics: recovered from panic")
			report = &domain.AnalyticsReport{Error: serverErrorPrefix + fmt.Sprint(r), Failure: domain.FailureInternal}
		}
	}()

	if !s.threadsService.Configured() {
		return &domain.AnalyticsReport{UseDummy: true, Message: MessageCredentialsMissing}
	}

	if days <= 0 {
		days = domain.DefaultDays
	}

	// Perfil é opcional, a falha só é registrada
	profile, err := s.threadsService.GetProfile(ctx)
	if err != nil {
		profile = nil
	}

	insights, err := s.threadsService.GetInsights(ctx, days)
	if err != nil {
		return &domain.AnalyticsReport{Error: insightsErrorPrefix + upstreamMessage(err), Failure: failureOf(err)}
	}

	posts, err := s.threadsService.GetTopPosts(ctx, TopPostsLimit)
	if err != nil {
		posts = nil
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Views > posts[j].Views
	})

	if profile == nil && (insights == nil || len(insights.Data) == 0) && len(posts) == 0 {
		return &domain.AnalyticsReport{Error: MessageEmptyResponse, Empty: true}
	}

	if posts == nil {
		posts = []domain.ThreadsPost{}
	}

	logrus.WithFields(logrus.Fields{
		"days":    days,
		"metrics": len(insightsData(insights)),
		"posts":   len(posts),
	}).Debug("analytics: report built")

	return &domain.AnalyticsReport{
		Profile:  profile,
		Insights: insights,
		TopPosts: posts,
	}
}

func (s *Service) Invalidate() {
	s.threadsService.Purge()
}

// CoerceDays converte o parâmetro `days` da query usando os dígitos iniciais ("14d" vira 14).
// Ausente, não numérico ou <= 0 vira 30.
func CoerceDays(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}

	days, err := strconv.Atoi(raw[:end])
	if err != nil || days <= 0 {
		return domain.DefaultDays
	}
	return days
}

// upstreamMessage retorna a mensagem do erro sem a URL da requisição, que carrega o token
func upstreamMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

// failureOf separa o erro devolvido pela Graph API das falhas de rede ou decodificação
func failureOf(err error) domain.ReportFailure {
	var apiErr *threadsdomain.APIError
	if errors.As(err, &apiErr) {
		return domain.FailureUpstream
	}
	return domain.FailureTransport
}

func insightsData(d *domain.InsightsData) []domain.InsightMetric {
	if d == nil {
		return nil
	}
	return d.Data
}
