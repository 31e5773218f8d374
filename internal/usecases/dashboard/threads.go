package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/usecases/aggregating"
)

const (
	ThreadsDashboard = "threads"

	LabelTotalViews = "Total Views"
	LabelFollowers  = "Followers"
	LabelLikes      = "Likes"
	LabelReplies    = "Replies"

	noTextContent = "(No text)"
)

// AnalyticsReporter gera o relatório do endpoint /api/analytics
type AnalyticsReporter interface {
	GetAnalytics(ctx context.Context, days int) *domain.AnalyticsReport
}

type ThreadsSource struct {
	reporter AnalyticsReporter
}

func NewThreadsSource(reporter AnalyticsReporter) *ThreadsSource {
	return &ThreadsSource{reporter: reporter}
}

// Fetch converte as flags do relatório em erros classificados
func (s *ThreadsSource) Fetch(ctx context.Context, rng domain.TimeRange) (*domain.AnalyticsReport, error) {
	report := s.reporter.GetAnalytics(ctx, rng.Days())

	switch {
	case report == nil:
		return nil, EmptyResult("No data returned from Threads API (Empty Response)")
	case report.UseDummy:
		return nil, Unconfigured(report.Message)
	case report.Error != "" && report.Empty:
		return nil, EmptyResult(report.Error)
	case report.Error != "" && report.Failure == domain.FailureTransport:
		return nil, Transport(errors.New(report.Error))
	case report.Error != "" && report.Failure == domain.FailureInternal:
		return nil, Transform(errors.New(report.Error))
	case report.Error != "":
		return nil, Upstream(report.Error)
	}

	return report, nil
}

// BuildThreadsSnapshot monta os cards, o gráfico de views, o engajamento e os top posts
func BuildThreadsSnapshot(agg *aggregating.Aggregator, now func() time.Time) BuildFunc[*domain.AnalyticsReport] {
	return func(report *domain.AnalyticsReport, rng domain.TimeRange) (*domain.DashboardSnapshot, error) {
		views := report.Insights.Find("views").Series()
		likes := aggregating.MetricTotal(report.Insights.Find("likes").Series())
		replies := aggregating.MetricTotal(report.Insights.Find("replies").Series())
		followers := aggregating.MetricTotal(report.Insights.Find("followers_count").Series())

		tally := aggregating.NewTally()
		posts := make([]domain.PostSummary, 0, len(report.TopPosts))
		for _, p := range report.TopPosts {
			content := p.Text
			if content == "" {
				content = noTextContent
			}

			posts = append(posts, domain.PostSummary{
				ID:      p.ID,
				Content: content,
				Views:   p.Views,
				Likes:   p.Likes,
			})
			tally.Add(p.ID, p.Views)
		}

		return &domain.DashboardSnapshot{
			Range: rng,
			OverviewTotals: []domain.OverviewTotal{
				{Label: LabelTotalViews, Value: aggregating.MetricTotal(views)},
				{Label: LabelFollowers, Value: followers},
				{Label: LabelLikes, Value: likes},
				{Label: LabelReplies, Value: replies},
			},
			Series: agg.Bucketize(views.Points, rng),
			Breakdown: []domain.Bucket{
				{Label: LabelLikes, Value: likes},
				{Label: LabelReplies, Value: replies},
			},
			RankedTop:   aggregating.RankTop(tally.Items(), aggregating.DefaultRankLimit),
			Posts:       posts,
			GeneratedAt: now(),
		}, nil
	}
}
