package dashboard

import (
	"context"
	"time"

	"github.com/somework/landing-api/infrastructure/repository"
	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/usecases/aggregating"
	"github.com/somework/landing-api/pkg/log"
)

const (
	WebDashboard = "web"

	LabelTotalVisitors = "Total Visitors"
	LabelVisitorsToday = "Visitors Today"

	unknownResource = "Unknown"
)

// WebData dados brutos do dashboard de tráfego da landing page
type WebData struct {
	TotalVisitors int
	VisitorsToday int
	Views         []domain.RawEvent
	Clicks        []domain.RawEvent
	Anchor        time.Time
}

type WebSource struct {
	pageViews repository.PageViewRepository
	clicks    repository.ResourceClickRepository
	loc       *time.Location
	now       func() time.Time
}

func NewWebSource(
	pageViews repository.PageViewRepository,
	clicks repository.ResourceClickRepository,
	loc *time.Location,
	now func() time.Time,
) *WebSource {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}

	return &WebSource{
		pageViews: pageViews,
		clicks:    clicks,
		loc:       loc,
		now:       now,
	}
}

func (s *WebSource) Fetch(ctx context.Context, rng domain.TimeRange) (*WebData, error) {
	now := s.now().In(s.loc)
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	windowStart := now.AddDate(0, 0, -rng.Days())

	total, err := s.pageViews.Count(ctx, nil)
	if err != nil {
		return nil, Transport(err)
	}

	today, err := s.pageViews.Count(ctx, &midnight)
	if err != nil {
		return nil, Transport(err)
	}

	views, err := s.pageViews.ListEventsSince(ctx, windowStart)
	if err != nil {
		return nil, Transport(err)
	}

	// Sem cliques o dashboard continua válido, apenas com o ranking vazio
	clicks, err := s.clicks.ListEvents(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("dashboard: failed to list resource clicks")
		clicks = nil
	}

	return &WebData{
		TotalVisitors: total,
		VisitorsToday: today,
		Views:         views,
		Clicks:        clicks,
		Anchor:        now,
	}, nil
}

// BuildWebSnapshot monta a tendência diária com zero-fill, o histograma por hora e o top de cliques
func BuildWebSnapshot(agg *aggregating.Aggregator, now func() time.Time) BuildFunc[*WebData] {
	return func(data *WebData, rng domain.TimeRange) (*domain.DashboardSnapshot, error) {
		tally := aggregating.TallyDimensions(data.Clicks, unknownResource)

		return &domain.DashboardSnapshot{
			Range: rng,
			OverviewTotals: []domain.OverviewTotal{
				{Label: LabelTotalVisitors, Value: float64(data.TotalVisitors)},
				{Label: LabelVisitorsToday, Value: float64(data.VisitorsToday)},
			},
			Series:      agg.BucketizeDense(aggregating.CountPoints(data.Views), data.Anchor, rng.Days()),
			Breakdown:   agg.BucketizeByHourOfDay(aggregating.Timestamps(data.Views)),
			RankedTop:   aggregating.RankTop(tally.Items(), aggregating.DefaultRankLimit),
			GeneratedAt: now(),
		}, nil
	}
}
