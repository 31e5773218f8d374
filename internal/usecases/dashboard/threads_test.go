package dashboard

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/somework/landing-api/infrastructure/integrator/threads/mocks"
	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/usecases/aggregating"
	"github.com/somework/landing-api/internal/usecases/insighting"
)

type reporterFunc func(ctx context.Context, days int) *domain.AnalyticsReport

func (f reporterFunc) GetAnalytics(ctx context.Context, days int) *domain.AnalyticsReport {
	return f(ctx, days)
}

func TestThreadsSource_Fetch(t *testing.T) {
	tests := []struct {
		name     string
		report   *domain.AnalyticsReport
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name:     "useDummy vira credenciais ausentes",
			report:   &domain.AnalyticsReport{UseDummy: true, Message: "Credentials missing"},
			wantKind: KindUnconfigured,
			wantMsg:  "Credentials missing",
		},
		{
			name:     "Erro da API vira upstream",
			report:   &domain.AnalyticsReport{Error: "Insights Error: Invalid metric", Failure: domain.FailureUpstream},
			wantKind: KindUpstream,
			wantMsg:  "Insights Error: Invalid metric",
		},
		{
			name: "Falha de rede vira transporte",
			report: &domain.AnalyticsReport{
				Error:   "Insights Error: dial tcp: connection refused",
				Failure: domain.FailureTransport,
			},
			wantKind: KindTransport,
			wantMsg:  "Insights Error: dial tcp: connection refused",
		},
		{
			name: "Panic no relatório vira transform",
			report: &domain.AnalyticsReport{
				Error:   "Server Error: nil map",
				Failure: domain.FailureInternal,
			},
			wantKind: KindTransform,
			wantMsg:  "Server Error: nil map",
		},
		{
			name:     "Resposta vazia",
			report:   &domain.AnalyticsReport{Error: "No data returned from Threads API (Empty Response)", Empty: true},
			wantKind: KindEmptyResult,
			wantMsg:  "No data returned from Threads API (Empty Response)",
		},
		{
			name:     "Relatório nulo",
			report:   nil,
			wantKind: KindEmptyResult,
			wantMsg:  "No data returned from Threads API (Empty Response)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewThreadsSource(reporterFunc(func(ctx context.Context, days int) *domain.AnalyticsReport {
				return tt.report
			}))

			_, err := source.Fetch(context.Background(), domain.TimeRange30d)
			require.Error(t, err)

			loadErr := Classify(err)
			assert.Equal(t, tt.wantKind, loadErr.Kind)
			assert.Equal(t, tt.wantMsg, loadErr.Message)
		})
	}
}

func TestThreadsDashboard_FalhaDeRedePublicaTransporte(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockThreadsIntegrator(ctrl)
	integrator.EXPECT().Configured().Return(true)
	integrator.EXPECT().GetProfile(gomock.Any()).Return(nil, errors.New("boom"))
	integrator.EXPECT().GetInsights(gomock.Any(), 30).Return(nil, &url.Error{
		Op:  "Get",
		URL: "https://graph.threads.net/v1.0/U1/threads_insights?access_token=secret",
		Err: errors.New("dial tcp: connection refused"),
	})

	source := NewThreadsSource(insighting.NewService(integrator))
	dashboard := NewController[*domain.AnalyticsReport](ThreadsDashboard, source,
		BuildThreadsSnapshot(aggregating.New(time.UTC), time.Now))

	state := dashboard.Load(domain.TimeRange30d).Wait(waitCtx(t))

	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, KindTransport, state.ErrorKind)
	assert.Equal(t, "Insights Error: dial tcp: connection refused", state.Error)
}

func TestThreadsSource_FetchUsaDiasDoRange(t *testing.T) {
	var gotDays int
	source := NewThreadsSource(reporterFunc(func(ctx context.Context, days int) *domain.AnalyticsReport {
		gotDays = days
		return &domain.AnalyticsReport{}
	}))

	report, err := source.Fetch(context.Background(), domain.TimeRange90d)
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, 90, gotDays)
}

func TestBuildThreadsSnapshot(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	agg := aggregating.New(time.UTC)

	report := &domain.AnalyticsReport{
		Insights: &domain.InsightsData{Data: []domain.InsightMetric{
			{Name: "views", Values: []domain.InsightValue{
				{Value: 3, EndTime: "2024-01-08T10:00:00+0000"},
				{Value: 2, EndTime: "2024-01-08T14:00:00+0000"},
				{Value: 5, EndTime: "2024-01-09T09:00:00+0000"},
			}},
			{Name: "likes", TotalValue: &domain.InsightTotal{Value: 12}},
			{Name: "replies", Values: []domain.InsightValue{{Value: 1, EndTime: "2024-01-08T10:00:00+0000"}, {Value: 2, EndTime: "2024-01-09T10:00:00+0000"}}},
			{Name: "followers_count", TotalValue: &domain.InsightTotal{Value: 250}},
		}},
		TopPosts: []domain.ThreadsPost{
			{ID: "P1", Text: "primeiro", Views: 40, Likes: 4},
			{ID: "P2", Text: "", Views: 90, Likes: 9},
		},
	}

	build := BuildThreadsSnapshot(agg, func() time.Time { return now })
	snapshot, err := build(report, domain.TimeRange7d)
	require.NoError(t, err)

	total, ok := snapshot.Total(LabelTotalViews)
	require.True(t, ok)
	assert.Equal(t, 10.0, total)

	followers, _ := snapshot.Total(LabelFollowers)
	likes, _ := snapshot.Total(LabelLikes)
	replies, _ := snapshot.Total(LabelReplies)
	assert.Equal(t, 250.0, followers)
	assert.Equal(t, 12.0, likes)
	assert.Equal(t, 3.0, replies)

	assert.Equal(t, []domain.Bucket{{Label: "Mon", Value: 5}, {Label: "Tue", Value: 5}}, snapshot.Series)
	assert.Equal(t, []domain.Bucket{{Label: LabelLikes, Value: 12}, {Label: LabelReplies, Value: 3}}, snapshot.Breakdown)
	assert.Equal(t, []domain.RankedItem{{Name: "P2", Count: 90}, {Name: "P1", Count: 40}}, snapshot.RankedTop)

	require.Len(t, snapshot.Posts, 2)
	assert.Equal(t, "(No text)", snapshot.Posts[1].Content)
	assert.Equal(t, now, snapshot.GeneratedAt)
}

func TestBuildThreadsSnapshot_ValorSemEndTime(t *testing.T) {
	build := BuildThreadsSnapshot(aggregating.New(time.UTC), time.Now)
	report := &domain.AnalyticsReport{
		Insights: &domain.InsightsData{Data: []domain.InsightMetric{
			{Name: "views", Values: []domain.InsightValue{
				{Value: 5, EndTime: "2024-01-05T08:00:00+0000"},
				{Value: 3},
			}},
		}},
	}

	snapshot, err := build(report, domain.TimeRange30d)
	require.NoError(t, err)

	total, _ := snapshot.Total(LabelTotalViews)
	assert.Equal(t, 8.0, total)
	assert.Equal(t, []domain.Bucket{
		{Label: "Jan 5", Value: 5},
		{Label: aggregating.InvalidDateLabel, Value: 3},
	}, snapshot.Series)
}

func TestBuildThreadsSnapshot_SemInsights(t *testing.T) {
	build := BuildThreadsSnapshot(aggregating.New(time.UTC), time.Now)

	snapshot, err := build(&domain.AnalyticsReport{}, domain.TimeRange30d)
	require.NoError(t, err)

	total, ok := snapshot.Total(LabelTotalViews)
	assert.True(t, ok)
	assert.Equal(t, 0.0, total)
	assert.Empty(t, snapshot.Series)
	assert.Empty(t, snapshot.RankedTop)
}
