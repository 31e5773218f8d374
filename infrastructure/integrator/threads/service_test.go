package threads

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/somework/landing-api/infrastructure/integrator/threads/mocks"
	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsdomain"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/domain"
)

type fakeRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (f *fakeRecorder) IncThreadsCache(result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[result]++
}

func TestThreadsService_GetInsights_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	recorder := &fakeRecorder{}
	now := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	svc := New(config.Threads{UserID: "U1", AccessToken: "t", CacheSize: 8, CacheTTL: time.Minute}, client, recorder)
	svc.now = func() time.Time { return now }

	data := &domain.InsightsData{Data: []domain.InsightMetric{{Name: "views"}}}

	client.EXPECT().
		GetInsights(gomock.Any(), AccountMetrics, now.Add(-30*24*time.Hour), now).
		Return(data, nil).
		Times(1)

	first, err := svc.GetInsights(context.Background(), 30)
	require.NoError(t, err)
	second, err := svc.GetInsights(context.Background(), 30)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, recorder.counts[cacheMiss])
	assert.Equal(t, 1, recorder.counts[cacheHit])

	svc.Purge()
	client.EXPECT().GetInsights(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(data, nil)
	_, err = svc.GetInsights(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 2, recorder.counts[cacheMiss])
}

func TestThreadsService_GetInsights_ErroNaoVaiParaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	svc := New(config.Threads{CacheSize: 8, CacheTTL: time.Minute}, client, nil)

	client.EXPECT().
		GetInsights(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(2)

	_, err := svc.GetInsights(context.Background(), 7)
	assert.Error(t, err)
	_, err = svc.GetInsights(context.Background(), 7)
	assert.Error(t, err)
}

func TestThreadsService_GetTopPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	svc := New(config.Threads{MaxConcurrency: 2}, client, nil)

	client.EXPECT().GetRecentPosts(gomock.Any(), 5).Return([]threadsdomain.Post{
		{ID: "P1", Text: "primeiro"},
		{ID: "P2", Text: "segundo"},
		{ID: "P3", Text: "terceiro"},
	}, nil)

	client.EXPECT().GetPostInsights(gomock.Any(), "P1").Return(&threadsdomain.MediaInsightsResponse{
		Data: []domain.InsightMetric{
			{Name: "views", Values: []domain.InsightValue{{Value: 10}}},
			{Name: "likes", Values: []domain.InsightValue{{Value: 2}}},
		},
	}, nil)
	client.EXPECT().GetPostInsights(gomock.Any(), "P2").Return(nil, errors.New("timeout"))
	client.EXPECT().GetPostInsights(gomock.Any(), "P3").Return(&threadsdomain.MediaInsightsResponse{
		Data: []domain.InsightMetric{{Name: "views", Values: []domain.InsightValue{{Value: 30}}}},
	}, nil)

	posts, err := svc.GetTopPosts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "P1", posts[0].ID)
	assert.Equal(t, 10.0, posts[0].Views)
	assert.Equal(t, 2.0, posts[0].Likes)
	assert.Equal(t, 0.0, posts[1].Views)
	assert.Equal(t, 0.0, posts[1].Likes)
	assert.Equal(t, 30.0, posts[2].Views)
	assert.Equal(t, 0.0, posts[2].Likes)
}

func TestThreadsService_Configured(t *testing.T) {
	assert.False(t, New(config.Threads{UserID: "U1"}, nil, nil).Configured())
	assert.True(t, New(config.Threads{UserID: "U1", AccessToken: "t"}, nil, nil).Configured())
}
