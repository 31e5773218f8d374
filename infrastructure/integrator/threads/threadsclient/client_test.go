package threadsclient

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsdomain"
	"github.com/somework/landing-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ThreadsClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Threads{
		BaseURL:     srv.URL + "/v1.0",
		UserID:      "U1",
		AccessToken: "token-1",
		HTTPTimeout: 5 * time.Second,
	}

	tm := NewTokenManager(cfg, srv.Client())
	return NewClient(cfg, tm, srv.Client()), srv
}

func TestThreadsClient_GetInsights(t *testing.T) {
	since := time.Unix(1700000000, 0)
	until := time.Unix(1702592000, 0)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.0/U1/threads_insights", r.URL.Path)
		assert.Equal(t, "views,likes", r.URL.Query().Get("metric"))
		assert.Equal(t, "1700000000", r.URL.Query().Get("since"))
		assert.Equal(t, "1702592000", r.URL.Query().Get("until"))
		assert.Equal(t, "token-1", r.URL.Query().Get("access_token"))

		_, _ = w.Write([]byte(`{"data":[
			{"name":"views","period":"day","values":[{"value":10,"end_time":"2024-01-05T08:00:00+0000"},{"value":"5","end_time":"2024-01-06T08:00:00+0000"}]},
			{"name":"likes","period":"day","total_value":{"value":7}}
		]}`))
	})

	data, err := client.GetInsights(context.Background(), []string{"views", "likes"}, since, until)
	require.NoError(t, err)
	require.Len(t, data.Data, 2)

	views := data.Find("views")
	require.NotNil(t, views)
	assert.Len(t, views.Values, 2)
	assert.Equal(t, 5.0, views.Values[1].Value.Float64())
	assert.Equal(t, 7.0, data.Find("likes").TotalValue.Value.Float64())
}

func TestThreadsClient_ErroDaAPI(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid metric","type":"THApiException","code":100}}`))
	})

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)

	var apiErr *threadsdomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid metric", apiErr.Error())
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.False(t, apiErr.IsTokenExpired())
}

func TestThreadsClient_FalhaDeRedeNaoExpoeToken(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.StandardLogger()
	previous := logger.Out
	logger.SetOutput(&buf)
	defer logger.SetOutput(previous)

	srv := httptest.NewServer(http.NotFoundHandler())
	cfg := config.Threads{
		BaseURL:     srv.URL + "/v1.0",
		UserID:      "U1",
		AccessToken: "SECRET-TOKEN-123",
		HTTPTimeout: time.Second,
	}
	client := NewClient(cfg, NewTokenManager(cfg, srv.Client()), srv.Client())
	srv.Close()

	_, err := client.GetInsights(context.Background(), []string{"views"}, time.Unix(0, 0), time.Unix(60, 0))
	require.Error(t, err)

	var urlErr *url.Error
	require.True(t, errors.As(err, &urlErr))
	assert.NotContains(t, err.Error(), "SECRET-TOKEN-123")
	assert.Contains(t, err.Error(), "/v1.0/U1/threads_insights")
	assert.Contains(t, buf.String(), "threads: request failed")
	assert.NotContains(t, buf.String(), "SECRET-TOKEN-123")
}

func TestRedactURLError(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, plain, RedactURLError(plain))

	err := RedactURLError(&url.Error{
		Op:  "Get",
		URL: "https://graph.threads.net/v1.0/me?fields=id&access_token=abc",
		Err: errors.New("dial tcp: connection refused"),
	})
	assert.Equal(t, `Get "https://graph.threads.net/v1.0/me": dial tcp: connection refused`, err.Error())
}

func TestThreadsClient_ErroNoCorpoComStatus200(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"Unsupported get request","code":100}}`))
	})

	_, err := client.GetRecentPosts(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, "Unsupported get request", err.Error())
}

func TestThreadsClient_TokenExpiradoRenovaERepete(t *testing.T) {
	var calls int32

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/refresh_access_token":
			assert.Equal(t, "th_refresh_token", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "token-1", r.URL.Query().Get("access_token"))
			_, _ = w.Write([]byte(`{"access_token":"token-2","token_type":"bearer","expires_in":5184000}`))
		case "/v1.0/me":
			atomic.AddInt32(&calls, 1)
			if r.URL.Query().Get("access_token") == "token-1" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":"1","username":"somework"}`))
		default:
			t.Errorf("caminho inesperado: %s", r.URL.Path)
		}
	})

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "somework", profile.Username)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, "token-2", client.TokenManager.AccessToken())
	assert.False(t, client.TokenManager.ExpiresAt().IsZero())
}

func TestThreadsClient_GetPostInsights(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.0/P1/insights", r.URL.Path)
		assert.Equal(t, "views,likes,replies", r.URL.Query().Get("metric"))
		_, _ = w.Write([]byte(`{"data":[{"name":"views","values":[{"value":120}]},{"name":"likes","values":[{"value":9}]}]}`))
	})

	resp, err := client.GetPostInsights(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, 120.0, resp.FirstValue("views"))
	assert.Equal(t, 9.0, resp.FirstValue("likes"))
	assert.Equal(t, 0.0, resp.FirstValue("replies"))
}

func TestTokenManager_EnsureValidToken(t *testing.T) {
	var refreshed int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshed, 1)
		_, _ = w.Write([]byte(`{"access_token":"novo","expires_in":5184000}`))
	}))
	defer srv.Close()

	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		expiresAt     time.Time
		wantRefreshed int32
	}{
		{name: "Sem data de expiração não renova", expiresAt: time.Time{}, wantRefreshed: 0},
		{name: "Expiração distante não renova", expiresAt: now.Add(72 * time.Hour), wantRefreshed: 0},
		{name: "Menos de 24 horas renova", expiresAt: now.Add(2 * time.Hour), wantRefreshed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atomic.StoreInt32(&refreshed, 0)

			tm := NewTokenManager(config.Threads{
				BaseURL:        srv.URL + "/v1.0",
				AccessToken:    "antigo",
				TokenExpiresAt: tt.expiresAt,
			}, srv.Client())
			tm.now = func() time.Time { return now }

			require.NoError(t, tm.EnsureValidToken(context.Background()))
			assert.Equal(t, tt.wantRefreshed, atomic.LoadInt32(&refreshed))
		})
	}
}

func TestRefreshEndpoint(t *testing.T) {
	endpoint, err := refreshEndpoint("https://graph.threads.net/v1.0")
	require.NoError(t, err)
	assert.Equal(t, "https://graph.threads.net/refresh_access_token", endpoint)

	_, err = refreshEndpoint("graph")
	assert.Error(t, err)
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(59*24*time.Hour), CalculateTokenExpiration(now, 60*24*60*60))
	assert.Equal(t, now.Add(30*time.Minute), CalculateTokenExpiration(now, 3600))
	assert.Equal(t, "2 dias, 3 horas e 4 minutos", FormatDuration(2*86400+3*3600+4*60))
}
