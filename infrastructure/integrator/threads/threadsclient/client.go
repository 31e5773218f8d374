package threadsclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsdomain"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	profileFields = "id,username,threads_biography,threads_profile_picture_url"
	postFields    = "id,text,permalink,timestamp,media_type,media_url"
	postMetrics   = "views,likes,replies"
)

type Client interface {
	GetInsights(ctx context.Context, metrics []string, since, until time.Time) (*domain.InsightsData, error)
	GetProfile(ctx context.Context) (*domain.ThreadsProfile, error)
	GetRecentPosts(ctx context.Context, limit int) ([]threadsdomain.Post, error)
	GetPostInsights(ctx context.Context, postID string) (*threadsdomain.MediaInsightsResponse, error)
	RefreshToken(ctx context.Context) error
}

type ThreadsClient struct {
	Cfg          config.Threads
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg config.Threads, tokenManager *TokenManager, httpClient *http.Client) *ThreadsClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &ThreadsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   httpClient,
	}
}

// RefreshToken renova o token de longa duração
func (c *ThreadsClient) RefreshToken(ctx context.Context) error {
	return c.TokenManager.RefreshToken(ctx)
}

// GetInsights busca as métricas da conta no intervalo [since, until]
func (c *ThreadsClient) GetInsights(ctx context.Context, metrics []string, since, until time.Time) (*domain.InsightsData, error) {
	params := url.Values{}
	params.Add("metric", strings.Join(metrics, ","))
	params.Add("since", strconv.FormatInt(since.Unix(), 10))
	params.Add("until", strconv.FormatInt(until.Unix(), 10))

	var response domain.InsightsData
	if err := c.get(ctx, "/"+c.Cfg.UserID+"/threads_insights", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *ThreadsClient) GetProfile(ctx context.Context) (*domain.ThreadsProfile, error) {
	params := url.Values{}
	params.Add("fields", profileFields)

	var profile domain.ThreadsProfile
	if err := c.get(ctx, "/me", params, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetRecentPosts lista os posts mais recentes do usuário
func (c *ThreadsClient) GetRecentPosts(ctx context.Context, limit int) ([]threadsdomain.Post, error) {
	params := url.Values{}
	params.Add("fields", postFields)
	params.Add("limit", strconv.Itoa(limit))

	var response threadsdomain.PostsResponse
	if err := c.get(ctx, "/me/threads", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *ThreadsClient) GetPostInsights(ctx context.Context, postID string) (*threadsdomain.MediaInsightsResponse, error) {
	params := url.Values{}
	params.Add("metric", postMetrics)

	var response threadsdomain.MediaInsightsResponse
	if err := c.get(ctx, "/"+url.PathEscape(postID)+"/insights", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// get executa a requisição e tenta novamente uma única vez quando o token foi renovado
func (c *ThreadsClient) get(ctx context.Context, path string, params url.Values, out any) error {
	err := c.do(ctx, path, params, out)
	if errors.Is(err, ErrTokenRenewed) {
		logrus.WithField("path", path).Debug("threads: retrying request with renewed token")
		err = c.do(ctx, path, params, out)
	}
	return err
}

func (c *ThreadsClient) do(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.TokenManager.EnsureValidToken(ctx); err != nil {
		logrus.WithError(err).Warn("threads: token validation failed, using current token")
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("access_token", c.TokenManager.AccessToken())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Cfg.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "threads: build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = RedactURLError(err)
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("threads: request failed")
		return err
	}
	defer resp.Body.Close()

	body, err := c.TokenManager.HandleResponse(ctx, resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("threads: failed to decode response")
		return errors.Wrap(err, "threads: decode response")
	}

	return nil
}

// RedactURLError remove a query string (que carrega o access_token) de um *url.Error.
// O tipo é mantido para que a falha continue sendo reconhecida como erro de transporte.
func RedactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	redacted := urlErr.URL
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		u.Fragment = ""
		u.User = nil
		redacted = u.String()
	} else if i := strings.IndexByte(redacted, '?'); i >= 0 {
		redacted = redacted[:i]
	}

	return &url.Error{Op: urlErr.Op, URL: redacted, Err: urlErr.Err}
}
