package threadsclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsdomain"
	"github.com/somework/landing-api/internal/config"
)

// ErrTokenRenewed indica que a requisição falhou por token expirado e o token já foi renovado
var ErrTokenRenewed = errors.New("token expirado e renovado, por favor tente novamente")

// TokenManager gerencia o token de longa duração da API do Threads
type TokenManager struct {
	cfg        config.Threads
	httpClient *http.Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	refreshMutex sync.Mutex
	now          func() time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg config.Threads, httpClient *http.Client) *TokenManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &TokenManager{
		cfg:        cfg,
		httpClient: httpClient,
		token:      cfg.AccessToken,
		expiresAt:  cfg.TokenExpiresAt,
		now:        time.Now,
	}
}

func (tm *TokenManager) AccessToken() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.token
}

func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

// RefreshToken troca o token atual por um novo token de longa duração
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.refreshMutex.Lock()
	defer tm.refreshMutex.Unlock()

	current := tm.AccessToken()
	if current == "" {
		return errors.New("token de acesso não pode ser vazio")
	}

	if exp := tm.ExpiresAt(); !exp.IsZero() && exp.Sub(tm.now()) < time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	endpoint, err := refreshEndpoint(tm.cfg.BaseURL)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Add("grant_type", "th_refresh_token")
	params.Add("access_token", current)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar requisição de renovação")
	}

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(RedactURLError(err), "erro ao renovar token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode != http.StatusOK {
		if apiErr := ParseErrorResponse(resp.StatusCode, body); apiErr != nil {
			return errors.Wrap(apiErr, "erro ao obter novo token de longa duração")
		}
		return errors.Errorf("erro ao obter novo token de longa duração. Status: %d", resp.StatusCode)
	}

	var tokenResp threadsdomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta")
	}

	if tokenResp.AccessToken == "" {
		return errors.New("token retornado pela API é vazio")
	}

	tm.mu.Lock()
	tm.token = tokenResp.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResp.ExpiresIn)
	expiresAt := tm.expiresAt
	tm.mu.Unlock()

	logrus.Infof("Token de longa duração atualizado com sucesso. Expira em %s (%s)",
		expiresAt.Format(time.RFC3339), FormatDuration(tokenResp.ExpiresIn))

	return nil
}

// EnsureValidToken renova proativamente o token quando faltam menos de 24 horas para expirar.
// Sem data de expiração conhecida nada é feito.
func (tm *TokenManager) EnsureValidToken(ctx context.Context) error {
	exp := tm.ExpiresAt()
	if exp.IsZero() {
		return nil
	}

	if exp.Sub(tm.now()) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken(ctx)
	}

	return nil
}

// HandleResponse lê o corpo da resposta e converte payloads de erro em *threadsdomain.APIError
func (tm *TokenManager) HandleResponse(ctx context.Context, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	apiErr := ParseErrorResponse(resp.StatusCode, body)
	if apiErr == nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &threadsdomain.APIError{StatusCode: resp.StatusCode}
		}
		return body, nil
	}

	if !apiErr.IsTokenExpired() {
		return nil, apiErr
	}

	logrus.Warnf("Token expirado detectado pela API do Threads. Código: %d, Subcódigo: %d",
		apiErr.Details.Code, apiErr.Details.ErrorSubcode)

	if refreshErr := tm.RefreshToken(ctx); refreshErr != nil {
		logrus.WithError(refreshErr).Error("Erro ao renovar token expirado")
		return nil, apiErr
	}

	return nil, ErrTokenRenewed
}

// ParseErrorResponse retorna o erro contido no corpo, ou nil quando não há erro
func ParseErrorResponse(statusCode int, body []byte) *threadsdomain.APIError {
	var errorResp threadsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == nil {
		return nil
	}

	return &threadsdomain.APIError{StatusCode: statusCode, Details: *errorResp.Error}
}

// refreshEndpoint monta a URL de renovação na raiz do host, fora do prefixo de versão
func refreshEndpoint(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "", errors.Errorf("threads base url inválida: %q", baseURL)
	}

	u.Path = "/refresh_access_token"
	u.RawQuery = ""
	return u.String(), nil
}
