package threadsdomain

import "github.com/somework/landing-api/internal/domain"

// Post item retornado por /me/threads
type Post struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
}

type PostsResponse struct {
	Data []Post `json:"data"`
}

// MediaInsightsResponse resposta de /{media-id}/insights
type MediaInsightsResponse struct {
	Data []domain.InsightMetric `json:"data"`
}

// FirstValue retorna o primeiro valor da métrica, ou 0 quando ela não existe
func (r *MediaInsightsResponse) FirstValue(name string) float64 {
	for _, m := range r.Data {
		if m.Name != name {
			continue
		}
		if len(m.Values) > 0 {
			return m.Values[0].Value.Float64()
		}
		if m.TotalValue != nil {
			return m.TotalValue.Value.Float64()
		}
		return 0
	}
	return 0
}

// TokenResponse resposta de /refresh_access_token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
