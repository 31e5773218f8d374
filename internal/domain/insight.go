package domain

import (
	"bytes"
	"strconv"
	"time"
)

// FlexFloat aceita número, string numérica ou null. Valores ausentes ou
// malformados viram 0 em vez de falhar a decodificação.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// TimedValue é um ponto bruto (evento ou valor de métrica) antes da agregação.
// Timestamp zero marca um ponto cujo end_time não pôde ser lido.
type TimedValue struct {
	Timestamp time.Time
	Value     float64
}

// HasTime indica se o ponto tem um timestamp válido
func (v TimedValue) HasTime() bool {
	return !v.Timestamp.IsZero()
}

// MetricSeries é o snapshot de uma métrica retornada pelo InsightsGateway
type MetricSeries struct {
	Name       string       `json:"name"`
	Points     []TimedValue `json:"points"`
	TotalValue *float64     `json:"total_value,omitempty"`
}

// ThreadsProfile campos básicos do perfil retornados por /me
type ThreadsProfile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Biography         string `json:"threads_biography,omitempty"`
	ProfilePictureURL string `json:"threads_profile_picture_url,omitempty"`
}

// ThreadsPost post recente acompanhado das métricas individuais
type ThreadsPost struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Permalink string    `json:"permalink,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
	MediaType string    `json:"media_type,omitempty"`
	MediaURL  string    `json:"media_url,omitempty"`
	Views     float64   `json:"views"`
	Likes     float64   `json:"likes"`
	FetchedAt time.Time `json:"-"`
}

// InsightsData mantém o formato original da API ({ data: [...] })
type InsightsData struct {
	Data []InsightMetric `json:"data"`
}

// InsightMetric métrica no formato da Graph API
type InsightMetric struct {
	Name       string         `json:"name"`
	Period     string         `json:"period,omitempty"`
	Values     []InsightValue `json:"values,omitempty"`
	TotalValue *InsightTotal  `json:"total_value,omitempty"`
	Title      string         `json:"title,omitempty"`
	ID         string         `json:"id,omitempty"`
}

type InsightValue struct {
	Value   FlexFloat `json:"value"`
	EndTime string    `json:"end_time,omitempty"`
}

type InsightTotal struct {
	Value FlexFloat `json:"value"`
}

// Find retorna a métrica pelo nome, ou nil
func (d *InsightsData) Find(name string) *InsightMetric {
	if d == nil {
		return nil
	}
	for i := range d.Data {
		if d.Data[i].Name == name {
			return &d.Data[i]
		}
	}
	return nil
}

// graphTimeLayout é o formato de end_time da Graph API (ex: 2024-01-05T08:00:00+0000)
const graphTimeLayout = "2006-01-02T15:04:05-0700"

// ParseGraphTime aceita o formato da Graph API e RFC3339
func ParseGraphTime(s string) (time.Time, bool) {
	if t, err := time.Parse(graphTimeLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Series converte a métrica para MetricSeries. Pontos sem end_time válido são mantidos
// com timestamp zero para que o total da série continue igual à soma dos valores.
func (m *InsightMetric) Series() MetricSeries {
	if m == nil {
		return MetricSeries{}
	}

	series := MetricSeries{
		Name:   m.Name,
		Points: make([]TimedValue, 0, len(m.Values)),
	}

	for _, v := range m.Values {
		ts, _ := ParseGraphTime(v.EndTime)
		series.Points = append(series.Points, TimedValue{Timestamp: ts, Value: v.Value.Float64()})
	}

	if m.TotalValue != nil {
		total := m.TotalValue.Value.Float64()
		series.TotalValue = &total
	}

	return series
}

// ReportFailure origem do erro de um AnalyticsReport. Não faz parte do JSON.
type ReportFailure string

const (
	FailureNone      ReportFailure = ""
	FailureUpstream  ReportFailure = "upstream"
	FailureTransport ReportFailure = "transport"
	FailureInternal  ReportFailure = "internal"
)

// AnalyticsReport é a resposta de GET /api/analytics
type AnalyticsReport struct {
	UseDummy bool            `json:"useDummy"`
	Message  string          `json:"message,omitempty"`
	Error    string          `json:"error,omitempty"`
	Profile  *ThreadsProfile `json:"profile,omitempty"`
	Insights *InsightsData   `json:"insights,omitempty"`
	TopPosts []ThreadsPost   `json:"topPosts,omitempty"`

	// Empty indica que a API respondeu sem nenhum dado utilizável
	Empty   bool          `json:"-"`
	Failure ReportFailure `json:"-"`
}
