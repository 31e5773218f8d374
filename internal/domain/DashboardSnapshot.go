package domain

import "time"

// Bucket é um ponto agregado (label, valor) que alimenta um gráfico
type Bucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RankedItem item de um ranking (nome, contagem)
type RankedItem struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

// OverviewTotal total exibido nos cards do dashboard
type OverviewTotal struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PostSummary resumo de um post para a tabela de top posts
type PostSummary struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Views   float64 `json:"views"`
	Likes   float64 `json:"likes"`
}

// DashboardSnapshot é o resultado completo de uma passada de agregação.
// É reconstruído a cada fetch e nunca alterado depois de publicado.
type DashboardSnapshot struct {
	Range          TimeRange       `json:"range"`
	OverviewTotals []OverviewTotal `json:"overview_totals"`
	Series         []Bucket        `json:"series"`
	Breakdown      []Bucket        `json:"breakdown,omitempty"`
	RankedTop      []RankedItem    `json:"ranked_top"`
	Posts          []PostSummary   `json:"posts,omitempty"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// Total retorna o valor do card pelo label
func (s *DashboardSnapshot) Total(label string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	for _, t := range s.OverviewTotals {
		if t.Label == label {
			return t.Value, true
		}
	}
	return 0, false
}

// ResourceStats contagem exibida no dashboard principal do admin
type ResourceStats struct {
	FreeResources  int `json:"free_resources"`
	PaidResources  int `json:"paid_resources"`
	TotalResources int `json:"total_resources"`
}
