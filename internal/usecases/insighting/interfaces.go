package insighting

import (
	"context"

	"github.com/somework/landing-api/internal/domain"
)

// Insighter monta o relatório de analytics do Threads
type Insighter interface {
	// GetAnalytics nunca retorna erro, as falhas são descritas no próprio relatório
	GetAnalytics(ctx context.Context, days int) *domain.AnalyticsReport

	// Invalidate descarta as métricas em cache para forçar uma nova consulta
	Invalidate()
}
