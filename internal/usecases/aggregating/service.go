package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/somework/landing-api/internal/domain"
)

const (
	DefaultRankLimit = 5
	HoursPerDay      = 24

	weekdayLayout  = "Mon"
	monthDayLayout = "Jan 2"
	monthLayout    = "Jan"
	dateLayout     = "1/2/2006"
	dayKeyLayout   = "2006-01-02"

	// InvalidDateLabel agrupa pontos sem timestamp válido
	InvalidDateLabel = "Invalid Date"
)

// Aggregator transforma eventos e métricas brutas em buckets prontos para gráfico.
// Não faz I/O e não guarda estado mutável; o único parâmetro é o fuso usado para
// calcular dia e hora "locais".
type Aggregator struct {
	loc *time.Location
}

func New(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{loc: loc}
}

func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// Label calcula o label do bucket para o timestamp conforme a granularidade do range
func (a *Aggregator) Label(ts time.Time, rng domain.TimeRange) string {
	if ts.IsZero() {
		return InvalidDateLabel
	}
	ts = ts.In(a.loc)

	switch rng.Granularity() {
	case domain.GranularityWeekday:
		return ts.Format(weekdayLayout)
	case domain.GranularityMonthDay:
		return ts.Format(monthDayLayout)
	case domain.GranularityMonth:
		return ts.Format(monthLayout)
	default:
		return ts.Format(dateLayout)
	}
}

// Bucketize soma os valores por label, na ordem em que cada label aparece pela primeira vez.
// Dias sem eventos não geram bucket.
func (a *Aggregator) Bucketize(points []domain.TimedValue, rng domain.TimeRange) []domain.Bucket {
	buckets := make([]domain.Bucket, 0)
	index := make(map[string]int)

	for _, p := range points {
		label := a.Label(p.Timestamp, rng)

		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, domain.Bucket{Label: label})
		}

		buckets[i].Value += p.Value
	}

	return buckets
}

// BucketizeDense gera exatamente windowDays buckets terminando no dia de anchor (inclusive),
// em ordem cronológica e zerados antes da contagem. Eventos fora da janela são ignorados.
func (a *Aggregator) BucketizeDense(points []domain.TimedValue, anchor time.Time, windowDays int) []domain.Bucket {
	if windowDays <= 0 {
		return []domain.Bucket{}
	}

	anchor = anchor.In(a.loc)
	y, m, d := anchor.Date()

	buckets := make([]domain.Bucket, windowDays)
	index := make(map[string]int, windowDays)

	for i := 0; i < windowDays; i++ {
		day := time.Date(y, m, d-(windowDays-1-i), 0, 0, 0, 0, a.loc)
		buckets[i] = domain.Bucket{Label: day.Format(monthDayLayout)}
		index[day.Format(dayKeyLayout)] = i
	}

	for _, p := range points {
		if !p.HasTime() {
			continue
		}
		if i, ok := index[p.Timestamp.In(a.loc).Format(dayKeyLayout)]; ok {
			buckets[i].Value += p.Value
		}
	}

	return buckets
}

// BucketizeByHourOfDay conta eventos por hora local. Sempre retorna 24 buckets "00:00".."23:00".
func (a *Aggregator) BucketizeByHourOfDay(timestamps []time.Time) []domain.Bucket {
	buckets := make([]domain.Bucket, HoursPerDay)
	for h := range buckets {
		buckets[h].Label = fmt.Sprintf("%02d:00", h)
	}

	for _, ts := range timestamps {
		buckets[ts.In(a.loc).Hour()].Value++
	}

	return buckets
}

// RankTop ordena de forma decrescente pela contagem. Empates mantêm a ordem de entrada.
func RankTop(counts []domain.RankedItem, limit int) []domain.RankedItem {
	if limit <= 0 {
		limit = DefaultRankLimit
	}

	ranked := make([]domain.RankedItem, len(counts))
	copy(ranked, counts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// SumValues retorna 0 para entrada vazia
func SumValues(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// MetricTotal usa o total_value da API quando existir; caso contrário soma todos os pontos,
// inclusive os sem timestamp válido
func MetricTotal(series domain.MetricSeries) float64 {
	if series.TotalValue != nil {
		return *series.TotalValue
	}

	values := make([]float64, 0, len(series.Points))
	for _, p := range series.Points {
		values = append(values, p.Value)
	}

	return SumValues(values)
}
