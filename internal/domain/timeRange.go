package domain

import (
	"strconv"
	"strings"
)

// TimeRange é a janela selecionável dos dashboards (7, 30, 90 ou 365 dias)
type TimeRange string

const (
	TimeRange7d   TimeRange = "7d"
	TimeRange30d  TimeRange = "30d"
	TimeRange90d  TimeRange = "90d"
	TimeRange365d TimeRange = "365d"

	// DefaultDays é usado quando o range não informa uma quantidade de dias válida
	DefaultDays = 30
)

// Granularity define como um timestamp vira label de bucket
type Granularity int

const (
	GranularityDate Granularity = iota
	GranularityWeekday
	GranularityMonthDay
	GranularityMonth
)

var knownRanges = map[TimeRange]Granularity{
	TimeRange7d:   GranularityWeekday,
	TimeRange30d:  GranularityMonthDay,
	TimeRange90d:  GranularityMonthDay,
	TimeRange365d: GranularityMonth,
}

// ParseTimeRange normaliza o valor recebido. Valores desconhecidos são mantidos
// como estão, o Aggregator trata com o label de data padrão.
func ParseTimeRange(raw string, fallback TimeRange) TimeRange {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return fallback
	}
	return TimeRange(raw)
}

func (r TimeRange) IsKnown() bool {
	_, ok := knownRanges[r]
	return ok
}

func (r TimeRange) Granularity() Granularity {
	if g, ok := knownRanges[r]; ok {
		return g
	}
	return GranularityDate
}

// Days extrai a quantidade de dias do range ("7d" -> 7). Para valores que não
// seguem o formato "<n>d" retorna DefaultDays.
func (r TimeRange) Days() int {
	days, err := strconv.Atoi(strings.TrimSuffix(string(r), "d"))
	if err != nil || days <= 0 {
		return DefaultDays
	}
	return days
}

func (r TimeRange) String() string {
	return string(r)
}
