package aggregating

import (
	"time"

	"github.com/somework/landing-api/internal/domain"
)

// CountPoints converte eventos em pontos de valor 1, prontos para Bucketize ou BucketizeDense
func CountPoints(events []domain.RawEvent) []domain.TimedValue {
	points := make([]domain.TimedValue, 0, len(events))
	for _, e := range events {
		points = append(points, domain.TimedValue{Timestamp: e.Timestamp, Value: 1})
	}
	return points
}

func Timestamps(events []domain.RawEvent) []time.Time {
	timestamps := make([]time.Time, 0, len(events))
	for _, e := range events {
		timestamps = append(timestamps, e.Timestamp)
	}
	return timestamps
}

// TallyDimensions conta eventos por dimensão na ordem de chegada. Dimensão vazia conta como fallback.
func TallyDimensions(events []domain.RawEvent, fallback string) *Tally {
	tally := NewTally()
	for _, e := range events {
		name := e.Dimension
		if name == "" {
			name = fallback
		}
		tally.Inc(name)
	}
	return tally
}
