package threadsclient

import (
	"fmt"
	"time"
)

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration calcula quando o token deve ser renovado, um dia antes da expiração real
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
