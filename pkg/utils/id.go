package utils

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength = 6
)

// GenerateRunID identificador curto das execuções dos agendadores (logs e status)
func GenerateRunID() string {
	id, err := gonanoid.Generate(characters, runIDLength)
	if err != nil {
		return "run-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return id
}
