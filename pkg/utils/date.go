package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate aceita "YYYY-MM-DD" ou RFC3339. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		full, errFull := time.Parse(time.RFC3339, dateStr)
		if errFull != nil {
			return nil, err
		}
		date = full.UTC().Truncate(24 * time.Hour)
	}

	return &date, nil
}

// StartOfDay trunca o horário em UTC, usado como data dos snapshots diários
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
