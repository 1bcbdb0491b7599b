package utils

import (
	"strings"
	"time"
)

// EpochMillisToTime converte um timestamp em epoch millis para data/hora no fuso informado
func EpochMillisToTime(millis int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	return time.UnixMilli(millis).In(loc)
}

// WeekdayName retorna o dia da semana em maiúsculas (ex: FRIDAY)
func WeekdayName(t time.Time) string {
	return strings.ToUpper(t.Weekday().String())
}
