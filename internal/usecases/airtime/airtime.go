// Package airtime converte os horários originais dos eventos e detecta shows semanais
package airtime

import (
	"sort"
	"time"

	"github.com/vfg2006/downloads-insights/internal/domain"
	"github.com/vfg2006/downloads-insights/pkg/utils"
)

// WeeklyGap é a distância mínima entre dois eventos para o show contar como semanal
const WeeklyGap = 7 * 24 * time.Hour

// NormalizeEventTimes converte os timestamps de cada show para data/hora em loc,
// removendo repetições e preservando a ordem de inserção
func NormalizeEventTimes(eventTimes domain.ShowEventTimes, loc *time.Location) domain.ShowDateTimes {
	dateTimes := make(domain.ShowDateTimes, len(eventTimes))

	for showID, timestamps := range eventTimes {
		seen := make(map[int64]struct{}, len(timestamps))
		converted := make([]time.Time, 0, len(timestamps))
		for _, millis := range timestamps {
			if _, duplicated := seen[millis]; duplicated {
				continue
			}
			seen[millis] = struct{}{}
			converted = append(converted, utils.EpochMillisToTime(millis, loc))
		}
		dateTimes[showID] = converted
	}

	return dateTimes
}

// HasWeeklyGap indica se algum par de eventos está separado por WeeklyGap ou mais
func HasWeeklyGap(dateTimes []time.Time) bool {
	if len(dateTimes) < 2 {
		return false
	}

	sorted := sortedCopy(dateTimes)

	// A diferença é feita em millis para não estourar time.Duration em datas distantes
	weekMillis := WeeklyGap.Milliseconds()
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].UnixMilli()-sorted[i].UnixMilli() >= weekMillis {
				return true
			}
		}
	}

	return false
}

// FindWeeklyShows retorna, ordenados, os shows com ao menos um par de eventos a uma semana ou mais
func FindWeeklyShows(dateTimes domain.ShowDateTimes) []string {
	weeklyShows := make([]string, 0)
	for showID, times := range dateTimes {
		if HasWeeklyGap(times) {
			weeklyShows = append(weeklyShows, showID)
		}
	}

	sort.Strings(weeklyShows)

	return weeklyShows
}

// Representative retorna o evento mais antigo do show
func Representative(dateTimes []time.Time) (time.Time, bool) {
	if len(dateTimes) == 0 {
		return time.Time{}, false
	}

	earliest := dateTimes[0]
	for _, t := range dateTimes[1:] {
		if t.Before(earliest) {
			earliest = t
		}
	}

	return earliest, true
}

// DescribeWeeklyShows monta os shows semanais com o dia da semana e a hora do evento representativo
func DescribeWeeklyShows(dateTimes domain.ShowDateTimes) []domain.WeeklyShow {
	showIDs := FindWeeklyShows(dateTimes)

	weeklyShows := make([]domain.WeeklyShow, 0, len(showIDs))
	for _, showID := range showIDs {
		representative, ok := Representative(dateTimes[showID])
		if !ok {
			continue
		}

		weeklyShows = append(weeklyShows, domain.WeeklyShow{
			ShowID:         showID,
			Representative: representative,
			DayOfWeek:      utils.WeekdayName(representative),
			Hour:           representative.Hour(),
		})
	}

	return weeklyShows
}

func sortedCopy(dateTimes []time.Time) []time.Time {
	sorted := make([]time.Time, len(dateTimes))
	copy(sorted, dateTimes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	return sorted
}
