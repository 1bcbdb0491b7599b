// Package aggregating contém os agregados calculados sobre os downloads carregados
package aggregating

import (
	"strings"

	"github.com/vfg2006/downloads-insights/internal/domain"
)

// MostFrequentShowByCity retorna o show com mais downloads na cidade (comparação sem caixa).
// Retorna nil quando nenhum download é da cidade.
func MostFrequentShowByCity(downloads []domain.DownloadRecord, city string) *domain.Pair {
	shows := newCounter()
	for _, download := range downloads {
		if strings.EqualFold(download.City, city) {
			shows.add(download.ShowID(), 1)
		}
	}

	return shows.max()
}

// MostFrequentDeviceType retorna o tipo de dispositivo mais frequente, ou nil sem downloads
func MostFrequentDeviceType(downloads []domain.DownloadRecord) *domain.Pair {
	devices := newCounter()
	for _, download := range downloads {
		devices.add(download.DeviceType, 1)
	}

	return devices.max()
}

// CountPrerollOpportunities soma, por show, os rótulos "preroll" de todas as oportunidades.
// Todo show com ao menos um download aparece, mesmo com contagem zero, na ordem da primeira aparição.
func CountPrerollOpportunities(downloads []domain.DownloadRecord) []domain.Pair {
	prerolls := newCounter()
	for _, download := range downloads {
		var count int64
		for _, opportunity := range download.Opportunities {
			count += opportunity.PrerollCount()
		}
		prerolls.add(download.ShowID(), count)
	}

	return prerolls.pairs()
}

// CollectOriginalEventTimes agrupa por show os originalEventTime distintos da primeira
// oportunidade de cada download. Downloads sem oportunidades ou sem timestamp não contribuem,
// mas o show continua presente no mapa.
func CollectOriginalEventTimes(downloads []domain.DownloadRecord) domain.ShowEventTimes {
	eventTimes := make(domain.ShowEventTimes)
	seen := make(map[string]map[int64]struct{})

	for _, download := range downloads {
		showID := download.ShowID()
		if _, exists := eventTimes[showID]; !exists {
			eventTimes[showID] = []int64{}
			seen[showID] = make(map[int64]struct{})
		}

		timestamp, ok := download.FirstOriginalEventTime()
		if !ok {
			continue
		}

		if _, duplicated := seen[showID][timestamp]; duplicated {
			continue
		}
		seen[showID][timestamp] = struct{}{}
		eventTimes[showID] = append(eventTimes[showID], timestamp)
	}

	return eventTimes
}
