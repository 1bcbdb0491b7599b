// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

const (
	// AdBreakIndexKey é a chave de positionUrlSegments que guarda as posições de ad break
	AdBreakIndexKey = "aw_0_ais.adBreakIndex"
	// PrerollLabel é o valor de ad break que identifica uma oportunidade de preroll
	PrerollLabel = "preroll"
	// DefaultTimezone é o fuso usado para interpretar os timestamps dos eventos
	DefaultTimezone = "UTC"
)

// DownloadRecord representa um evento de download registrado no log
type DownloadRecord struct {
	City               string             `json:"city"`
	DeviceType         string             `json:"deviceType"`
	DownloadIdentifier DownloadIdentifier `json:"downloadIdentifier"`
	Opportunities      []Opportunity      `json:"opportunities"`
}

type DownloadIdentifier struct {
	ShowID string `json:"showId"`
}

// Opportunity representa uma oportunidade de inserção de anúncio dentro de um download
type Opportunity struct {
	// OriginalEventTime em epoch millis; nil quando a oportunidade não tem agendamento
	OriginalEventTime   *int64              `json:"originalEventTime"`
	PositionURLSegments map[string][]string `json:"positionUrlSegments"`
}

// ShowID retorna o identificador do show do download
func (d DownloadRecord) ShowID() string {
	return d.DownloadIdentifier.ShowID
}

// AdBreakIndexes retorna os rótulos de ad break da oportunidade (vazio quando a chave não existe)
func (o Opportunity) AdBreakIndexes() []string {
	return o.PositionURLSegments[AdBreakIndexKey]
}

// PrerollCount conta quantos rótulos de ad break são "preroll"
func (o Opportunity) PrerollCount() int64 {
	var count int64
	for _, label := range o.AdBreakIndexes() {
		if label == PrerollLabel {
			count++
		}
	}

	return count
}

// FirstOriginalEventTime retorna o originalEventTime da primeira oportunidade do download
func (d DownloadRecord) FirstOriginalEventTime() (int64, bool) {
	if len(d.Opportunities) == 0 || d.Opportunities[0].OriginalEventTime == nil {
		return 0, false
	}

	return *d.Opportunities[0].OriginalEventTime, true
}

// Pair associa um identificador (show ou tipo de dispositivo) a uma contagem
type Pair struct {
	ID    string `json:"id"`
	Count int64  `json:"count"`
}

// ShowEventTimes mapeia show -> timestamps originais distintos (epoch millis), na ordem de inserção
type ShowEventTimes map[string][]int64

// ShowDateTimes mapeia show -> datas/horas distintas já convertidas para o fuso configurado
type ShowDateTimes map[string][]time.Time
