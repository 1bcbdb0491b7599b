package domain

import "time"

// Report reúne os agregados calculados em uma execução
type Report struct {
	ID                   string       `json:"id"`
	GeneratedAt          time.Time    `json:"generated_at"`
	SourceFile           string       `json:"source_file"`
	TargetCity           string       `json:"target_city"`
	Timezone             string       `json:"timezone"`
	Load                 LoadSummary  `json:"load"`
	MostPopularShow      *Pair        `json:"most_popular_show"`   // nil quando nenhum download casa com a cidade
	MostPopularDevice    *Pair        `json:"most_popular_device"` // nil quando não há downloads
	PrerollOpportunities []Pair       `json:"preroll_opportunities"`
	WeeklyShows          []WeeklyShow `json:"weekly_shows"`
}

type LoadSummary struct {
	RecordsLoaded int    `json:"records_loaded"`
	LinesRejected int    `json:"lines_rejected"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// WeeklyShow é um show com ao menos dois eventos originais separados por uma semana ou mais.
// Representative é sempre o evento mais antigo do show.
type WeeklyShow struct {
	ShowID         string    `json:"show_id"`
	Representative time.Time `json:"representative"`
	DayOfWeek      string    `json:"day_of_week"`
	Hour           int       `json:"hour"`
}
