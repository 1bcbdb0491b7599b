package reporting

import (
	"fmt"
	"io"

	"github.com/vfg2006/downloads-insights/internal/config"
	"github.com/vfg2006/downloads-insights/internal/domain"
	"github.com/vfg2006/downloads-insights/pkg/utils"
)

// Write escreve o relatório no formato configurado
func Write(w io.Writer, report *domain.Report, format string) error {
	if format == config.OutputJSON {
		return WriteJSON(w, report)
	}

	return WriteText(w, report)
}

func WriteJSON(w io.Writer, report *domain.Report) error {
	out, err := utils.PrettyJson(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar o relatório: %w", err)
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

func WriteText(w io.Writer, report *domain.Report) error {
	p := &printer{w: w}

	if report.MostPopularShow != nil {
		p.printf("Most popular show is: %s\n", report.MostPopularShow.ID)
		p.printf("Number of downloads is: %d\n", report.MostPopularShow.Count)
	} else {
		p.printf("No downloads found for city: %s\n", report.TargetCity)
	}

	if report.MostPopularDevice != nil {
		p.printf("Most popular device is: %s\n", report.MostPopularDevice.ID)
		p.printf("Number of downloads is: %d\n", report.MostPopularDevice.Count)
	} else {
		p.printf("No downloads found\n")
	}

	for _, show := range report.PrerollOpportunities {
		p.printf("Show Id: %s Preroll Opportunity Number: %d\n", show.ID, show.Count)
	}

	for _, show := range report.WeeklyShows {
		p.printf("Show Id: %s - %s %d\n", show.ShowID, show.DayOfWeek, show.Hour)
	}

	return p.err
}

// printer guarda o primeiro erro de escrita e ignora as escritas seguintes
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
