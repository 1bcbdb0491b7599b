// Package reporting orquestra a carga dos downloads e o cálculo dos agregados do relatório
package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/downloads-insights/infrastructure/loader"
	"github.com/vfg2006/downloads-insights/internal/config"
	"github.com/vfg2006/downloads-insights/internal/domain"
	"github.com/vfg2006/downloads-insights/internal/usecases/aggregating"
	"github.com/vfg2006/downloads-insights/internal/usecases/airtime"
	"github.com/vfg2006/downloads-insights/pkg/log"
	"github.com/vfg2006/downloads-insights/pkg/utils"
)

type Reporter interface {
	// BuildReport carrega os downloads e calcula todos os agregados
	BuildReport(ctx context.Context) (*domain.Report, error)
}

type Service struct {
	loader     loader.DownloadLoader
	sourceFile string
	targetCity string
	location   *time.Location
	now        func() time.Time
}

func NewService(cfg *config.Config, downloadLoader loader.DownloadLoader) *Service {
	location := cfg.Report.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		loader:     downloadLoader,
		sourceFile: cfg.Input.DownloadsFile,
		targetCity: cfg.Report.TargetCity,
		location:   location,
		now:        time.Now,
	}
}

func (s *Service) BuildReport(ctx context.Context) (*domain.Report, error) {
	logger := log.ForContext(ctx)

	downloads, summary, err := s.loadDownloads(ctx)
	if err != nil {
		return nil, err
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Warn("Não foi possível gerar o ID do relatório")
	}

	report := &domain.Report{
		ID:          reportID,
		GeneratedAt: s.now().In(s.location),
		SourceFile:  s.sourceFile,
		TargetCity:  s.targetCity,
		Timezone:    s.location.String(),
		Load:        summary,
	}

	report.MostPopularShow = aggregating.MostFrequentShowByCity(downloads, s.targetCity)
	if report.MostPopularShow == nil {
		logger.WithField("city", s.targetCity).Info("Nenhum download encontrado para a cidade")
	}

	report.MostPopularDevice = aggregating.MostFrequentDeviceType(downloads)

	report.PrerollOpportunities = aggregating.CountPrerollOpportunities(downloads)
	sort.SliceStable(report.PrerollOpportunities, func(i, j int) bool {
		return report.PrerollOpportunities[i].Count > report.PrerollOpportunities[j].Count
	})

	eventTimes := aggregating.CollectOriginalEventTimes(downloads)
	dateTimes := airtime.NormalizeEventTimes(eventTimes, s.location)
	report.WeeklyShows = airtime.DescribeWeeklyShows(dateTimes)

	logger.WithFields(log.Fields{
		"report_id":    report.ID,
		"records":      summary.RecordsLoaded,
		"shows":        len(report.PrerollOpportunities),
		"weekly_shows": len(report.WeeklyShows),
	}).Info("Relatório de downloads calculado")

	return report, nil
}

// loadDownloads aplica a política tolerante de carga: falhas de arquivo são registradas e o
// relatório segue com o que foi lido. Apenas o cancelamento do contexto interrompe a execução.
func (s *Service) loadDownloads(ctx context.Context) ([]domain.DownloadRecord, domain.LoadSummary, error) {
	logger := log.ForContext(ctx).WithField("file", s.sourceFile)

	result, err := s.loader.Load(ctx, s.sourceFile)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, domain.LoadSummary{}, ctxErr
	}

	if result == nil {
		result = &loader.Result{}
	}

	summary := domain.LoadSummary{
		RecordsLoaded: len(result.Records),
		LinesRejected: len(result.Rejected),
	}

	if err != nil {
		summary.FailureReason = err.Error()
		logger.WithError(err).Warn("Falha ao ler o arquivo de downloads, seguindo com os registros carregados")
	}

	if summary.LinesRejected > 0 {
		logger.WithField("rejected", summary.LinesRejected).Warn("Linhas de download ignoradas na carga")
	}

	return result.Records, summary, nil
}
