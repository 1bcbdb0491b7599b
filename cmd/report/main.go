package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/downloads-insights/infrastructure/loader"
	"github.com/vfg2006/downloads-insights/internal/config"
	"github.com/vfg2006/downloads-insights/internal/usecases/reporting"
	"github.com/vfg2006/downloads-insights/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	parseFlags(os.Args[1:])

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, runID := log.WithRunID(context.Background())
	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"file":   cfg.Input.DownloadsFile,
		"city":   cfg.Report.TargetCity,
		"tz":     cfg.Report.Timezone,
	}).Info("Iniciando relatório de downloads")

	var reporter reporting.Reporter = reporting.NewService(cfg, loader.NewJSONLinesLoader())

	report, err := reporter.BuildReport(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular o relatório de downloads")
	}

	if err := reporting.Write(os.Stdout, report, cfg.Report.OutputFormat); err != nil {
		logrus.WithError(err).Fatal("Erro ao escrever o relatório")
	}
}

// parseFlags associa as flags à configuração. Com ExitOnError o pflag encerra o
// processo em flag inválida ou --help, então Parse só retorna com sucesso.
func parseFlags(args []string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("report", pflag.ExitOnError)
	if err := config.BindFlags(flags); err != nil {
		logrus.Fatal(err)
	}
	flags.Parse(args)

	return flags
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
