package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/downloads-insights/internal/domain"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Input  Input  `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Input struct {
	DownloadsFile string `mapstructure:"downloads_file"`
}

type Report struct {
	TargetCity   string         `mapstructure:"target_city"`
	OutputFormat string         `mapstructure:"output_format"`
	Timezone     string         `mapstructure:"report_timezone"`
	Location     *time.Location `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DOWNLOADS_FILE", "testdata/downloads.txt")

	viper.SetDefault("TARGET_CITY", "San Francisco")
	viper.SetDefault("OUTPUT_FORMAT", OutputText)
	viper.SetDefault("REPORT_TIMEZONE", domain.DefaultTimezone)
}

// BindFlags registra as flags da linha de comando e as associa às chaves do Viper
func BindFlags(fs *pflag.FlagSet) error {
	fs.String("file", "", "arquivo de downloads em JSON delimitado por linha")
	fs.String("city", "", "cidade usada no ranking de shows")
	fs.String("format", "", "formato de saída (text|json)")
	fs.String("timezone", "", "fuso usado para interpretar os horários dos eventos")
	fs.String("log-level", "", "nível de log")

	bindings := map[string]string{
		"downloads_file":  "file",
		"target_city":     "city",
		"output_format":   "format",
		"report_timezone": "timezone",
		"log_level":       "log-level",
	}

	for key, flag := range bindings {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("erro ao associar a flag %s: %w", flag, err)
		}
	}

	return nil
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Input.DownloadsFile) == "" {
		return fmt.Errorf("downloads_file is required")
	}

	c.Report.OutputFormat = strings.ToLower(strings.TrimSpace(c.Report.OutputFormat))
	if c.Report.OutputFormat != OutputText && c.Report.OutputFormat != OutputJSON {
		return fmt.Errorf("invalid output_format %q: expected %s or %s", c.Report.OutputFormat, OutputText, OutputJSON)
	}

	if c.Report.Timezone == "" {
		c.Report.Timezone = domain.DefaultTimezone
	}

	location, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return fmt.Errorf("invalid report_timezone %q: %w", c.Report.Timezone, err)
	}
	c.Report.Location = location

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
