package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	GoogleAds       OAuthClient     `mapstructure:"-"`
	MetaAds         OAuthClient     `mapstructure:"-"`
	LinkedInAds     OAuthClient     `mapstructure:"-"`
	TikTokAds       OAuthClient     `mapstructure:"-"`
	Providers       Providers       `mapstructure:",squash"`
	Probes          Probes          `mapstructure:",squash"`
	IntegrationSync IntegrationSync `mapstructure:",squash"`
	Monitoring      Monitoring      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// OAuthClient guarda as credenciais OAuth de um provedor de anúncios.
// Injetado explicitamente no renovador de tokens, sem leitura ambiente
// de variáveis dentro do renovador
type OAuthClient struct {
	ClientID     string
	ClientSecret string
}

// Providers define as URLs base das APIs dos provedores de anúncios
type Providers struct {
	GoogleAdsURL          string `mapstructure:"google_ads_api_url"`
	MetaAdsURL            string `mapstructure:"meta_ads_api_url"`
	LinkedInAdsURL        string `mapstructure:"linkedin_ads_api_url"`
	TikTokAdsURL          string `mapstructure:"tiktok_ads_api_url"`
	RequestTimeoutSeconds int    `mapstructure:"provider_request_timeout_seconds"`
}

// Probes define os endpoints dos serviços de medição usados pelo orquestrador
type Probes struct {
	PageSpeedURL          string `mapstructure:"probe_pagespeed_url"`
	PageSpeedAPIKey       string `mapstructure:"probe_pagespeed_api_key"`
	SerpURL               string `mapstructure:"probe_serp_url"`
	IntelligenceURL       string `mapstructure:"probe_intelligence_url"`
	RequestTimeoutSeconds int    `mapstructure:"probe_request_timeout_seconds"`
}

// IntegrationSync configura o agendador de sincronização de integrações
type IntegrationSync struct {
	CronSchedule        string `mapstructure:"integration_sync_cron"`
	LookbackDays        int    `mapstructure:"integration_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"integration_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"integration_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"integration_sync_enabled"`
}

// Monitoring configura o agendador/orquestrador de monitoramento
type Monitoring struct {
	PollCron      string `mapstructure:"monitoring_poll_cron"`
	DispatchLimit int    `mapstructure:"monitoring_dispatch_limit"`
	RunLimit      int    `mapstructure:"monitoring_run_limit"`
	Enabled       bool   `mapstructure:"monitoring_enabled"`
	CronSecret    string `mapstructure:"monitoring_cron_secret"`
	WebhookSecret string `mapstructure:"monitoring_webhook_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/stratify")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("META_ADS_CLIENT_ID", "")
	viper.SetDefault("META_ADS_CLIENT_SECRET", "")
	viper.SetDefault("LINKEDIN_ADS_CLIENT_ID", "")
	viper.SetDefault("LINKEDIN_ADS_CLIENT_SECRET", "")
	viper.SetDefault("TIKTOK_ADS_CLIENT_ID", "")
	viper.SetDefault("TIKTOK_ADS_CLIENT_SECRET", "")

	viper.SetDefault("GOOGLE_ADS_API_URL", "https://googleads.googleapis.com/v16")
	viper.SetDefault("META_ADS_API_URL", "https://graph.facebook.com/v18.0")
	viper.SetDefault("LINKEDIN_ADS_API_URL", "https://api.linkedin.com/rest")
	viper.SetDefault("TIKTOK_ADS_API_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("PROVIDER_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("PROBE_PAGESPEED_URL", "https://www.googleapis.com/pagespeedonline/v5/runPagespeed")
	viper.SetDefault("PROBE_PAGESPEED_API_KEY", "")
	viper.SetDefault("PROBE_SERP_URL", "")
	viper.SetDefault("PROBE_INTELLIGENCE_URL", "")
	viper.SetDefault("PROBE_REQUEST_TIMEOUT_SECONDS", 60)

	// Defaults para sincronização de integrações de anúncios
	viper.SetDefault("INTEGRATION_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("INTEGRATION_SYNC_LOOKBACK_DAYS", 7)         // 7 dias de métricas por sincronização
	viper.SetDefault("INTEGRATION_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("INTEGRATION_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 integrações concorrentes
	viper.SetDefault("INTEGRATION_SYNC_ENABLED", false)

	// Defaults para o orquestrador de monitoramento
	viper.SetDefault("MONITORING_POLL_CRON", "* * * * *") // A cada minuto
	viper.SetDefault("MONITORING_DISPATCH_LIMIT", 20)
	viper.SetDefault("MONITORING_RUN_LIMIT", 5)
	viper.SetDefault("MONITORING_ENABLED", false)
	viper.SetDefault("MONITORING_CRON_SECRET", "")
	viper.SetDefault("MONITORING_WEBHOOK_SECRET", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	// Credenciais OAuth não passam pelo squash do viper por compartilharem o
	// mesmo tipo; leitura explícita por chave
	config.GoogleAds = OAuthClient{
		ClientID:     viper.GetString("GOOGLE_ADS_CLIENT_ID"),
		ClientSecret: viper.GetString("GOOGLE_ADS_CLIENT_SECRET"),
	}
	config.MetaAds = OAuthClient{
		ClientID:     viper.GetString("META_ADS_CLIENT_ID"),
		ClientSecret: viper.GetString("META_ADS_CLIENT_SECRET"),
	}
	config.LinkedInAds = OAuthClient{
		ClientID:     viper.GetString("LINKEDIN_ADS_CLIENT_ID"),
		ClientSecret: viper.GetString("LINKEDIN_ADS_CLIENT_SECRET"),
	}
	config.TikTokAds = OAuthClient{
		ClientID:     viper.GetString("TIKTOK_ADS_CLIENT_ID"),
		ClientSecret: viper.GetString("TIKTOK_ADS_CLIENT_SECRET"),
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
