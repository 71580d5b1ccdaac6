package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Analysis     Analysis     `mapstructure:",squash"`
	AnalysisSync AnalysisSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
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

type Meta struct {
	BaseURL                string    `mapstructure:"meta_base_url"`
	URL                    string    `mapstructure:"meta_url"`
	Version                string    `mapstructure:"meta_version"`
	AccessToken            string    `mapstructure:"meta_access_token"`
	AppID                  string    `mapstructure:"meta_app_id"`
	AppSecret              string    `mapstructure:"meta_app_secret"`
	LongLivedToken         string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt         time.Time `mapstructure:"-"`
	MinRequestDelaySeconds int       `mapstructure:"meta_min_request_delay_seconds"`
	MaxRequestDelaySeconds int       `mapstructure:"meta_max_request_delay_seconds"`

	// Contas de anúncio por região, montadas a partir das variáveis
	// META_AD_ACCOUNT_ID_<REGIÃO>.
	AccountsByRegion map[string]string `mapstructure:"-"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Analysis struct {
	DaysThreshold int     `mapstructure:"analysis_days_threshold"`
	MinSpend      float64 `mapstructure:"analysis_min_spend"`
	RetentionDays int     `mapstructure:"analysis_retention_days"`
	ExportDir     string  `mapstructure:"analysis_export_dir"`
	ExportEnabled bool    `mapstructure:"analysis_export_enabled"`
}

type AnalysisSync struct {
	CronSchedule string `mapstructure:"analysis_sync_cron"`
	Enabled      bool   `mapstructure:"analysis_sync_enabled"`
}

// Regiões com conta de anúncio própria.
var Regions = []string{"ASI", "EUR", "LAT", "PAC", "GBR", "NAM"}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creative_analysis")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_MIN_REQUEST_DELAY_SECONDS", 2)      // 2 segundos entre requisições
	viper.SetDefault("META_MAX_REQUEST_DELAY_SECONDS", 300)    // Teto do backoff em caso de rate limit

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	// Defaults do filtro de elegibilidade e da retenção de resultados
	viper.SetDefault("ANALYSIS_DAYS_THRESHOLD", 7)    // Idade mínima e janela de gasto em dias
	viper.SetDefault("ANALYSIS_MIN_SPEND", 250.0)     // Gasto mínimo na janela
	viper.SetDefault("ANALYSIS_RETENTION_DAYS", 90)   // Dias de retenção dos resultados no banco
	viper.SetDefault("ANALYSIS_EXPORT_DIR", "export") // Diretório dos arquivos JSON exportados
	viper.SetDefault("ANALYSIS_EXPORT_ENABLED", false)

	// Defaults da sincronização diária de análises
	viper.SetDefault("ANALYSIS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ANALYSIS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	// Secrets gerenciados no Render; em ambiente local o token vem do .env
	renderClient := NewRenderClient(config)
	secretsByCode := make(map[string]string)
	if config.Render.ServiceID != "" {
		secretsByCode, err = renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
	}

	metaAccessToken, secretHasMetaAccessToken := secretsByCode["meta_access_token"]
	if config.Meta.AccessToken == "" && secretHasMetaAccessToken {
		config.Meta.AccessToken = metaAccessToken
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	// Uma conta de anúncio por região; regiões sem variável ficam de fora da
	// sincronização.
	config.Meta.AccountsByRegion = make(map[string]string)
	for _, region := range Regions {
		if accountID := viper.GetString("META_AD_ACCOUNT_ID_" + region); accountID != "" {
			config.Meta.AccountsByRegion[region] = accountID
		}
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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
