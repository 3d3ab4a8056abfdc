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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	MonteCarlo    MonteCarlo    `mapstructure:",squash"`
	Forecast      Forecast      `mapstructure:",squash"`
	Cohort        Cohort        `mapstructure:",squash"`
	Fundraising   Fundraising   `mapstructure:",squash"`
	RunwayRefresh RunwayRefresh `mapstructure:",squash"`
	AnomalyScan   AnomalyScan   `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret     string `mapstructure:"auth_secret"`
	AdminToken string `mapstructure:"auth_admin_token"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// MonteCarlo parametriza a simulação estocástica de runway
type MonteCarlo struct {
	Iterations  int `mapstructure:"monte_carlo_iterations"`
	MaxRetained int `mapstructure:"monte_carlo_max_retained"`
}

// Forecast parametriza limiares e envelope da previsão de fluxo de caixa
type Forecast struct {
	LowCashThreshold       float64 `mapstructure:"forecast_low_cash_threshold"`
	WeeklyNetFlowThreshold float64 `mapstructure:"forecast_weekly_net_flow_threshold"`
	BestCaseMultiplier     float64 `mapstructure:"forecast_best_case_multiplier"`
	WorstCaseMultiplier    float64 `mapstructure:"forecast_worst_case_multiplier"`
	DefaultHorizonMonths   int     `mapstructure:"forecast_default_horizon_months"`
	HistoryMonths          int     `mapstructure:"forecast_history_months"`
}

// Cohort parametriza a análise de coortes de receita
type Cohort struct {
	AnnualDiscountRate   float64 `mapstructure:"cohort_annual_discount_rate"`
	ProjectionHorizon    int     `mapstructure:"cohort_projection_horizon"`
	PaybackWarningMonths int     `mapstructure:"cohort_payback_warning_months"`
}

// Fundraising parametriza os fatores externos do score de captação
type Fundraising struct {
	MarketConditionsScore float64 `mapstructure:"fundraising_market_conditions_score"`
	TeamStrengthScore     float64 `mapstructure:"fundraising_team_strength_score"`
	ProductMarketFitScore float64 `mapstructure:"fundraising_product_market_fit_score"`
}

// RunwayRefresh parametriza o agendador de recálculo diário de cenários base
type RunwayRefresh struct {
	CronSchedule      string `mapstructure:"runway_refresh_cron"`
	MaxConcurrentJobs int    `mapstructure:"runway_refresh_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"runway_refresh_enabled"`
}

// AnomalyScan parametriza o agendador de varredura de anomalias de despesas
type AnomalyScan struct {
	CronSchedule   string `mapstructure:"anomaly_scan_cron"`
	LookbackMonths int    `mapstructure:"anomaly_scan_lookback_months"`
	Enabled        bool   `mapstructure:"anomaly_scan_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/horizon")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_ADMIN_TOKEN", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("MONTE_CARLO_ITERATIONS", 1000)
	viper.SetDefault("MONTE_CARLO_MAX_RETAINED", 100)

	// Defaults da previsão de fluxo de caixa
	viper.SetDefault("FORECAST_LOW_CASH_THRESHOLD", 100000.0)        // Alerta de caixa baixo na primeira semana
	viper.SetDefault("FORECAST_WEEKLY_NET_FLOW_THRESHOLD", -50000.0) // Alerta de fluxo semanal muito negativo
	viper.SetDefault("FORECAST_BEST_CASE_MULTIPLIER", 1.2)
	viper.SetDefault("FORECAST_WORST_CASE_MULTIPLIER", 0.7)
	viper.SetDefault("FORECAST_DEFAULT_HORIZON_MONTHS", 3)
	viper.SetDefault("FORECAST_HISTORY_MONTHS", 6)

	// Defaults da análise de coortes
	viper.SetDefault("COHORT_ANNUAL_DISCOUNT_RATE", 0.10)
	viper.SetDefault("COHORT_PROJECTION_HORIZON", 24)
	viper.SetDefault("COHORT_PAYBACK_WARNING_MONTHS", 12)

	// Defaults dos fatores externos de captação
	viper.SetDefault("FUNDRAISING_MARKET_CONDITIONS_SCORE", 0.7)
	viper.SetDefault("FUNDRAISING_TEAM_STRENGTH_SCORE", 0.8)
	viper.SetDefault("FUNDRAISING_PRODUCT_MARKET_FIT_SCORE", 0.6)

	// Defaults dos agendadores
	viper.SetDefault("RUNWAY_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("RUNWAY_REFRESH_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("RUNWAY_REFRESH_ENABLED", false)

	viper.SetDefault("ANOMALY_SCAN_CRON", "0 6 * * 1") // Toda segunda-feira às 6h da manhã
	viper.SetDefault("ANOMALY_SCAN_LOOKBACK_MONTHS", 12)
	viper.SetDefault("ANOMALY_SCAN_ENABLED", false)

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
