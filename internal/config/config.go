package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Drivers aceitos para o banco de ranking
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultLayerPolicyPath é o caminho padrão da política de camadas
const DefaultLayerPolicyPath = "data/campaign-layer-policy.json"

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Optimisation   Optimisation   `mapstructure:",squash"`
	Anomaly        Anomaly        `mapstructure:",squash"`
	Seo            Seo            `mapstructure:",squash"`
	RankingDB      RankingDB      `mapstructure:",squash"`
	LayerPolicy    LayerPolicy    `mapstructure:",squash"`
	BulkGeneration BulkGeneration `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Optimisation struct {
	TargetAcos            float64 `mapstructure:"target_acos"`
	MinClicksCpc          float64 `mapstructure:"min_clicks_cpc"`
	MinClicksPromotion    float64 `mapstructure:"min_clicks_promotion"`
	MinCvrPromotion       float64 `mapstructure:"min_cvr_promotion"`
	NegativeAcosThreshold float64 `mapstructure:"negative_acos_threshold"`
}

type Anomaly struct {
	ImpressionThreshold float64 `mapstructure:"b190_impression_threshold"`
	SpendThreshold      float64 `mapstructure:"b190_spend_threshold"`
	CpcThreshold        float64 `mapstructure:"b190_cpc_threshold"`
}

type Seo struct {
	Enabled            bool            `mapstructure:"seo_enabled"`
	CpcCeiling         float64         `mapstructure:"seo_cpc_ceiling"`
	Factors            map[int]float64 `mapstructure:"seo_factors"`
	KeywordMappingPath string          `mapstructure:"seo_keyword_mapping_path"`
}

type RankingDB struct {
	Path   string `mapstructure:"ranking_db_path"`
	Driver string `mapstructure:"ranking_db_driver"`
}

// LayerPolicy.Path vazio usa DefaultLayerPolicyPath; qualquer valor informado é explícito
type LayerPolicy struct {
	Path string `mapstructure:"layer_policy_path"`
}

type BulkGeneration struct {
	CronSchedule string `mapstructure:"bulk_generation_cron"`
	Enabled      bool   `mapstructure:"bulk_generation_enabled"`
	Input        string `mapstructure:"bulk_generation_input"`
	OutputDir    string `mapstructure:"bulk_generation_output_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("TARGET_ACOS", 0.25)
	viper.SetDefault("MIN_CLICKS_CPC", 5)
	viper.SetDefault("MIN_CLICKS_PROMOTION", 5)
	viper.SetDefault("MIN_CVR_PROMOTION", 0.03)
	viper.SetDefault("NEGATIVE_ACOS_THRESHOLD", 0.4)

	// Limites de variação entre períodos (razão, 0.5 = +50%)
	viper.SetDefault("B190_IMPRESSION_THRESHOLD", 0.5)
	viper.SetDefault("B190_SPEND_THRESHOLD", 0.5)
	viper.SetDefault("B190_CPC_THRESHOLD", 0.3)

	viper.SetDefault("SEO_ENABLED", true)
	viper.SetDefault("SEO_CPC_CEILING", 0) // 0 = sem teto
	viper.SetDefault("SEO_FACTORS", "1:0.5,2:0.6,3:0.7,4:0.8")
	viper.SetDefault("SEO_KEYWORD_MAPPING_PATH", "")

	viper.SetDefault("RANKING_DB_PATH", "")
	viper.SetDefault("RANKING_DB_DRIVER", DriverSQLite)

	viper.SetDefault("LAYER_POLICY_PATH", "")

	viper.SetDefault("BULK_GENERATION_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("BULK_GENERATION_ENABLED", false)
	viper.SetDefault("BULK_GENERATION_INPUT", "")
	viper.SetDefault("BULK_GENERATION_OUTPUT_DIR", "output")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			StringToSeoFactorsHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.RankingDB.Driver = strings.ToLower(strings.TrimSpace(config.RankingDB.Driver))
	if config.RankingDB.Driver != DriverSQLite && config.RankingDB.Driver != DriverPostgres {
		return nil, fmt.Errorf("RANKING_DB_DRIVER inválido: %q", config.RankingDB.Driver)
	}

	return config, nil
}

// Address retorna o endereço de escuta da API
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// StringToSeoFactorsHookFunc converte "1:0.5,2:0.6" na tabela posição -> fator
func StringToSeoFactorsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(map[int]float64{}) {
			return data, nil
		}
		return ParseSeoFactors(data.(string))
	}
}

// ParseSeoFactors interpreta a tabela de fatores no formato "posição:fator" separado por vírgulas
func ParseSeoFactors(raw string) (map[int]float64, error) {
	factors := make(map[int]float64)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, factor, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("SEO_FACTORS: entrada inválida %q", part)
		}
		p, err := strconv.Atoi(strings.TrimSpace(pos))
		if err != nil {
			return nil, fmt.Errorf("SEO_FACTORS: posição inválida %q: %w", pos, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(factor), 64)
		if err != nil {
			return nil, fmt.Errorf("SEO_FACTORS: fator inválido %q: %w", factor, err)
		}
		factors[p] = v
	}
	return factors, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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
