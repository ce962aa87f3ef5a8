package configs

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

type Config struct {
	Port          string        `mapstructure:"PORT" validate:"required"`
	PrimaryDbAddr string        `mapstructure:"PRIMARY_DB_ADDR" validate:"required"`
	ReplicaDbAddr string        `mapstructure:"REPLICA_DB_ADDR"`
	MaxDbCons     int32         `mapstructure:"MAX_DB_CONNECTIONS" validate:"min=1"`
	MinDbCons     int32         `mapstructure:"MIN_DB_CONNECTIONS" validate:"min=1"`
	JwtSecret     string        `mapstructure:"JWT_SECRET" validate:"required"`
	TokenTTL      time.Duration `mapstructure:"TOKEN_TTL" validate:"required"`

	// Optional: transaction events are disabled when no brokers are set.
	KafkaBrokers   string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic     string `mapstructure:"KAFKA_TOPIC" validate:"required"`
	KafkaPartition uint32 `mapstructure:"KAFKA_PARTITION" validate:"min=1"`

	// Optional: rate limiting is disabled when RateLimitPerSec is zero.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RateLimitPerSec int    `mapstructure:"RATE_LIMIT_PER_SEC"`
	RateLimitBurst  int    `mapstructure:"RATE_LIMIT_BURST" validate:"min=1"`
}

func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app") // Prefix for env vars
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("MAX_DB_CONNECTIONS", "10")
	viper.SetDefault("MIN_DB_CONNECTIONS", "2")
	viper.SetDefault("TOKEN_TTL", "30m")
	viper.SetDefault("KAFKA_TOPIC", "transactions.completed")
	viper.SetDefault("KAFKA_PARTITION", "4")
	viper.SetDefault("RATE_LIMIT_PER_SEC", "0")
	viper.SetDefault("RATE_LIMIT_BURST", "100")

	// Optional: Read from config.yaml if exists
	if gin.ReleaseMode == gin.Mode() {
		viper.SetConfigName("config.prod")
	} else if gin.TestMode == gin.Mode() {
		logger.Warn("running in test mode")
		viper.SetConfigName("config.test")
	} else {
		logger.Warn("running in development mode")
		viper.SetConfigName("config.dev")
	}
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./internal/configs")
	_ = viper.ReadInConfig() // Ignore if no file

	var cfg Config
	if err := utils.ParseStructEnv(&cfg); err != nil {
		return nil, err
	}
	// Validate after unmarshal
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, utils.FormatConfigErrors(logger, err, cfg)
	}
	return &cfg, nil
}
