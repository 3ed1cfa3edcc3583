package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Postgres  DBConfig
	Redis     RedisConfig
	S3        S3Config
	Cookie    Cookie
	Logger    Logger
	Scheduler SchedulerConfig
	Google    GoogleConfig
	Suggest   SuggestConfig
	Notify    NotifyConfig
}

type ServerConfig struct {
	AppVersion   string
	Port         string
	Mode         string
	JwtSecretKey string
}

type SchedulerConfig struct {
	TickInterval time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	PgDriver string
}

type Cookie struct {
	Name     string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
}

type RedisConfig struct {
	RedisAddr     string
	RedisPassword string
	DB            int
	MinIdleConns  int
	PoolSize      int
	PoolTimeout   int
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKey       string
	SecretKey       string
	ThumbnailBucket string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

type SuggestConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	CacheTTL time.Duration
}

type NotifyConfig struct {
	WebhookURL string
}

type Logger struct {
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
	Encoding          string
	Level             string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.AddConfigPath(".")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFound) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if c.Scheduler.TickInterval <= 0 {
		c.Scheduler.TickInterval = 15 * time.Second
	}
	if c.Suggest.CacheTTL <= 0 {
		c.Suggest.CacheTTL = 24 * time.Hour
	}
	return &c, nil
}
