package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"CHATEXTRACT_ENV" env-default:"local"`
	Http     HttpConfig     `yaml:"http"`
	User     UserConfig     `yaml:"user"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Importer ImporterConfig `yaml:"importer"`
}

type HttpConfig struct {
	Address        string        `yaml:"address" env-default:""`
	Port           int           `yaml:"port" env-default:"8080"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"5s"`
}

type UserConfig struct {
	JwtSecret  string        `yaml:"jwt_secret" env:"CHATEXTRACT_JWT_SECRET"`
	JwtTTL     time.Duration `yaml:"jwt_ttl" env-default:"15m"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" env-default:"720h"`
}

type PostgresConfig struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     string `yaml:"port" env-default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password" env:"CHATEXTRACT_PG_PASSWORD"`
	DBname   string `yaml:"dbname"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"CHATEXTRACT_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type KafkaConfig struct {
	Brokers       []string      `yaml:"brokers"`
	PublishPeriod time.Duration `yaml:"publish_period" env-default:"5s"`
}

type ImporterConfig struct {
	PollPeriod  time.Duration `yaml:"poll_period" env-default:"2s"`
	ProgressTTL time.Duration `yaml:"progress_ttl" env-default:"24h"`
	MaxUpload   int64         `yaml:"max_upload_bytes" env-default:"33554432"`
}

func MustLoad() *Config {
	path, port := fetchFlags()

	if path == "" {
		path = "configs/local.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("config file does not exist: " + path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	if port != 0 {
		cfg.Http.Port = port
	}

	return &cfg
}

func MustLoadByPath(path string) *Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("config file does not exist: " + path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}

func fetchFlags() (string, int) {
	var path string
	var port int

	flag.StringVar(&path, "config", "", "path to config file")
	flag.IntVar(&port, "port", 0, "http server port")
	flag.Parse()

	return path, port
}
