package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type MQConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type RecommenderConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DigestConfig controls the subscription digest run.
type DigestConfig struct {
	ArticlesPerSearch int    `yaml:"articles_per_search"`
	WindowHours       int    `yaml:"window_hours"`
	SubscriptionsURL  string `yaml:"subscriptions_url"`
	SignOff           string `yaml:"sign_off"`
	// direct = send over SMTP from the digest process,
	// queue  = publish to the delivery worker
	DeliveryMode string `yaml:"delivery_mode"`
}

type Config struct {
	DB          DBConfig          `yaml:"db"`
	MQ          MQConfig          `yaml:"mq"`
	Redis       RedisConfig       `yaml:"redis"`
	JWT         JWTConfig         `yaml:"jwt"`
	Server      ServerConfig      `yaml:"server"`
	SMTP        SMTPConfig        `yaml:"smtp"`
	Recommender RecommenderConfig `yaml:"recommender"`
	Digest      DigestConfig      `yaml:"digest"`
}

func Load() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := LoadFile(path)
	if err != nil {
		log.Fatalf("failed to load %s: %v", path, err)
	}
	return cfg
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	// 环境变量覆盖（生产环境使用）
	overrideFromEnv(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Digest.ArticlesPerSearch == 0 {
		cfg.Digest.ArticlesPerSearch = 3
	}
	if cfg.Digest.WindowHours == 0 {
		cfg.Digest.WindowHours = 24
	}
	if cfg.Digest.DeliveryMode == "" {
		cfg.Digest.DeliveryMode = "queue"
	}
	if cfg.Recommender.TimeoutSeconds == 0 {
		cfg.Recommender.TimeoutSeconds = 10
	}
}

func overrideFromEnv(cfg *Config) {
	// DB配置
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	// MQ配置
	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.MQ.URL = url
	}

	// Redis配置
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}

	// JWT配置
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}

	// Server配置
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	// SMTP配置
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTP.Host = host
	}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if user := os.Getenv("SMTP_USER"); user != "" {
		cfg.SMTP.User = user
	}
	if password := os.Getenv("SMTP_PASSWORD"); password != "" {
		cfg.SMTP.Password = password
	}
	if from := os.Getenv("SMTP_FROM"); from != "" {
		cfg.SMTP.From = from
	}

	// 推荐服务配置
	if url := os.Getenv("RECOMMENDER_URL"); url != "" {
		cfg.Recommender.URL = url
	}
}
