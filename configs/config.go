package configs

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"yolimar/configs/loader"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type RedisConfig struct {
	Host         string        `validate:"required"`
	DB           int           `validate:"min=0"`
	User         string
	Password     string
	MaxRetries   int           `validate:"required"`
	DialTimeout  time.Duration `validate:"required"`
	ReadTimeout  time.Duration `validate:"required"`
	WriteTimeout time.Duration `validate:"required"`
}

type KafkaConfig struct {
	Enabled              bool
	BootstrapServers     string `validate:"required"`
	AutoCommitIntervalMs int    `validate:"required"`
	AutoOffsetReset      string `validate:"required"`
	SessionTimeoutMs     int    `validate:"required"`
	Topic                string `validate:"required"`
	ConsumerGroup        string `validate:"required"`
	FlushTimeout         int    `validate:"required"`
}

type HttpConfig struct {
	Port         string        `validate:"required"`
	ReadTimeout  time.Duration `validate:"required"`
	WriteTimeout time.Duration `validate:"required"`
	IdleTimeout  time.Duration `validate:"required"`
}

// StoreConfig carries the storefront settings: persistence backend, the fixed
// keys of the durable slots, and the WhatsApp hand-off number.
type StoreConfig struct {
	Backend        string `validate:"required,oneof=file redis"`
	DataDir        string `validate:"required"`
	CartKey        string `validate:"required"`
	SessionKey     string `validate:"required"`
	OrderKeyPrefix string `validate:"required"`
	WhatsAppPhone  string `validate:"required"`
}

type AdminUser struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthConfig struct {
	Users []AdminUser `validate:"required,min=1"`
}

type Config struct {
	RD   RedisConfig
	KF   KafkaConfig
	HTTP HttpConfig
	ST   StoreConfig
	AU   AuthConfig
	Env  string
}

func MustLoad(loader loader.ConfigLoader) *Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		envFlag := flag.String("env", "dev", "Environment type")
		flag.Parse()
		env = *envFlag
	}

	const op = "configs.MustLoad"
	envs, err := loader.Load()
	if err != nil {
		log.Fatalf("%s: config load failed: %+v", op, err)
	}
	cfg := &Config{
		RD: RedisConfig{
			Host:         envs["REDIS_HOST"],
			DB:           getEnvAsInt(envs["REDIS_DB"], 0),
			User:         envs["REDIS_USER"],
			Password:     envs["REDIS_PASSWORD"],
			MaxRetries:   getEnvAsInt(envs["REDIS_MAX_RETRIES"], 3),
			DialTimeout:  getEnvAsDuration(envs["REDIS_DIAL_TIMEOUT"], 5*time.Second),
			ReadTimeout:  getEnvAsDuration(envs["REDIS_READ_TIMEOUT"], 5*time.Second),
			WriteTimeout: getEnvAsDuration(envs["REDIS_WRITE_TIMEOUT"], 5*time.Second),
		},
		KF: KafkaConfig{
			Enabled:              getEnvAsBool(envs["KAFKA_ENABLED"], false),
			BootstrapServers:     envs["KAFKA_BOOTSTRAP_SERVERS"],
			AutoCommitIntervalMs: getEnvAsInt(envs["KAFKA_AUTO_COMMIT_INTERVAL_MS"], 1000),
			AutoOffsetReset:      getEnvAsString(envs["KAFKA_AUTO_OFFSET_RESET"], "earliest"),
			SessionTimeoutMs:     getEnvAsInt(envs["KAFKA_SESSION_TIMEOUT_MS"], 10000),
			Topic:                getEnvAsString(envs["KAFKA_TOPIC"], "storefront.orders"),
			ConsumerGroup:        getEnvAsString(envs["KAFKA_CONSUMER_GROUP"], "order-archiver"),
			FlushTimeout:         getEnvAsInt(envs["KAFKA_FLUSH_TIMEOUT"], 5000),
		},
		HTTP: HttpConfig{
			Port:         getEnvAsString(envs["HTTP_PORT"], "8080"),
			ReadTimeout:  getEnvAsDuration(envs["HTTP_READ_TIMEOUT"], 10*time.Second),
			WriteTimeout: getEnvAsDuration(envs["HTTP_WRITE_TIMEOUT"], 10*time.Second),
			IdleTimeout:  getEnvAsDuration(envs["HTTP_IDLE_TIMEOUT"], 60*time.Second),
		},
		ST: StoreConfig{
			Backend:        getEnvAsString(envs["STORAGE_BACKEND"], BackendFile),
			DataDir:        getEnvAsString(envs["STORAGE_DATA_DIR"], "data"),
			CartKey:        getEnvAsString(envs["STORAGE_CART_KEY"], "cart"),
			SessionKey:     getEnvAsString(envs["STORAGE_SESSION_KEY"], "currentUser"),
			OrderKeyPrefix: getEnvAsString(envs["STORAGE_ORDER_PREFIX"], "order:"),
			WhatsAppPhone:  envs["WHATSAPP_PHONE"],
		},
		AU: AuthConfig{
			Users: parseAdminUsers(envs["ADMIN_USERS"]),
		},
		Env: env,
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("%s: error validation config: %+v", op, err)
	}

	return cfg
}

func validateConfig(cfg *Config) error {
	if cfg.ST.Backend != BackendFile && cfg.ST.Backend != BackendRedis {
		return fmt.Errorf("unknown storage backend %q", cfg.ST.Backend)
	}
	if cfg.ST.Backend == BackendFile && cfg.ST.DataDir == "" {
		return fmt.Errorf("incorrect storage config fields")
	}
	if cfg.ST.CartKey == "" || cfg.ST.SessionKey == "" || cfg.ST.OrderKeyPrefix == "" {
		return fmt.Errorf("incorrect storage config fields")
	}
	if cfg.ST.WhatsAppPhone == "" {
		return fmt.Errorf("whatsapp phone is required")
	}

	if cfg.ST.Backend == BackendRedis {
		if cfg.RD.Host == "" || cfg.RD.DialTimeout <= 0*time.Second || cfg.RD.ReadTimeout <= 0*time.Second ||
			cfg.RD.WriteTimeout <= 0*time.Second || cfg.RD.MaxRetries <= 0 {
			return fmt.Errorf("incorrect cache config fields")
		}
	}

	if cfg.KF.Enabled {
		if cfg.KF.BootstrapServers == "" || cfg.KF.AutoCommitIntervalMs <= 0 || cfg.KF.SessionTimeoutMs <= 0 ||
			cfg.KF.Topic == "" || cfg.KF.ConsumerGroup == "" || cfg.KF.AutoOffsetReset == "" ||
			cfg.KF.FlushTimeout <= 0 {
			return fmt.Errorf("incorrect kafka config fields")
		}
	}

	if cfg.HTTP.Port == "" || cfg.HTTP.ReadTimeout <= 0*time.Second || cfg.HTTP.WriteTimeout <= 0*time.Second ||
		cfg.HTTP.IdleTimeout <= 0*time.Second {
		return fmt.Errorf("incorrect http config fields")
	}

	if len(cfg.AU.Users) == 0 {
		return fmt.Errorf("at least one admin user is required")
	}
	for _, u := range cfg.AU.Users {
		if u.Email == "" || u.Password == "" || u.Name == "" ||
			(u.Role != "admin" && u.Role != "editor") {
			return fmt.Errorf("incorrect admin user entry for %q", u.Email)
		}
	}
	return nil
}

// parseAdminUsers reads the credential list from a single env value:
// "email:password:name:role" tuples separated by commas.
func parseAdminUsers(raw string) []AdminUser {
	const op = "configs.parseAdminUsers"
	if raw == "" {
		return nil
	}
	var users []AdminUser
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 4 {
			log.Printf("%s: skipping malformed entry %q", op, entry)
			continue
		}
		users = append(users, AdminUser{
			Email:    parts[0],
			Password: parts[1],
			Name:     parts[2],
			Role:     parts[3],
		})
	}
	return users
}

func getEnvAsString(strValue, defaultValue string) string {
	if strValue == "" {
		return defaultValue
	}
	return strValue
}

func getEnvAsDuration(strValue string, defaultValue time.Duration) time.Duration {
	const op = "configs.getEnvAsDuration"
	if strValue == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(strValue)
	if err != nil {
		log.Printf("%s:forbidden value for %s, using default: %v", op,
			strValue, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsInt(strValue string, defaultValue int) int {
	const op = "configs.getEnvAsInt"
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("%s:forbidden value for %s, using default: %v", op, strValue,
			defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(strValue string, defaultValue bool) bool {
	const op = "configs.getEnvAsBool"
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strValue)
	if err != nil {
		log.Printf("%s:forbidden value for %s, using default: %v", op, strValue, defaultValue)
		return defaultValue
	}
	return value
}
