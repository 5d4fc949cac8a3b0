package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Lock  LockConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LockConfig controls the per-doctor schedule lock.
type LockConfig struct {
	TTL            time.Duration
	AcquireTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	lockTTL, err := time.ParseDuration(viper.GetString("SCHEDULE_LOCK_TTL"))
	if err != nil {
		lockTTL = 10 * time.Second
	}

	lockAcquireTimeout, err := time.ParseDuration(viper.GetString("SCHEDULE_LOCK_ACQUIRE_TIMEOUT"))
	if err != nil {
		lockAcquireTimeout = 5 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Lock: LockConfig{
			TTL:            lockTTL,
			AcquireTimeout: lockAcquireTimeout,
		},
	}

	return config, nil
}
