package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	AWS    AWSConfig
	JWT    JWTConfig
	Stripe StripeConfig
	S3     S3Config
}

type AppConfig struct {
	Port string
	Env  string
}

type AWSConfig struct {
	Region string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type StripeConfig struct {
	SecretKey string
}

type S3Config struct {
	Bucket string
}

// LoadConfig reads configuration from .env (when present) and the environment.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine in deployed environments; env vars take over.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	expiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = time.Hour
	}

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}

	config := &Config{
		App: AppConfig{
			Port: port,
			Env:  viper.GetString("APP_ENV"),
		},
		AWS: AWSConfig{
			Region: viper.GetString("AWS_REGION"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
		},
		S3: S3Config{
			Bucket: viper.GetString("S3_BUCKET_NAME"),
		},
	}

	return config, nil
}
