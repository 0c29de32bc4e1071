package config

import (
	"fmt"
	"log"

	"storefront/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type PsqlConfig struct {
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
	Sslmode  string `mapstructure:"sslmode"`
}

type HTTPConfig struct {
	Env  string `mapstructure:"env" validate:"required,oneof=local dev prod"`
	Port int    `mapstructure:"port" validate:"required"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
}

type Config struct {
	HTTP    HTTPConfig       `mapstructure:"http"`
	Psql    PsqlConfig       `mapstructure:"psql_conn"`
	Session SessionConfig    `mapstructure:"session"`
	Catalog []models.Product `mapstructure:"catalog"`
}

func Load() (*Config, error) {
	// .env is optional, it only overlays the process environment
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		log.Printf("Error reading config file, %s\n", err)
		return nil, err
	}

	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		log.Printf("Unable to decode into struct, %v\n", err)
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		log.Printf("Invalid config, %v\n", err)
		return nil, err
	}

	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog()
	}

	return &cfg, nil
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Psql.User, c.Psql.Password, c.Psql.Host, c.Psql.Port, c.Psql.Database, c.Psql.Sslmode)
}

// DefaultCatalog is the built-in electronics catalog used when the
// config file does not define one. Prices are in minor currency units.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{Id: 1, Name: "Telefon X", Price: 4999, Image: "images/telefon-x.svg"},
		{Id: 2, Name: "Kulaklık Z", Price: 399, Image: "images/kulaklik-z.svg"},
		{Id: 3, Name: "Tablet Pro", Price: 2599, Image: "images/tablet-pro.svg"},
		{Id: 4, Name: "Akıllı Saat S", Price: 899, Image: "images/akilli-saat-s.svg"},
		{Id: 5, Name: "Bluetooth Hoparlör", Price: 249, Image: "images/hoparlor.svg"},
	}
}
