package shared

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	CatalogBase  string
	CatalogRPS   int
	FetchTimeout time.Duration // 0 = transport default

	AttractionsBase string
	RapidAPIKey     string
	RapidAPIHost    string
	Longitude       string
	Latitude        string
	Unit            string
	Currency        string
	Lang            string

	DisplayTZ    string
	StartWorkers int
}

var defaults = map[string]any{
	"app_env":               "prod",
	"log_level":             "info",
	"http_addr":             ":8080",
	"metrics_addr":          "",
	"catalog_base_url":      "https://travel-api2024-default-rtdb.asia-southeast1.firebasedatabase.app",
	"catalog_rps":           5,
	"fetch_timeout_seconds": 0,
	"attractions_base_url":  "https://travel-advisor.p.rapidapi.com",
	"rapidapi_key":          "",
	"rapidapi_host":         "travel-advisor.p.rapidapi.com",
	"attractions_longitude": "109.19553",
	"attractions_latitude":  "12.235588",
	"attractions_lunit":     "km",
	"attractions_currency":  "USD",
	"attractions_lang":      "en_US",
	"display_timezone":      "Asia/Jakarta",
	"start_workers":         4,
}

// Load reads defaults, then an optional travel.yaml, then the environment
// (a .env file in the working directory is loaded into it first).
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetConfigName("travel")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			log.Warn().Err(err).Msg("travel.yaml unreadable, ignoring it")
		}
	}
	v.AutomaticEnv()

	c := Config{
		AppEnv:          v.GetString("app_env"),
		LogLevel:        v.GetString("log_level"),
		HTTPAddr:        v.GetString("http_addr"),
		MetricsAddr:     v.GetString("metrics_addr"),
		CatalogBase:     v.GetString("catalog_base_url"),
		CatalogRPS:      v.GetInt("catalog_rps"),
		FetchTimeout:    time.Duration(v.GetInt("fetch_timeout_seconds")) * time.Second,
		AttractionsBase: v.GetString("attractions_base_url"),
		RapidAPIKey:     v.GetString("rapidapi_key"),
		RapidAPIHost:    v.GetString("rapidapi_host"),
		Longitude:       v.GetString("attractions_longitude"),
		Latitude:        v.GetString("attractions_latitude"),
		Unit:            v.GetString("attractions_lunit"),
		Currency:        v.GetString("attractions_currency"),
		Lang:            v.GetString("attractions_lang"),
		DisplayTZ:       v.GetString("display_timezone"),
		StartWorkers:    v.GetInt("start_workers"),
	}
	if c.RapidAPIKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY is empty; the attractions screen will show an empty list")
	}
	return c
}

// Location resolves DisplayTZ, falling back to UTC when the zone is unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		log.Warn().Err(err).Str("tz", c.DisplayTZ).Msg("unknown display timezone, using UTC")
		return time.UTC
	}
	return loc
}
