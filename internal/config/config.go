package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"neonpos/backend/internal/domain"
)

// Config carries the store identity defaults applied to the seeded
// settings at startup. Everything else lives in state and is mutated
// through dispatch, not re-read from the environment.
type Config struct {
	StoreName      string
	Address        string
	Currency       string
	TaxRatePercent float64
	Theme          string
}

func Load() Config {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	taxRate, err := strconv.ParseFloat(getEnv("TAX_RATE_PERCENT", "8"), 64)
	if err != nil || taxRate < 0 {
		taxRate = 8
	}

	theme := getEnv("THEME", domain.ThemeLight)
	if theme != domain.ThemeDark && theme != domain.ThemeLight {
		theme = domain.ThemeLight
	}

	return Config{
		StoreName:      getEnv("STORE_NAME", "Sujit Electronics"),
		Address:        getEnv("STORE_ADDRESS", "Bharatpur-11, Chitwan"),
		Currency:       getEnv("CURRENCY", "USD"),
		TaxRatePercent: taxRate,
		Theme:          theme,
	}
}

// Settings converts the config into the settings record held in state.
func (c Config) Settings() domain.AppSettings {
	return domain.AppSettings{
		StoreName: c.StoreName,
		Address:   c.Address,
		Currency:  c.Currency,
		TaxRate:   c.TaxRatePercent,
		Theme:     c.Theme,
	}
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
