package config

import (
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			slog.Warn("no .env file loaded, relying on process environment", slog.String("error", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return v
}

// AdviceTunables are the named knobs of the advice calculators,
// threaded into the service as plain config instead of globals.
type AdviceTunables struct {
	WalkSpeedKmh  float64
	RamenBaseKcal float64
	EggKcal       float64
	CheeseKcal    float64
	RiceKcal      float64
	MilkKcal      float64
	KcalPerKg     float64
}

func (c *Config) Advice() AdviceTunables {
	return AdviceTunables{
		WalkSpeedKmh:  c.GetFloat("WALK_SPEED_KMH", 5.0),
		RamenBaseKcal: c.GetFloat("RAMEN_BASE_KCAL", 530),
		EggKcal:       c.GetFloat("EGG_KCAL", 70),
		CheeseKcal:    c.GetFloat("CHEESE_KCAL", 70),
		RiceKcal:      c.GetFloat("RICE_KCAL", 210),
		MilkKcal:      c.GetFloat("MILK_KCAL", 100),
		KcalPerKg:     c.GetFloat("KCAL_PER_KG", 7700),
	}
}
