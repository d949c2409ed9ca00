package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string // dev, prod
	LogLevel string // logrus level name
	DataDir  string // directory holding the clinic data files
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:      getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DataDir:  getEnv("DATA_DIR", "data"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c Config) PatientsFile() string     { return filepath.Join(c.DataDir, "patients.csv") }
func (c Config) DoctorsFile() string      { return filepath.Join(c.DataDir, "doctors.csv") }
func (c Config) AppointmentsFile() string { return filepath.Join(c.DataDir, "appointments.csv") }
func (c Config) BillingFile() string      { return filepath.Join(c.DataDir, "billing.csv") }
