package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATA_DIR", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_DIR", "/var/clinic")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/clinic", cfg.DataDir)
}

func TestDataFilePaths(t *testing.T) {
	cfg := Config{DataDir: "data"}

	assert.Equal(t, filepath.Join("data", "patients.csv"), cfg.PatientsFile())
	assert.Equal(t, filepath.Join("data", "doctors.csv"), cfg.DoctorsFile())
	assert.Equal(t, filepath.Join("data", "appointments.csv"), cfg.AppointmentsFile())
	assert.Equal(t, filepath.Join("data", "billing.csv"), cfg.BillingFile())
}
