package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clinicdesk/clinic-records/internal/clinic"
	"github.com/clinicdesk/clinic-records/internal/config"
	"github.com/clinicdesk/clinic-records/internal/menu"
)

func main() {
	cfg := config.Load()

	log := newLogger(cfg.LogLevel)
	sessionLog := log.WithField("session_id", uuid.NewString())
	sessionLog.WithFields(logrus.Fields{
		"env":      cfg.Env,
		"data_dir": cfg.DataDir,
	}).Info("clinic starting up")

	store := clinic.NewStore()
	loadAll(store, cfg, sessionLog)

	m := menu.New(store, os.Stdin, os.Stdout)
	if err := m.Run(); err != nil && !errors.Is(err, io.EOF) {
		sessionLog.WithError(err).Fatal("menu aborted")
	}

	saveAll(store, cfg, sessionLog)
	sessionLog.Info("clinic shutting down")
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// loadAll populates the store from the data files. A missing file means a
// first run and leaves that collection empty; any other load failure
// aborts startup.
func loadAll(store *clinic.Store, cfg config.Config, log *logrus.Entry) {
	loads := []struct {
		name string
		path string
		fn   func(string) (int, error)
	}{
		{"patients", cfg.PatientsFile(), store.LoadPatients},
		{"doctors", cfg.DoctorsFile(), store.LoadDoctors},
		{"appointments", cfg.AppointmentsFile(), store.LoadAppointments},
		{"bills", cfg.BillingFile(), store.LoadBills},
	}

	for _, l := range loads {
		n, err := l.fn(l.path)
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("file", l.path).Warnf("no %s file yet, starting empty", l.name)
			continue
		}
		if err != nil {
			log.WithError(err).Fatalf("load %s", l.name)
		}
		log.WithFields(logrus.Fields{"count": n, "file": l.path}).Infof("%s loaded", l.name)
	}
}

// saveAll flushes every collection back to disk. Save failures are
// reported but do not stop the remaining saves.
func saveAll(store *clinic.Store, cfg config.Config, log *logrus.Entry) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.WithError(err).Error("create data dir")
		return
	}

	saves := []struct {
		name string
		path string
		fn   func(string) error
	}{
		{"patients", cfg.PatientsFile(), store.SavePatients},
		{"doctors", cfg.DoctorsFile(), store.SaveDoctors},
		{"appointments", cfg.AppointmentsFile(), store.SaveAppointments},
		{"bills", cfg.BillingFile(), store.SaveBills},
	}

	for _, sv := range saves {
		if err := sv.fn(sv.path); err != nil {
			log.WithError(err).Errorf("save %s", sv.name)
			continue
		}
		log.WithField("file", sv.path).Infof("%s saved", sv.name)
	}
}
