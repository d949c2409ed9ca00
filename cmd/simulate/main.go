// Command simulate runs a randomized operation stream against an
// in-memory store and reports per-operation tallies. The store is
// single-threaded, so the stream is strictly sequential: one operation
// completes before the next is issued.
package main

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clinicdesk/clinic-records/internal/clinic"
)

type simConfig struct {
	Ops          int
	PatientCount int
	DoctorCount  int
	BookRatio    float64
	BillRatio    float64
}

type tally struct {
	Total    int
	Success  int
	Conflict int
	NotFound int
}

func (t *tally) record(err error) {
	t.Total++
	switch {
	case err == nil:
		t.Success++
	case errors.Is(err, clinic.ErrSlotTaken):
		t.Conflict++
	case errors.Is(err, clinic.ErrPatientNotFound),
		errors.Is(err, clinic.ErrDoctorNotFound),
		errors.Is(err, clinic.ErrAppointmentNotFound):
		t.NotFound++
	}
}

func (t *tally) fields() logrus.Fields {
	return logrus.Fields{
		"total":     t.Total,
		"success":   t.Success,
		"conflict":  t.Conflict,
		"not_found": t.NotFound,
	}
}

func loadSimConfig() simConfig {
	return simConfig{
		Ops:          envInt("SIM_OPS", 1000),
		PatientCount: envInt("SIM_PATIENTS", 40),
		DoctorCount:  envInt("SIM_DOCTORS", 8),
		BookRatio:    envFloat("SIM_BOOK_RATIO", 0.6),
		BillRatio:    envFloat("SIM_BILL_RATIO", 0.3),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return def
}

func main() {
	log := logrus.New()
	cfg := loadSimConfig()
	runLog := log.WithField("run_id", uuid.NewString())
	runLog.WithFields(logrus.Fields{
		"ops":      cfg.Ops,
		"patients": cfg.PatientCount,
		"doctors":  cfg.DoctorCount,
	}).Info("simulator starting")

	gofakeit.Seed(time.Now().UnixNano())

	store := clinic.NewStore()
	for i := 0; i < cfg.DoctorCount; i++ {
		store.AddDoctor("Dr. "+gofakeit.Name(), gofakeit.RandomString([]string{
			"Cardiology", "Neurology", "Dermatology", "Pediatrics", "ENT",
		}), gofakeit.Phone())
	}
	for i := 0; i < cfg.PatientCount; i++ {
		store.AddPatient(gofakeit.Name(), gofakeit.Number(1, 90), gofakeit.Gender(), gofakeit.Phone())
	}

	var booking, billing, searching tally

	start := time.Now()
	for i := 0; i < cfg.Ops; i++ {
		roll := gofakeit.Float64Range(0, 1)
		switch {
		case roll < cfg.BookRatio:
			// Ids are drawn past the valid range on purpose so the
			// not-found paths get exercised too.
			_, err := store.BookAppointment(
				gofakeit.Number(1, cfg.PatientCount+5),
				gofakeit.Number(1, cfg.DoctorCount+2),
				gofakeit.DateRange(start, start.AddDate(0, 1, 0)).Format("2006-01-02"),
				gofakeit.RandomString([]string{"09:00", "10:00", "11:00", "14:00"}),
			)
			booking.record(err)
		case roll < cfg.BookRatio+cfg.BillRatio:
			appts := store.Appointments()
			id := gofakeit.Number(1, len(appts)+10)
			_, err := store.GenerateBill(id)
			billing.record(err)
		default:
			store.SearchPatientsByName(gofakeit.LetterN(1))
			searching.record(nil)
		}
	}
	elapsed := time.Since(start)

	runLog.WithFields(booking.fields()).Info("booking tally")
	runLog.WithFields(billing.fields()).Info("billing tally")
	runLog.WithFields(searching.fields()).Info("search tally")
	runLog.WithFields(logrus.Fields{
		"elapsed":      elapsed.String(),
		"appointments": len(store.Appointments()),
		"bills":        len(store.Bills()),
	}).Info("simulator finished")
}
