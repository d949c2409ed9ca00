// Command seed generates a plausible starter dataset and writes the
// clinic data files, so the interactive app has something to load on a
// fresh checkout.
package main

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"github.com/clinicdesk/clinic-records/internal/clinic"
	"github.com/clinicdesk/clinic-records/internal/config"
)

var specialties = []string{
	"Cardiology",
	"Neurology",
	"Orthopedics",
	"Dermatology",
	"Gynecology",
	"General Medicine",
	"Oncology",
	"Pediatrics",
	"ENT",
	"Ophthalmology",
	"Psychiatry",
}

var timeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

func main() {
	cfg := config.Load()
	log := logrus.New()
	log.Info("seed starting")

	gofakeit.Seed(time.Now().UnixNano())

	store := clinic.NewStore()

	doctorCount := envInt("SEED_DOCTORS", 10)
	patientCount := envInt("SEED_PATIENTS", 50)
	appointmentCount := envInt("SEED_APPOINTMENTS", 30)

	seedDoctors(store, doctorCount)
	seedPatients(store, patientCount)
	booked := seedAppointments(store, appointmentCount, patientCount, doctorCount)
	billed := seedBills(store)

	log.WithFields(logrus.Fields{
		"doctors":      doctorCount,
		"patients":     patientCount,
		"appointments": booked,
		"bills":        billed,
	}).Info("records generated")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.WithError(err).Fatal("create data dir")
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
			log.WithError(err).Fatalf("save %s", sv.name)
		}
		log.WithField("file", sv.path).Infof("%s saved", sv.name)
	}

	log.Info("seed complete")
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func seedDoctors(store *clinic.Store, count int) {
	for i := 0; i < count; i++ {
		spec := specialties[gofakeit.Number(0, len(specialties)-1)]
		store.AddDoctor("Dr. "+gofakeit.Name(), spec, gofakeit.Phone())
	}
}

func seedPatients(store *clinic.Store, count int) {
	for i := 0; i < count; i++ {
		store.AddPatient(gofakeit.Name(), gofakeit.Number(1, 90), gofakeit.Gender(), gofakeit.Phone())
	}
}

// seedAppointments books random patient/doctor/slot combinations. Clashes
// on a doctor's slot are expected and simply retried with a new draw.
func seedAppointments(store *clinic.Store, count, patientCount, doctorCount int) int {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	booked := 0
	for attempts := 0; booked < count && attempts < count*10; attempts++ {
		patientID := gofakeit.Number(1, patientCount)
		doctorID := gofakeit.Number(1, doctorCount)
		date := gofakeit.DateRange(start, end).Format("2006-01-02")
		slot := timeSlots[gofakeit.Number(0, len(timeSlots)-1)]

		_, err := store.BookAppointment(patientID, doctorID, date, slot)
		if errors.Is(err, clinic.ErrSlotTaken) {
			continue
		}
		if err != nil {
			continue
		}
		booked++
	}
	return booked
}

// seedBills invoices roughly a third of the booked appointments.
func seedBills(store *clinic.Store) int {
	billed := 0
	for _, appt := range store.Appointments() {
		if gofakeit.Number(0, 2) != 0 {
			continue
		}
		if _, err := store.GenerateBill(appt.ID); err == nil {
			billed++
		}
	}
	return billed
}
