package clinic

import (
	"strconv"

	"github.com/clinicdesk/clinic-records/internal/csvio"
)

// File headers. Ignored on load, written on save.
var (
	patientHeader     = []string{"id", "name", "age", "gender", "contact"}
	doctorHeader      = []string{"id", "name", "specialty", "contact"}
	appointmentHeader = []string{"id", "patientId", "doctorId", "date", "time"}
	billHeader        = []string{"billId", "appointmentId", "doctorId", "amount", "description", "date"}
)

// LoadPatients replaces the patient collection with the file's contents
// and rebuilds the id counter from the maximum id seen. Rows that are too
// short or carry an unparseable integer field are skipped. Returns the
// number of patients loaded.
func (s *Store) LoadPatients(path string) (int, error) {
	rows, err := csvio.ReadFile(path)
	if err != nil {
		return 0, err
	}

	s.patients = nil
	s.nextPatientID = 1
	for _, r := range rows {
		if len(r) < 5 {
			continue
		}
		id, err := strconv.Atoi(r[0])
		if err != nil {
			continue
		}
		age, err := strconv.Atoi(r[2])
		if err != nil {
			continue
		}
		s.patients = append(s.patients, Patient{ID: id, Name: r[1], Age: age, Gender: r[3], Contact: r[4]})
		if id >= s.nextPatientID {
			s.nextPatientID = id + 1
		}
	}
	return len(s.patients), nil
}

// LoadDoctors replaces the doctor collection with the file's contents.
func (s *Store) LoadDoctors(path string) (int, error) {
	rows, err := csvio.ReadFile(path)
	if err != nil {
		return 0, err
	}

	s.doctors = nil
	s.nextDoctorID = 1
	for _, r := range rows {
		if len(r) < 4 {
			continue
		}
		id, err := strconv.Atoi(r[0])
		if err != nil {
			continue
		}
		s.doctors = append(s.doctors, Doctor{ID: id, Name: r[1], Specialty: r[2], Contact: r[3]})
		if id >= s.nextDoctorID {
			s.nextDoctorID = id + 1
		}
	}
	return len(s.doctors), nil
}

// LoadAppointments replaces the appointment collection with the file's
// contents. No referential or conflict checks are re-run on load.
func (s *Store) LoadAppointments(path string) (int, error) {
	rows, err := csvio.ReadFile(path)
	if err != nil {
		return 0, err
	}

	s.appointments = nil
	s.nextAppointmentID = 1
	for _, r := range rows {
		if len(r) < 5 {
			continue
		}
		id, err := strconv.Atoi(r[0])
		if err != nil {
			continue
		}
		patientID, err := strconv.Atoi(r[1])
		if err != nil {
			continue
		}
		doctorID, err := strconv.Atoi(r[2])
		if err != nil {
			continue
		}
		s.appointments = append(s.appointments, Appointment{ID: id, PatientID: patientID, DoctorID: doctorID, Date: r[3], Time: r[4]})
		if id >= s.nextAppointmentID {
			s.nextAppointmentID = id + 1
		}
	}
	return len(s.appointments), nil
}

// LoadBills replaces the bill collection with the file's contents. An
// unparseable amount is recorded as zero rather than dropping the row.
func (s *Store) LoadBills(path string) (int, error) {
	rows, err := csvio.ReadFile(path)
	if err != nil {
		return 0, err
	}

	s.bills = nil
	s.nextBillID = 1
	for _, r := range rows {
		if len(r) < 6 {
			continue
		}
		id, err := strconv.Atoi(r[0])
		if err != nil {
			continue
		}
		appointmentID, err := strconv.Atoi(r[1])
		if err != nil {
			continue
		}
		doctorID, err := strconv.Atoi(r[2])
		if err != nil {
			continue
		}
		amount, err := strconv.ParseFloat(r[3], 64)
		if err != nil {
			amount = 0
		}
		s.bills = append(s.bills, Bill{
			ID:            id,
			AppointmentID: appointmentID,
			DoctorID:      doctorID,
			Amount:        int64(amount),
			Description:   r[4],
			Date:          r[5],
		})
		if id >= s.nextBillID {
			s.nextBillID = id + 1
		}
	}
	return len(s.bills), nil
}

// SavePatients overwrites path with the current patient collection.
func (s *Store) SavePatients(path string) error {
	rows := make([][]string, 0, len(s.patients))
	for _, p := range s.patients {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Name, strconv.Itoa(p.Age), p.Gender, p.Contact})
	}
	return csvio.WriteFile(path, patientHeader, rows)
}

// SaveDoctors overwrites path with the current doctor collection.
func (s *Store) SaveDoctors(path string) error {
	rows := make([][]string, 0, len(s.doctors))
	for _, d := range s.doctors {
		rows = append(rows, []string{strconv.Itoa(d.ID), d.Name, d.Specialty, d.Contact})
	}
	return csvio.WriteFile(path, doctorHeader, rows)
}

// SaveAppointments overwrites path with the current appointment collection.
func (s *Store) SaveAppointments(path string) error {
	rows := make([][]string, 0, len(s.appointments))
	for _, a := range s.appointments {
		rows = append(rows, []string{strconv.Itoa(a.ID), strconv.Itoa(a.PatientID), strconv.Itoa(a.DoctorID), a.Date, a.Time})
	}
	return csvio.WriteFile(path, appointmentHeader, rows)
}

// SaveBills overwrites path with the current bill collection.
func (s *Store) SaveBills(path string) error {
	rows := make([][]string, 0, len(s.bills))
	for _, b := range s.bills {
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			strconv.Itoa(b.AppointmentID),
			strconv.Itoa(b.DoctorID),
			strconv.FormatInt(b.Amount, 10),
			b.Description,
			b.Date,
		})
	}
	return csvio.WriteFile(path, billHeader, rows)
}
