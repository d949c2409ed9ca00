package clinic

import "strings"

// billDescription is stamped on every generated bill.
const billDescription = "Consultation Fee (incl. GST 18%)"

// Store owns the four record collections and assigns their identifiers.
// Collections keep insertion order and are scanned linearly; they are
// small enough that no indexing is needed.
//
// Store is not safe for concurrent use. Callers must issue one operation
// at a time.
type Store struct {
	patients     []Patient
	doctors      []Doctor
	appointments []Appointment
	bills        []Bill

	nextPatientID     int
	nextDoctorID      int
	nextAppointmentID int
	nextBillID        int
}

func NewStore() *Store {
	return &Store{
		nextPatientID:     1,
		nextDoctorID:      1,
		nextAppointmentID: 1,
		nextBillID:        1,
	}
}

// Patients

// AddPatient assigns the next patient id and appends the new record.
func (s *Store) AddPatient(name string, age int, gender, contact string) Patient {
	p := Patient{
		ID:      s.nextPatientID,
		Name:    name,
		Age:     age,
		Gender:  gender,
		Contact: contact,
	}
	s.nextPatientID++
	s.patients = append(s.patients, p)
	return p
}

// EditPatient overwrites all mutable fields of the patient with this id.
// It reports whether a patient was found. Field values are not validated.
func (s *Store) EditPatient(id int, name string, age int, gender, contact string) bool {
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients[i].Name = name
			s.patients[i].Age = age
			s.patients[i].Gender = gender
			s.patients[i].Contact = contact
			return true
		}
	}
	return false
}

// DeletePatient removes the patient with this id and every appointment
// referencing it. It reports whether a patient was removed.
func (s *Store) DeletePatient(id int) bool {
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			s.dropAppointments(func(a Appointment) bool { return a.PatientID == id })
			return true
		}
	}
	return false
}

func (s *Store) FindPatientByID(id int) (Patient, bool) {
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}

// SearchPatientsByName returns patients whose name contains the query,
// case-insensitively, in insertion order. An empty query matches everyone.
func (s *Store) SearchPatientsByName(query string) []Patient {
	q := strings.ToLower(query)
	var out []Patient
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Doctors

// AddDoctor assigns the next doctor id and appends the new record.
func (s *Store) AddDoctor(name, specialty, contact string) Doctor {
	d := Doctor{
		ID:        s.nextDoctorID,
		Name:      name,
		Specialty: specialty,
		Contact:   contact,
	}
	s.nextDoctorID++
	s.doctors = append(s.doctors, d)
	return d
}

// EditDoctor overwrites all mutable fields of the doctor with this id.
// It reports whether a doctor was found.
func (s *Store) EditDoctor(id int, name, specialty, contact string) bool {
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			s.doctors[i].Name = name
			s.doctors[i].Specialty = specialty
			s.doctors[i].Contact = contact
			return true
		}
	}
	return false
}

// DeleteDoctor removes the doctor with this id and every appointment
// referencing it. It reports whether a doctor was removed.
func (s *Store) DeleteDoctor(id int) bool {
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			s.dropAppointments(func(a Appointment) bool { return a.DoctorID == id })
			return true
		}
	}
	return false
}

func (s *Store) FindDoctorByID(id int) (Doctor, bool) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// SearchDoctorsByName returns doctors whose name contains the query,
// case-insensitively, in insertion order.
func (s *Store) SearchDoctorsByName(query string) []Doctor {
	q := strings.ToLower(query)
	var out []Doctor
	for _, d := range s.doctors {
		if strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return out
}

// dropAppointments removes every appointment matching the predicate,
// keeping the rest in order.
func (s *Store) dropAppointments(match func(Appointment) bool) {
	kept := s.appointments[:0]
	for _, a := range s.appointments {
		if !match(a) {
			kept = append(kept, a)
		}
	}
	s.appointments = kept
}

// Appointments

// BookAppointment validates both references, rejects a slot clash (same
// doctor, date and time as an existing appointment), then assigns the next
// appointment id and appends. A failed booking leaves the collection
// unchanged. There is no symmetric check for a double-booked patient.
func (s *Store) BookAppointment(patientID, doctorID int, date, timeOfDay string) (Appointment, error) {
	if _, ok := s.FindPatientByID(patientID); !ok {
		return Appointment{}, ErrPatientNotFound
	}
	if _, ok := s.FindDoctorByID(doctorID); !ok {
		return Appointment{}, ErrDoctorNotFound
	}

	for _, a := range s.appointments {
		if a.DoctorID == doctorID && a.Date == date && a.Time == timeOfDay {
			return Appointment{}, ErrSlotTaken
		}
	}

	appt := Appointment{
		ID:        s.nextAppointmentID,
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      timeOfDay,
	}
	s.nextAppointmentID++
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

// Appointments returns the booked appointments in insertion order. The
// slice is a copy: mutating it cannot bypass the booking conflict check.
func (s *Store) Appointments() []Appointment {
	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Billing

// GenerateBill computes the charge for an appointment from the fee table
// for the doctor's specialty plus 18% GST, rounded to the nearest rupee.
// The bill carries the appointment's date and a denormalized copy of the
// doctor id. A failed generation leaves all collections unchanged.
//
// The doctor lookup can fail even though booking validated it: an
// appointment reloaded from storage may reference a doctor whose record
// was removed out-of-band, bypassing the delete cascade.
func (s *Store) GenerateBill(appointmentID int) (Bill, error) {
	var appt *Appointment
	for i := range s.appointments {
		if s.appointments[i].ID == appointmentID {
			appt = &s.appointments[i]
			break
		}
	}
	if appt == nil {
		return Bill{}, ErrAppointmentNotFound
	}

	doc, ok := s.FindDoctorByID(appt.DoctorID)
	if !ok {
		return Bill{}, ErrDoctorNotFound
	}

	b := Bill{
		ID:            s.nextBillID,
		AppointmentID: appt.ID,
		DoctorID:      doc.ID,
		Amount:        billTotal(ConsultationFee(doc.Specialty)),
		Description:   billDescription,
		Date:          appt.Date,
	}
	s.nextBillID++
	s.bills = append(s.bills, b)
	return b, nil
}

// Bills returns the generated bills in insertion order, as a copy.
func (s *Store) Bills() []Bill {
	out := make([]Bill, len(s.bills))
	copy(out, s.bills)
	return out
}
