package clinic

import "fmt"

// Patient is a registered clinic patient.
type Patient struct {
	ID      int
	Name    string
	Age     int
	Gender  string
	Contact string
}

func (p Patient) String() string {
	return fmt.Sprintf("Patient[ID=%d, Name=%s, Age=%d, Gender=%s, Contact=%s]",
		p.ID, p.Name, p.Age, p.Gender, p.Contact)
}

// Doctor is a consulting doctor. Specialty drives the consultation fee.
type Doctor struct {
	ID        int
	Name      string
	Specialty string
	Contact   string
}

func (d Doctor) String() string {
	return fmt.Sprintf("Doctor[ID=%d, Name=%s, Specialty=%s, Contact=%s]",
		d.ID, d.Name, d.Specialty, d.Contact)
}

// Appointment links a patient to a doctor at a date ("YYYY-MM-DD") and
// time ("HH:MM"). Both are kept as opaque strings and compared exactly;
// there is no parsing or normalization.
type Appointment struct {
	ID        int
	PatientID int
	DoctorID  int
	Date      string
	Time      string
}

func (a Appointment) String() string {
	return fmt.Sprintf("Appointment[ID=%d, PatientID=%d, DoctorID=%d, Date=%s, Time=%s]",
		a.ID, a.PatientID, a.DoctorID, a.Date, a.Time)
}

// Bill is an invoice generated from an appointment. DoctorID is a
// denormalized copy taken at generation time, and Date is copied from the
// billed appointment. Bills are append-only.
type Bill struct {
	ID            int
	AppointmentID int
	DoctorID      int
	Amount        int64
	Description   string
	Date          string
}

func (b Bill) String() string {
	return fmt.Sprintf("Bill[ID=%d, AppointmentID=%d, DoctorID=%d, Amount=%d, Description=%s, Date=%s]",
		b.ID, b.AppointmentID, b.DoctorID, b.Amount, b.Description, b.Date)
}
