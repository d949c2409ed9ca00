// Package menu is the interactive text surface over the record store. It
// is a thin I/O loop: every option maps onto one store operation, and
// store failures are reported as messages without ending the session.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clinicdesk/clinic-records/internal/clinic"
)

type Menu struct {
	store *clinic.Store
	in    *bufio.Reader
	out   io.Writer
}

func New(store *clinic.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

const options = `
--- CLINIC MANAGEMENT ---
1. List Patients
2. Add Patient
3. Edit Patient
4. Delete Patient
5. Search Patients by name
6. List Doctors
7. Add Doctor
8. Edit Doctor
9. Delete Doctor
10. Search Doctors by name
11. List Appointments
12. Book Appointment
13. Generate Bill for Appointment
14. List Bills
15. Save & Exit
`

// Run drives the menu until the user picks Save & Exit (returns nil) or
// the input stream ends (returns io.EOF). Saving itself is the caller's
// job once Run returns.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, options)
		choice, err := m.readInt("Choose option: ")
		if err != nil {
			return err
		}

		done, err := m.dispatch(choice)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (m *Menu) dispatch(choice int) (done bool, err error) {
	switch choice {
	case 1:
		m.listPatients()
	case 2:
		err = m.addPatient()
	case 3:
		err = m.editPatient()
	case 4:
		err = m.deletePatient()
	case 5:
		err = m.searchPatients()
	case 6:
		m.listDoctors()
	case 7:
		err = m.addDoctor()
	case 8:
		err = m.editDoctor()
	case 9:
		err = m.deleteDoctor()
	case 10:
		err = m.searchDoctors()
	case 11:
		m.listAppointments()
	case 12:
		err = m.bookAppointment()
	case 13:
		err = m.generateBill()
	case 14:
		m.listBills()
	case 15:
		fmt.Fprintln(m.out, "Saving and exiting.")
		return true, nil
	default:
		fmt.Fprintln(m.out, "Unknown option.")
	}
	return false, err
}

// Input helpers

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt re-prompts until the user types a valid integer.
func (m *Menu) readInt(prompt string) (int, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input. Try again.")
			continue
		}
		return n, nil
	}
}

// Patients

func (m *Menu) listPatients() {
	fmt.Fprintln(m.out, "\nPatients:")
	for _, p := range m.store.SearchPatientsByName("") {
		fmt.Fprintln(m.out, p)
	}
}

func (m *Menu) addPatient() error {
	name, err := m.readLine("Name: ")
	if err != nil {
		return err
	}
	age, err := m.readInt("Age: ")
	if err != nil {
		return err
	}
	gender, err := m.readLine("Gender: ")
	if err != nil {
		return err
	}
	contact, err := m.readLine("Contact: ")
	if err != nil {
		return err
	}
	p := m.store.AddPatient(name, age, gender, contact)
	fmt.Fprintf(m.out, "Added: %s\n", p)
	return nil
}

func (m *Menu) editPatient() error {
	id, err := m.readInt("Patient ID to edit: ")
	if err != nil {
		return err
	}
	name, err := m.readLine("New Name: ")
	if err != nil {
		return err
	}
	age, err := m.readInt("New Age: ")
	if err != nil {
		return err
	}
	gender, err := m.readLine("New Gender: ")
	if err != nil {
		return err
	}
	contact, err := m.readLine("New Contact: ")
	if err != nil {
		return err
	}
	if m.store.EditPatient(id, name, age, gender, contact) {
		fmt.Fprintln(m.out, "Patient edited.")
	} else {
		fmt.Fprintln(m.out, "Patient not found.")
	}
	return nil
}

func (m *Menu) deletePatient() error {
	id, err := m.readInt("Patient ID to delete: ")
	if err != nil {
		return err
	}
	if m.store.DeletePatient(id) {
		fmt.Fprintln(m.out, "Patient deleted.")
	} else {
		fmt.Fprintln(m.out, "Patient not found.")
	}
	return nil
}

func (m *Menu) searchPatients() error {
	q, err := m.readLine("Search name: ")
	if err != nil {
		return err
	}
	results := m.store.SearchPatientsByName(q)
	if len(results) == 0 {
		fmt.Fprintln(m.out, "No patients found.")
		return nil
	}
	for _, p := range results {
		fmt.Fprintln(m.out, p)
	}
	return nil
}

// Doctors

func (m *Menu) listDoctors() {
	fmt.Fprintln(m.out, "\nDoctors:")
	for _, d := range m.store.SearchDoctorsByName("") {
		fmt.Fprintln(m.out, d)
	}
}

func (m *Menu) addDoctor() error {
	name, err := m.readLine("Name: ")
	if err != nil {
		return err
	}
	specialty, err := m.readLine("Specialty: ")
	if err != nil {
		return err
	}
	contact, err := m.readLine("Contact: ")
	if err != nil {
		return err
	}
	d := m.store.AddDoctor(name, specialty, contact)
	fmt.Fprintf(m.out, "Added: %s\n", d)
	return nil
}

func (m *Menu) editDoctor() error {
	id, err := m.readInt("Doctor ID to edit: ")
	if err != nil {
		return err
	}
	name, err := m.readLine("New Name: ")
	if err != nil {
		return err
	}
	specialty, err := m.readLine("New Specialty: ")
	if err != nil {
		return err
	}
	contact, err := m.readLine("New Contact: ")
	if err != nil {
		return err
	}
	if m.store.EditDoctor(id, name, specialty, contact) {
		fmt.Fprintln(m.out, "Doctor edited.")
	} else {
		fmt.Fprintln(m.out, "Doctor not found.")
	}
	return nil
}

func (m *Menu) deleteDoctor() error {
	id, err := m.readInt("Doctor ID to delete: ")
	if err != nil {
		return err
	}
	if m.store.DeleteDoctor(id) {
		fmt.Fprintln(m.out, "Doctor deleted.")
	} else {
		fmt.Fprintln(m.out, "Doctor not found.")
	}
	return nil
}

func (m *Menu) searchDoctors() error {
	q, err := m.readLine("Search name: ")
	if err != nil {
		return err
	}
	results := m.store.SearchDoctorsByName(q)
	if len(results) == 0 {
		fmt.Fprintln(m.out, "No doctors found.")
		return nil
	}
	for _, d := range results {
		fmt.Fprintln(m.out, d)
	}
	return nil
}

// Appointments and billing

func (m *Menu) listAppointments() {
	fmt.Fprintln(m.out, "\nAppointments:")
	for _, a := range m.store.Appointments() {
		fmt.Fprintln(m.out, a)
	}
}

func (m *Menu) bookAppointment() error {
	patientID, err := m.readInt("Patient ID: ")
	if err != nil {
		return err
	}
	doctorID, err := m.readInt("Doctor ID: ")
	if err != nil {
		return err
	}
	date, err := m.readLine("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	timeOfDay, err := m.readLine("Time (HH:MM): ")
	if err != nil {
		return err
	}

	appt, bookErr := m.store.BookAppointment(patientID, doctorID, date, timeOfDay)
	switch {
	case errors.Is(bookErr, clinic.ErrPatientNotFound),
		errors.Is(bookErr, clinic.ErrDoctorNotFound):
		fmt.Fprintf(m.out, "Failed to book appointment: %v\n", bookErr)
	case errors.Is(bookErr, clinic.ErrSlotTaken):
		fmt.Fprintf(m.out, "Failed to book appointment: %v (clash detected)\n", bookErr)
	case bookErr != nil:
		fmt.Fprintf(m.out, "Failed to book appointment: %v\n", bookErr)
	default:
		fmt.Fprintf(m.out, "Booked: %s\n", appt)
	}
	return nil
}

func (m *Menu) generateBill() error {
	id, err := m.readInt("Appointment ID to bill: ")
	if err != nil {
		return err
	}

	bill, genErr := m.store.GenerateBill(id)
	switch {
	case errors.Is(genErr, clinic.ErrAppointmentNotFound),
		errors.Is(genErr, clinic.ErrDoctorNotFound):
		fmt.Fprintf(m.out, "Failed to generate bill: %v\n", genErr)
	case genErr != nil:
		fmt.Fprintf(m.out, "Failed to generate bill: %v\n", genErr)
	default:
		fmt.Fprintf(m.out, "Generated bill: %s\n", bill)
	}
	return nil
}

func (m *Menu) listBills() {
	fmt.Fprintln(m.out, "\nBills:")
	for _, b := range m.store.Bills() {
		fmt.Fprintln(m.out, b)
	}
}
