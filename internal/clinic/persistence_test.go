package clinic

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func TestPatientsRoundTrip(t *testing.T) {
	src := NewStore()
	src.AddPatient("Asha Rao", 34, "F", "555-0101")
	src.AddPatient("Ravi Kumar", 52, "M", "555-0102")
	src.AddPatient("Meera Nair", 28, "F", "555-0103")

	path := tempFile(t, "patients.csv")
	require.NoError(t, src.SavePatients(path))

	dst := NewStore()
	n, err := dst.LoadPatients(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, src.SearchPatientsByName(""), dst.SearchPatientsByName(""))
}

func TestLoadPatientsRebuildsIDCounter(t *testing.T) {
	path := tempFile(t, "patients.csv")
	data := "id,name,age,gender,contact\n5,Asha,34,F,c1\n9,Ravi,52,M,c2\n2,Meera,28,F,c3\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s := NewStore()
	n, err := s.LoadPatients(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	p := s.AddPatient("New", 1, "F", "c")
	assert.Equal(t, 10, p.ID, "next id is one past the maximum loaded id")
}

func TestLoadPatientsSkipsMalformedRows(t *testing.T) {
	path := tempFile(t, "patients.csv")
	data := "id,name,age,gender,contact\n" +
		"1,Asha,34,F,c1\n" +
		"abc,Bad,34,F,c2\n" + // non-integer id
		"3,Short,34\n" + // too few fields
		"4,BadAge,old,F,c4\n" + // non-integer age
		"5,Ravi,52,M,c5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s := NewStore()
	n, err := s.LoadPatients(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got := s.SearchPatientsByName("")
	require.Len(t, got, 2)
	assert.Equal(t, "Asha", got[0].Name)
	assert.Equal(t, "Ravi", got[1].Name)
}

func TestLoadPatientsReplacesExistingState(t *testing.T) {
	path := tempFile(t, "patients.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name,age,gender,contact\n1,FromFile,20,F,c\n"), 0o644))

	s := NewStore()
	s.AddPatient("InMemory", 30, "M", "c")
	s.AddPatient("AlsoInMemory", 31, "M", "c")

	n, err := s.LoadPatients(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got := s.SearchPatientsByName("")
	require.Len(t, got, 1)
	assert.Equal(t, "FromFile", got[0].Name)
}

func TestLoadPatientsMissingFile(t *testing.T) {
	s := NewStore()

	_, err := s.LoadPatients(tempFile(t, "absent.csv"))

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDoctorsRoundTrip(t *testing.T) {
	src := NewStore()
	src.AddDoctor("Dr. Mehta", "Cardiology", "555-0201")
	src.AddDoctor("Dr. Iyer", "ENT", "555-0202")

	path := tempFile(t, "doctors.csv")
	require.NoError(t, src.SaveDoctors(path))

	dst := NewStore()
	n, err := dst.LoadDoctors(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, src.SearchDoctorsByName(""), dst.SearchDoctorsByName(""))
}

func TestAppointmentsRoundTrip(t *testing.T) {
	src := NewStore()
	p := src.AddPatient("Asha", 34, "F", "c")
	d := src.AddDoctor("Dr. Mehta", "Cardiology", "c")
	_, err := src.BookAppointment(p.ID, d.ID, "2026-09-01", "10:00")
	require.NoError(t, err)
	_, err = src.BookAppointment(p.ID, d.ID, "2026-09-02", "11:30")
	require.NoError(t, err)

	path := tempFile(t, "appointments.csv")
	require.NoError(t, src.SaveAppointments(path))

	dst := NewStore()
	n, err := dst.LoadAppointments(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, src.Appointments(), dst.Appointments())
}

func TestBillsRoundTrip(t *testing.T) {
	src := NewStore()
	p := src.AddPatient("Asha", 34, "F", "c")
	d := src.AddDoctor("Dr. Mehta", "Cardiology", "c")
	appt, err := src.BookAppointment(p.ID, d.ID, "2026-09-01", "10:00")
	require.NoError(t, err)
	_, err = src.GenerateBill(appt.ID)
	require.NoError(t, err)

	path := tempFile(t, "billing.csv")
	require.NoError(t, src.SaveBills(path))

	dst := NewStore()
	n, err := dst.LoadBills(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, src.Bills(), dst.Bills())
}

func TestLoadBillsKeepsRowWithBadAmount(t *testing.T) {
	path := tempFile(t, "billing.csv")
	data := "billId,appointmentId,doctorId,amount,description,date\n" +
		"1,1,1,notanumber,Consultation,2026-09-01\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s := NewStore()
	n, err := s.LoadBills(path)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, int64(0), s.Bills()[0].Amount)
}

// A reload can resurrect an appointment whose doctor row is gone, which
// booking-time validation never allows. Billing it must fail cleanly.
func TestGenerateBillAfterDoctorRemovedOutOfBand(t *testing.T) {
	src := NewStore()
	p := src.AddPatient("Asha", 34, "F", "c")
	d := src.AddDoctor("Dr. Mehta", "Cardiology", "c")
	appt, err := src.BookAppointment(p.ID, d.ID, "2026-09-01", "10:00")
	require.NoError(t, err)

	apptPath := tempFile(t, "appointments.csv")
	require.NoError(t, src.SaveAppointments(apptPath))

	dst := NewStore()
	dst.AddPatient("Asha", 34, "F", "c")
	// No doctors loaded at all.
	_, err = dst.LoadAppointments(apptPath)
	require.NoError(t, err)

	_, err = dst.GenerateBill(appt.ID)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Empty(t, dst.Bills())
}

func TestSaveQuotesCommaFields(t *testing.T) {
	src := NewStore()
	src.AddPatient("Rao, Asha", 34, "F", "c")

	path := tempFile(t, "patients.csv")
	require.NoError(t, src.SavePatients(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Rao, Asha"`)

	dst := NewStore()
	_, err = dst.LoadPatients(path)
	require.NoError(t, err)
	assert.Equal(t, "Rao, Asha", dst.SearchPatientsByName("")[0].Name)
}
