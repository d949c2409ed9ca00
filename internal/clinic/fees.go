package clinic

import "math"

// gstRate is the tax applied on top of the base consultation fee.
const gstRate = 0.18

const defaultConsultationFee int64 = 500

// consultationFees maps a doctor specialty to its base consultation fee.
// Built once; never mutated.
var consultationFees = map[string]int64{
	"Cardiology":       800,
	"Neurology":        900,
	"Orthopedics":      700,
	"Dermatology":      500,
	"Gynecology":       600,
	"General Medicine": 400,
	"Oncology":         850,
	"Pediatrics":       500,
	"ENT":              450,
	"Ophthalmology":    550,
	"Endocrinology":    700,
	"Nephrology":       750,
	"Gastroenterology": 720,
	"Pulmonology":      650,
	"Urology":          680,
	"Rheumatology":     670,
	"Physiotherapy":    500,
	"General Surgery":  600,
	"Psychiatry":       500,
}

// ConsultationFee returns the base fee for a specialty, falling back to
// the default for specialties not in the table.
func ConsultationFee(specialty string) int64 {
	if fee, ok := consultationFees[specialty]; ok {
		return fee
	}
	return defaultConsultationFee
}

// billTotal applies GST to the base fee and rounds to the nearest whole
// rupee, halves away from zero.
func billTotal(base int64) int64 {
	return int64(math.Round(float64(base) * (1 + gstRate)))
}
