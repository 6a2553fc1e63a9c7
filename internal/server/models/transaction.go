package models

import "time"

// Transaction is a purchase made by a patient at a pharmacy. Patient and
// Pharmacy are populated by joined reads.
type Transaction struct {
	ID         string
	PatientID  string
	PharmacyID string
	Amount     float64
	Timestamp  time.Time

	Patient  Patient
	Pharmacy Pharmacy
}
