// Package seed loads catalog fixtures (patients, pharmacies, transactions)
// and optional users into the store. The API itself never writes the
// catalog; this is how it gets populated.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
)

const (
	fixtureDateLayout      = "2006-01-02"
	fixtureTimestampLayout = "2006-01-02 15:04:05"
)

// Fixture is the JSON document read by the seeder.
//
//	{
//	  "users":        [{"id": "TESTER", "username": "tester", "password": "...", "role": "admin"}],
//	  "patients":     [{"id": "PATIENT1", "first_name": "...", "last_name": "...", "date_of_birth": "1990-03-07"}],
//	  "pharmacies":   [{"id": "PHARMACY1", "name": "...", "city": "..."}],
//	  "transactions": [{"id": "TRANSACTION1", "patient_id": "PATIENT1", "pharmacy_id": "PHARMACY1", "amount": 12.5, "timestamp": "2020-12-31 23:05:09"}]
//	}
type Fixture struct {
	Users        []UserFixture        `json:"users"`
	Patients     []PatientFixture     `json:"patients"`
	Pharmacies   []PharmacyFixture    `json:"pharmacies"`
	Transactions []TransactionFixture `json:"transactions"`
}

type UserFixture struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type PatientFixture struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

type PharmacyFixture struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type TransactionFixture struct {
	ID         string  `json:"id"`
	PatientID  string  `json:"patient_id"`
	PharmacyID string  `json:"pharmacy_id"`
	Amount     float64 `json:"amount"`
	Timestamp  string  `json:"timestamp"`
}

func ReadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	f := &Fixture{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(fixtureDateLayout, strings.TrimSpace(s))
}

// parseTimestamp accepts RFC 3339 or "YYYY-MM-DD HH:MM:SS".
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(fixtureTimestampLayout, s)
}
