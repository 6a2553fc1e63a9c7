package models

import "time"

type Patient struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}
