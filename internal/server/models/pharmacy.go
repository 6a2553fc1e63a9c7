package models

type Pharmacy struct {
	ID   string
	Name string
	City string
}
