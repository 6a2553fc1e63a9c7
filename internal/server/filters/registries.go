package filters

// Column names are qualified with the aliases the repositories use:
// p for patients, ph for pharmacies, t for transactions.

var Patients = Registry{
	"first_name":    Like("p.first_name"),
	"last_name":     Like("p.last_name"),
	"date_of_birth": TextLike("p.date_of_birth"),
}

var Pharmacies = Registry{
	"name": Like("ph.name"),
	"city": Like("ph.city"),
}

// Transactions filters over the transaction joined with its patient and
// pharmacy. amount is compared exactly, unlike every other field.
var Transactions = Registry{
	"patient_first_name":    Like("p.first_name"),
	"patient_last_name":     Like("p.last_name"),
	"patient_date_of_birth": TextLike("p.date_of_birth"),
	"pharmacy_name":         Like("ph.name"),
	"pharmacy_city":         Like("ph.city"),
	"amount":                EqualNumber("t.amount"),
	"timestamp":             TextLike(`t."timestamp"`),
}
