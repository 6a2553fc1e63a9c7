package httpapi

import "github.com/gsbevilaqua83/private-rest-api/internal/server/models"

const (
	dateLayout      = "01/02/2006"
	timestampLayout = "01/02/2006 15:04:05"
)

type patientView struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

type pharmacyView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type transactionView struct {
	Patient   patientView  `json:"patient"`
	Pharmacy  pharmacyView `json:"pharmacy"`
	ID        string       `json:"id"`
	Amount    float64      `json:"amount"`
	Timestamp string       `json:"timestamp"`
}

func newPatientView(p models.Patient) patientView {
	return patientView{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth.Format(dateLayout),
	}
}

func newPharmacyView(ph models.Pharmacy) pharmacyView {
	return pharmacyView{ID: ph.ID, Name: ph.Name, City: ph.City}
}

func newTransactionView(t models.Transaction) transactionView {
	return transactionView{
		Patient:   newPatientView(t.Patient),
		Pharmacy:  newPharmacyView(t.Pharmacy),
		ID:        t.ID,
		Amount:    t.Amount,
		Timestamp: t.Timestamp.Format(timestampLayout),
	}
}

// mapViews converts rows into views. The result is never nil so that an
// empty list encodes as [].
func mapViews[M, V any](rows []M, fn func(M) V) []V {
	out := make([]V, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
