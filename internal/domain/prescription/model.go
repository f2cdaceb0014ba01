package prescription

import "time"

// Prescription is written by a doctor after a consultation. Patient vitals
// are copied onto the record at write time rather than referenced, so the
// prescription stays a self-contained snapshot.
type Prescription struct {
	ID          int64     `json:"id"`
	DoctorName  string    `json:"doctor_name"`
	PatientName string    `json:"patient_name"`
	Age         *int      `json:"age,omitempty"`
	Height      *float64  `json:"height,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	Medicines   string    `json:"medicines"`
	CreatedAt   time.Time `json:"created_at"`
}
