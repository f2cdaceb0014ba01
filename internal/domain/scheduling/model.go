package scheduling

// Appointment statuses. An appointment is created Pending and is only ever
// moved to Approved or Rejected by an admin decision.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Appointment maps to the appointments table. patient_id and doctor_id are
// weak references: they are stored as supplied with no existence check.
type Appointment struct {
	ID        int64  `db:"id" json:"id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	DoctorID  int64  `db:"doctor_id" json:"doctor_id"`
	Date      string `db:"date" json:"date"`
	Time      string `db:"time" json:"time"`
	Status    string `db:"status" json:"status"`
}

// PatientView is an appointment as shown to the booking patient: the
// doctor's name resolved, the patient's own identity implied.
type PatientView struct {
	ID     int64  `json:"id"`
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

// DoctorView is an appointment as shown to the treating doctor.
type DoctorView struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	Patient   string `json:"patient"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

// AdminView is an appointment as shown on the admin overview, with both
// names resolved.
type AdminView struct {
	ID      int64  `json:"id"`
	Patient string `json:"patient"`
	Doctor  string `json:"doctor"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}
