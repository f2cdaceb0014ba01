package auth

const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// LoginResult tells the client which portal to show. No token or session is
// issued; the client carries the identifying fields itself on later requests.
type LoginResult struct {
	Role       string `json:"role"`
	Username   string `json:"username,omitempty"`
	DoctorName string `json:"doctorName,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
}
