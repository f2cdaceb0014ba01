package identity

// Admin is a back-office account. Exactly one is seeded at first startup
// and the table is otherwise immutable.
type Admin struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}

// Doctor is a staff account from the fixed roster seeded at first startup.
type Doctor struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Specialty string `db:"specialty" json:"specialty"`
	Email     string `db:"email" json:"email"`
	Password  string `db:"password" json:"-"`
}

// Patient maps to the patients table. Rows are created via
// self-registration and never updated or deleted.
type Patient struct {
	ID     int64    `db:"id" json:"id"`
	Name   string   `db:"name" json:"name"`
	Email  string   `db:"email" json:"email"`
	Age    *int     `db:"age" json:"age"`
	Gender *string  `db:"gender" json:"gender"`
	Height *float64 `db:"height" json:"height"`
	Weight *float64 `db:"weight" json:"weight"`
}
