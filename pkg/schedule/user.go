package schedule

// User identifies a planner owner. Immutable once created.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Account pairs a user with their planner collection. The JSON field
// names match the persisted blob.
type Account struct {
	User    User       `json:"user"`
	Planner Collection `json:"plannerData"`
}

// UserData is the full process-wide state, keyed by user id.
type UserData map[string]*Account
