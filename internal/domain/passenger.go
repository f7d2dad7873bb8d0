package domain

// Passenger is a person who can hold bookings. Email is informational
// only, no uniqueness is enforced.
type Passenger struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
