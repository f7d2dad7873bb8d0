package domain

// Booking ties a passenger to one consumed seat on a flight. Bookings are
// immutable after creation; cancelling one removes the record and returns
// the seat. Reference is an opaque token handed to external systems
// (event keys, notification emails) so they never need the numeric id.
type Booking struct {
	ID          uint64 `json:"id"`
	FlightID    uint64 `json:"flight_id"`
	PassengerID uint64 `json:"passenger_id"`
	Reference   string `json:"reference"`
}
