package domain

import "strings"

// Flight is a scheduled flight with a fixed seat capacity.
// AvailableSeats is a persisted counter kept in sync with the set of
// bookings referencing the flight: Capacity - AvailableSeats equals the
// number of active bookings.
type Flight struct {
	ID             uint64 `json:"id"`
	Airline        string `json:"airline"`
	FlightNumber   string `json:"flight_number"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureTime  int64  `json:"departure_time"`
	ArrivalTime    int64  `json:"arrival_time"`
	Capacity       uint32 `json:"capacity"`
	AvailableSeats uint32 `json:"available_seats"`
}

// Matches reports whether criteria appears as a case-sensitive substring
// of any of the flight's descriptive fields.
func (f Flight) Matches(criteria string) bool {
	return strings.Contains(f.Airline, criteria) ||
		strings.Contains(f.FlightNumber, criteria) ||
		strings.Contains(f.Origin, criteria) ||
		strings.Contains(f.Destination, criteria)
}
