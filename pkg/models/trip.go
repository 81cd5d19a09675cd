package models

import (
	"encoding/json"
	"fmt"
)

type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripBooked    TripStatus = "booked"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripPlanning, TripBooked, TripCompleted, TripCancelled:
		return true
	}
	return false
}

func (s TripStatus) IsActive() bool {
	return s == TripPlanning || s == TripBooked
}

func (s TripStatus) IsTerminal() bool {
	return s == TripCompleted || s == TripCancelled
}

func ParseTripStatus(s string) (TripStatus, error) {
	status := TripStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown trip status %q", s)
	}
	return status, nil
}

type TripStop struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	Duration int    `json:"duration"`
}

// FlightDetails carries the known flight fields plus any additional
// fields the caller attached. Extra is flattened into the JSON object.
type FlightDetails struct {
	Airline       string         `json:"airline"`
	FlightNumber  string         `json:"flight_number"`
	DepartureTime string         `json:"departure_time"`
	ArrivalTime   string         `json:"arrival_time"`
	Extra         map[string]any `json:"-"`
}

var flightKnownFields = map[string]struct{}{
	"airline":        {},
	"flight_number":  {},
	"departure_time": {},
	"arrival_time":   {},
}

func (f FlightDetails) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.Extra)+4)
	for k, v := range f.Extra {
		if _, known := flightKnownFields[k]; known {
			continue
		}
		out[k] = v
	}
	out["airline"] = f.Airline
	out["flight_number"] = f.FlightNumber
	out["departure_time"] = f.DepartureTime
	out["arrival_time"] = f.ArrivalTime
	return json.Marshal(out)
}

func (f *FlightDetails) UnmarshalJSON(data []byte) error {
	type known struct {
		Airline       string `json:"airline"`
		FlightNumber  string `json:"flight_number"`
		DepartureTime string `json:"departure_time"`
		ArrivalTime   string `json:"arrival_time"`
	}
	var k known
	if err := json.Unmarshal(data, &k); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name := range flightKnownFields {
		delete(raw, name)
	}

	f.Airline = k.Airline
	f.FlightNumber = k.FlightNumber
	f.DepartureTime = k.DepartureTime
	f.ArrivalTime = k.ArrivalTime
	f.Extra = nil
	if len(raw) > 0 {
		f.Extra = raw
	}
	return nil
}

type HotelDetails struct {
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	CheckInDate        string   `json:"check_in_date"`
	CheckOutDate       string   `json:"check_out_date"`
	RoomType           string   `json:"room_type"`
	TotalPrice         float64  `json:"total_price"`
	ConfirmationNumber *string  `json:"confirmation_number,omitempty"`
	Amenities          []string `json:"amenities,omitempty"`
}

type Trip struct {
	ID            string         `json:"id"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departure_date"`
	ReturnDate    string         `json:"return_date"`
	Stops         []TripStop     `json:"stops"`
	TotalCost     float64        `json:"total_cost"`
	Status        TripStatus     `json:"status"`
	VisaRequired  []string       `json:"visa_required,omitempty"`
	FlightDetails *FlightDetails `json:"flight_details,omitempty"`
	HotelDetails  *HotelDetails  `json:"hotel_details,omitempty"`
}

// TripInput is the payload for creating a trip. ID is optional.
type TripInput struct {
	ID            string         `json:"id,omitempty"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departure_date"`
	ReturnDate    string         `json:"return_date"`
	Stops         []TripStop     `json:"stops"`
	TotalCost     float64        `json:"total_cost"`
	Status        TripStatus     `json:"status"`
	VisaRequired  []string       `json:"visa_required,omitempty"`
	FlightDetails *FlightDetails `json:"flight_details,omitempty"`
	HotelDetails  *HotelDetails  `json:"hotel_details,omitempty"`
}

// Clone returns a deep copy of the trip. Nested maps and slices inside
// FlightDetails.Extra are copied as well.
func (t Trip) Clone() Trip {
	out := t
	if t.Stops != nil {
		out.Stops = append([]TripStop(nil), t.Stops...)
	}
	if t.VisaRequired != nil {
		out.VisaRequired = append([]string(nil), t.VisaRequired...)
	}
	if t.FlightDetails != nil {
		fd := *t.FlightDetails
		if t.FlightDetails.Extra != nil {
			fd.Extra = cloneAnyMap(t.FlightDetails.Extra)
		}
		out.FlightDetails = &fd
	}
	if t.HotelDetails != nil {
		hd := *t.HotelDetails
		hd.ConfirmationNumber = cloneString(t.HotelDetails.ConfirmationNumber)
		if t.HotelDetails.Amenities != nil {
			hd.Amenities = append([]string(nil), t.HotelDetails.Amenities...)
		}
		out.HotelDetails = &hd
	}
	return out
}

// cloneAny copies the container shapes encoding/json produces. Other values
// are kept as is.
func cloneAny(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneAnyMap(x)
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneAny(e)
		}
		return out
	case []string:
		if x == nil {
			return x
		}
		return append([]string(nil), x...)
	default:
		return v
	}
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}
