package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superapp/pkg/models"
	"superapp/storage"
)

func fullTripInput() models.TripInput {
	confirmation := "HX-2231"
	return models.TripInput{
		Destination:   "Nairobi",
		DepartureDate: "2026-12-01",
		ReturnDate:    "2026-12-12",
		Stops: []models.TripStop{
			{City: "Accra", Country: "Ghana", Duration: 2},
			{City: "Nairobi", Country: "Kenya", Duration: 7},
		},
		TotalCost:    2450.5,
		Status:       models.TripBooked,
		VisaRequired: []string{"Kenya"},
		FlightDetails: &models.FlightDetails{
			Airline:       "Kenya Airways",
			FlightNumber:  "KQ533",
			DepartureTime: "2026-12-01T08:30:00Z",
			ArrivalTime:   "2026-12-01T15:10:00Z",
			Extra:         map[string]any{"seat": "14A", "baggage": 2.0},
		},
		HotelDetails: &models.HotelDetails{
			Name:               "Sarova Stanley",
			Address:            "Kimathi Street, Nairobi",
			CheckInDate:        "2026-12-03",
			CheckOutDate:       "2026-12-12",
			RoomType:           "Deluxe",
			TotalPrice:         1300,
			ConfirmationNumber: &confirmation,
			Amenities:          []string{"wifi", "breakfast"},
		},
	}
}

func TestCreateTripRoundTrip(t *testing.T) {
	trips := newStore(t).Trip()
	in := fullTripInput()

	created := trips.CreateTrip(in)
	require.NotEmpty(t, created.ID)

	got, ok := trips.GetTripByID(created.ID)
	require.True(t, ok)

	want := models.Trip{
		ID:            created.ID,
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate,
		ReturnDate:    in.ReturnDate,
		Stops:         in.Stops,
		TotalCost:     in.TotalCost,
		Status:        in.Status,
		VisaRequired:  in.VisaRequired,
		FlightDetails: in.FlightDetails,
		HotelDetails:  in.HotelDetails,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, want, created)
}

func TestCreateTripDoesNotAliasInput(t *testing.T) {
	trips := newStore(t).Trip()
	in := fullTripInput()
	created := trips.CreateTrip(in)

	in.Stops[0].City = "Lagos"
	in.FlightDetails.Extra["seat"] = "1A"
	in.HotelDetails.Amenities[0] = "pool"

	got, _ := trips.GetTripByID(created.ID)
	assert.Equal(t, "Accra", got.Stops[0].City)
	assert.Equal(t, "14A", got.FlightDetails.Extra["seat"])
	assert.Equal(t, "wifi", got.HotelDetails.Amenities[0])
}

func TestCurrentTripAndHistory(t *testing.T) {
	trips := newStore(t).Trip()

	done := fullTripInput()
	done.Status = models.TripCompleted
	completed := trips.CreateTrip(done)

	planning := fullTripInput()
	planning.Status = models.TripPlanning
	planned := trips.CreateTrip(planning)

	current, ok := trips.CurrentTrip()
	require.True(t, ok)
	assert.Equal(t, planned.ID, current.ID)

	history := trips.TripHistory()
	require.Len(t, history, 1)
	assert.Equal(t, completed.ID, history[0].ID)

	require.True(t, trips.UpdateTripStatus(planned.ID, models.TripCancelled))
	_, ok = trips.CurrentTrip()
	assert.False(t, ok)
	assert.Len(t, trips.TripHistory(), 2)
}

func TestUpdateTripStatusUnknownIDIsNoop(t *testing.T) {
	trips := newStore(t).Trip()
	trips.CreateTrip(fullTripInput())
	before := trips.Trips()

	assert.False(t, trips.UpdateTripStatus("missing", models.TripCancelled))
	assert.Equal(t, before, trips.Trips())
}

func TestGetTripByIDOnEmptyStore(t *testing.T) {
	trips := newStore(t).Trip()

	_, ok := trips.GetTripByID("anything")
	assert.False(t, ok)
	assert.Empty(t, trips.TripHistory())
	assert.Empty(t, trips.Trips())
}

func TestTripEvents(t *testing.T) {
	trips := newStore(t).Trip()

	var kinds []storage.EventKind
	trips.Subscribe(func(ev storage.Event) {
		assert.Equal(t, storage.StoreTrips, ev.Store)
		kinds = append(kinds, ev.Kind)
	})

	trip := trips.CreateTrip(fullTripInput())
	trips.UpdateTripStatus(trip.ID, models.TripCompleted)

	assert.Equal(t, []storage.EventKind{storage.EventCreated, storage.EventStatusChanged}, kinds)
}

func TestFlightExtraNestedValuesAreCopied(t *testing.T) {
	trips := newStore(t).Trip()

	legs := []any{"LOS", "NBO"}
	fare := map[string]any{"class": "Y", "fees": []any{12.5}}
	in := fullTripInput()
	in.FlightDetails.Extra = map[string]any{"legs": legs, "fare": fare}

	created := trips.CreateTrip(in)

	legs[0] = "CALLER"
	fare["class"] = "CALLER"

	read, ok := trips.GetTripByID(created.ID)
	require.True(t, ok)
	read.FlightDetails.Extra["legs"].([]any)[1] = "READER"
	read.FlightDetails.Extra["fare"].(map[string]any)["fees"].([]any)[0] = 0.0
	created.FlightDetails.Extra["legs"].([]any)[0] = "RETURNED"

	got, ok := trips.GetTripByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, []any{"LOS", "NBO"}, got.FlightDetails.Extra["legs"])
	assert.Equal(t, map[string]any{"class": "Y", "fees": []any{12.5}}, got.FlightDetails.Extra["fare"])
}
