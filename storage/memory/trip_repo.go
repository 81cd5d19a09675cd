package memory

import (
	"sync"

	"superapp/pkg/logger"
	"superapp/pkg/models"
	"superapp/storage"
)

type tripRepo struct {
	mu    sync.RWMutex
	trips []*models.Trip

	newID func() string

	events broadcaster
	log    logger.ILogger
}

func NewTripRepo(newID func() string, log logger.ILogger) storage.ITripStorage {
	return &tripRepo{
		newID: newID,
		log:   log.With(logger.String("store", string(storage.StoreTrips))),
	}
}

func (r *tripRepo) CreateTrip(in models.TripInput) models.Trip {
	id := in.ID
	if id == "" {
		id = r.newID()
	}

	trip := models.Trip{
		ID:            id,
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
	stored := trip.Clone()

	r.mu.Lock()
	r.trips = append(r.trips, &stored)
	r.mu.Unlock()

	r.log.Info("trip created",
		logger.String("id", id),
		logger.String("destination", trip.Destination),
		logger.String("status", string(trip.Status)),
		logger.Int("stops", len(trip.Stops)),
	)
	r.events.notify(storage.Event{Store: storage.StoreTrips, Kind: storage.EventCreated, ID: id})

	return trip.Clone()
}

func (r *tripRepo) UpdateTripStatus(id string, status models.TripStatus) bool {
	r.mu.Lock()
	trip := r.find(id)
	if trip != nil {
		trip.Status = status
	}
	r.mu.Unlock()

	if trip == nil {
		r.log.Debug("status update ignored, trip not found", logger.String("id", id))
		return false
	}

	r.log.Info("trip status updated", logger.String("id", id), logger.String("status", string(status)))
	r.events.notify(storage.Event{Store: storage.StoreTrips, Kind: storage.EventStatusChanged, ID: id})
	return true
}

func (r *tripRepo) GetTripByID(id string) (models.Trip, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if trip := r.find(id); trip != nil {
		return trip.Clone(), true
	}
	return models.Trip{}, false
}

// CurrentTrip returns the first trip that is still being planned or is booked.
func (r *tripRepo) CurrentTrip() (models.Trip, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.trips {
		if t.Status.IsActive() {
			return t.Clone(), true
		}
	}
	return models.Trip{}, false
}

func (r *tripRepo) TripHistory() []models.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Trip{}
	for _, t := range r.trips {
		if t.Status.IsTerminal() {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (r *tripRepo) Trips() []models.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Trip, 0, len(r.trips))
	for _, t := range r.trips {
		out = append(out, t.Clone())
	}
	return out
}

func (r *tripRepo) Subscribe(fn storage.Listener) func() {
	return r.events.subscribe(fn)
}

func (r *tripRepo) find(id string) *models.Trip {
	for _, t := range r.trips {
		if t.ID == id {
			return t
		}
	}
	return nil
}
