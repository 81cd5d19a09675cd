package service

import (
	"superapp/pkg/logger"
	"superapp/pkg/models"
	"superapp/storage"
)

type TripService interface {
	CreateTrip(in models.TripInput) models.Trip
	UpdateTripStatus(id string, status models.TripStatus) bool
	GetTripByID(id string) (models.Trip, bool)
	CurrentTrip() (models.Trip, bool)
	TripHistory() []models.Trip
	Trips() []models.Trip
}

type tripService struct {
	stg storage.ITripStorage
	log logger.ILogger
}

func NewTripService(stg storage.IStorage, log logger.ILogger) TripService {
	return &tripService{
		stg: stg.Trip(),
		log: log,
	}
}

func (s *tripService) CreateTrip(in models.TripInput) models.Trip {
	if len(in.VisaRequired) > 0 {
		s.log.Debug("trip needs visas", logger.String("destination", in.Destination), logger.Any("countries", in.VisaRequired))
	}
	return s.stg.CreateTrip(in)
}

func (s *tripService) UpdateTripStatus(id string, status models.TripStatus) bool {
	return s.stg.UpdateTripStatus(id, status)
}

func (s *tripService) GetTripByID(id string) (models.Trip, bool) {
	return s.stg.GetTripByID(id)
}

func (s *tripService) CurrentTrip() (models.Trip, bool) {
	return s.stg.CurrentTrip()
}

func (s *tripService) TripHistory() []models.Trip {
	return s.stg.TripHistory()
}

func (s *tripService) Trips() []models.Trip {
	return s.stg.Trips()
}
