package services

import (
	"fmt"
	"time"

	"trafficportal/pkg/apperr"
	"trafficportal/pkg/models"
	"trafficportal/pkg/repository"
)

// Cache is the read-through cache the traffic service uses for the
// location dashboard. A nil cache disables caching.
type Cache interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration)
}

const locationSummaryTTL = 30 * time.Second

type TrafficService interface {
	Summary(req models.TrafficRequest) (models.TrafficSummaryResponse, error)
	LocationSummary(req models.LocationSummaryRequest) (models.LocationSummaryResponse, error)
	ActivityHistory(req models.ActivityRequest) (models.ActivityResponse, error)
}

type trafficService struct {
	traffic repository.TrafficRepository
	cache   Cache
}

func NewTrafficService(traffic repository.TrafficRepository, cache Cache) TrafficService {
	return &trafficService{traffic: traffic, cache: cache}
}

func (s *trafficService) Summary(req models.TrafficRequest) (models.TrafficSummaryResponse, error) {
	if req.WanIP == "" {
		return models.TrafficSummaryResponse{}, apperr.NewBadRequest("wan_ip is required")
	}
	if req.FromTime == "" || req.ToTime == "" {
		return models.TrafficSummaryResponse{}, apperr.NewBadRequest("from_time and to_time are required")
	}

	rows, count, err := s.traffic.TrafficByRange(req.WanIP, req.FromTime, req.ToTime)
	if err != nil {
		return models.TrafficSummaryResponse{}, err
	}

	status := "success"
	if count == 0 {
		status = "no data"
	}

	return models.TrafficSummaryResponse{
		StartingTime: req.FromTime,
		EndingTime:   req.ToTime,
		Status:       status,
		Payload: models.TrafficPayload{
			NoOfRows: count,
			Data:     rows,
		},
	}, nil
}

func (s *trafficService) LocationSummary(req models.LocationSummaryRequest) (models.LocationSummaryResponse, error) {
	if req.FromTime == "" || req.ToTime == "" {
		return models.LocationSummaryResponse{}, apperr.NewBadRequest("from_time and to_time are required")
	}

	cacheKey := fmt.Sprintf("traffic:location:%s:%s:%s", req.Location, req.FromTime, req.ToTime)
	var summary []models.LocationSummary

	if s.cache == nil || !s.cache.Get(cacheKey, &summary) {
		var err error
		summary, err = s.traffic.LocationSummary(req.Location, req.FromTime, req.ToTime)
		if err != nil {
			return models.LocationSummaryResponse{}, err
		}
		if s.cache != nil {
			s.cache.Set(cacheKey, summary, locationSummaryTTL)
		}
	}

	return models.LocationSummaryResponse{
		Location:     req.Location,
		FromTime:     req.FromTime,
		ToTime:       req.ToTime,
		TotalRecords: len(summary),
		Summary:      summary,
	}, nil
}

func (s *trafficService) ActivityHistory(req models.ActivityRequest) (models.ActivityResponse, error) {
	if req.WanIP == "" {
		return models.ActivityResponse{}, apperr.NewBadRequest("wan_ip is required")
	}
	if req.FromTime == "" || req.ToTime == "" {
		return models.ActivityResponse{}, apperr.NewBadRequest("from_time and to_time are required")
	}

	history, err := s.traffic.UserActivityByWanIP(req.WanIP, req.FromTime, req.ToTime)
	if err != nil {
		return models.ActivityResponse{}, err
	}

	return models.ActivityResponse{
		WanIP:    req.WanIP,
		FromTime: req.FromTime,
		ToTime:   req.ToTime,
		NoOfRows: len(history),
		History:  history,
	}, nil
}
