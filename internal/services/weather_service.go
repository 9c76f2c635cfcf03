package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// WeatherService passes dashboard weather lookups through to OpenWeather.
// Responses are returned unmodified; the client reshapes them.
type WeatherService struct {
	apiKey  string
	baseURL string
}

func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{apiKey: apiKey, baseURL: openWeatherBaseURL}
}

func (s *WeatherService) params() url.Values {
	q := url.Values{}
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")
	return q
}

func (s *WeatherService) GetCurrentWeather(ctx context.Context, city string) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	q := s.params()
	q.Set("q", city)
	return fetchJSON(ctx, s.baseURL+"/weather", q)
}

func (s *WeatherService) GetWeatherByCoordinates(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	q := s.params()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return fetchJSON(ctx, s.baseURL+"/weather", q)
}

func (s *WeatherService) GetForecast(ctx context.Context, city string) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	q := s.params()
	q.Set("q", city)
	return fetchJSON(ctx, s.baseURL+"/forecast", q)
}
