package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"krishimitra-backend/models"
	"krishimitra-backend/utils"

	"gorm.io/gorm"
)

// WeatherService resolves current conditions for a location, preferring
// OpenWeather and falling back to the keyless Open-Meteo API, and raises
// weather alerts for conditions that endanger crops.
type WeatherService struct {
	DB *gorm.DB

	OpenWeatherURL string
	OpenMeteoURL   string
	GeocodeURL     string
	APIKey         string
	HTTP           *http.Client
}

func NewWeatherService(db *gorm.DB) *WeatherService {
	return &WeatherService{
		DB:             db,
		OpenWeatherURL: utils.EnvOrDefault("OPENWEATHER_URL", "https://api.openweathermap.org/data/2.5"),
		OpenMeteoURL:   utils.EnvOrDefault("OPENMETEO_URL", "https://api.open-meteo.com/v1"),
		GeocodeURL:     utils.EnvOrDefault("GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1"),
		APIKey:         utils.EnvOrDefault("OPENWEATHER_API_KEY", ""),
		HTTP:           &http.Client{Timeout: 15 * time.Second},
	}
}

// WeatherQuery identifies a place either by name or by coordinates.
type WeatherQuery struct {
	Location string   `json:"location,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// WeatherReport is the normalized result shape shared by both providers.
type WeatherReport struct {
	Location    string  `json:"location"`
	Temperature int     `json:"temperature"` // Celsius
	Humidity    int     `json:"humidity"`    // percent
	WindSpeed   int     `json:"wind_speed"`  // km/h
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Rainfall    float64 `json:"rainfall"` // mm in the last hour
}

// Current fetches the weather for q, persisting alerts for the farmer when
// conditions are severe.
func (s *WeatherService) Current(farmerID uint, q WeatherQuery) (*WeatherReport, error) {
	if q.Location == "" && (q.Lat == nil || q.Lon == nil) {
		return nil, fmt.Errorf("%w: either location or coordinates (lat, lon) must be provided", ErrValidation)
	}

	report, err := s.tryOpenWeather(q)
	if err != nil {
		log.Printf("openweather lookup failed, falling back to open-meteo: %v", err)
		report, err = s.tryOpenMeteo(q)
	}
	if err != nil {
		return nil, fmt.Errorf("weather lookup failed: %w", err)
	}

	for _, alert := range EvaluateAlerts(*report) {
		alert.FarmerID = farmerID
		if err := s.DB.Create(&alert).Error; err != nil {
			log.Printf("failed to store weather alert: %v", err)
		}
	}
	return report, nil
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Rain map[string]float64 `json:"rain"`
}

func (s *WeatherService) tryOpenWeather(q WeatherQuery) (*WeatherReport, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY not configured")
	}

	params := url.Values{}
	params.Set("appid", s.APIKey)
	params.Set("units", "metric")
	if q.Lat != nil && q.Lon != nil {
		params.Set("lat", fmt.Sprintf("%g", *q.Lat))
		params.Set("lon", fmt.Sprintf("%g", *q.Lon))
	} else {
		params.Set("q", q.Location)
	}

	resp, err := s.HTTP.Get(s.OpenWeatherURL + "/weather?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather status %d", resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	report := &WeatherReport{
		Location:    fmt.Sprintf("%s, %s", data.Name, data.Sys.Country),
		Temperature: int(math.Round(data.Main.Temp)),
		Humidity:    data.Main.Humidity,
		WindSpeed:   int(math.Round(data.Wind.Speed * 3.6)), // m/s -> km/h
		Description: "current conditions",
		Icon:        "01d",
		Rainfall:    data.Rain["1h"],
	}
	if len(data.Weather) > 0 {
		if data.Weather[0].Description != "" {
			report.Description = data.Weather[0].Description
		}
		if data.Weather[0].Icon != "" {
			report.Icon = data.Weather[0].Icon
		}
	}
	return report, nil
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      int     `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WindSpeed     float64 `json:"wind_speed_10m"` // km/h
	} `json:"current"`
}

func (s *WeatherService) tryOpenMeteo(q WeatherQuery) (*WeatherReport, error) {
	lat, lon := q.Lat, q.Lon
	label := q.Location

	if (lat == nil || lon == nil) && q.Location != "" {
		resp, err := s.HTTP.Get(s.GeocodeURL + "/search?" + url.Values{
			"name": {q.Location}, "count": {"1"}, "language": {"en"}, "format": {"json"},
		}.Encode())
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("geocoding status %d", resp.StatusCode)
		}
		var geo geocodeResponse
		if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
			return nil, err
		}
		if len(geo.Results) == 0 {
			return nil, fmt.Errorf("location %q not found", q.Location)
		}
		first := geo.Results[0]
		lat, lon = &first.Latitude, &first.Longitude
		label = first.Name
		if first.Country != "" {
			label += ", " + first.Country
		}
	}
	if lat == nil || lon == nil {
		return nil, fmt.Errorf("coordinates unresolved")
	}
	if label == "" {
		label = fmt.Sprintf("%g, %g", *lat, *lon)
	}

	resp, err := s.HTTP.Get(s.OpenMeteoURL + "/forecast?" + url.Values{
		"latitude":  {fmt.Sprintf("%g", *lat)},
		"longitude": {fmt.Sprintf("%g", *lon)},
		"current":   {"temperature_2m,relative_humidity_2m,precipitation,wind_speed_10m"},
	}.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo status %d", resp.StatusCode)
	}

	var om openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&om); err != nil {
		return nil, err
	}

	description := "clear sky"
	icon := "01d"
	if om.Current.Precipitation > 0 {
		description = "rain"
		icon = "10d"
	}
	return &WeatherReport{
		Location:    label,
		Temperature: int(math.Round(om.Current.Temperature)),
		Humidity:    om.Current.Humidity,
		WindSpeed:   int(math.Round(om.Current.WindSpeed)),
		Description: description,
		Icon:        icon,
		Rainfall:    math.Max(0, math.Round(om.Current.Precipitation)),
	}, nil
}

// EvaluateAlerts derives crop-threatening alerts from a report.
func EvaluateAlerts(r WeatherReport) []models.WeatherAlert {
	var alerts []models.WeatherAlert

	if r.Rainfall >= 10 {
		severity := "medium"
		if r.Rainfall >= 30 {
			severity = "high"
		}
		alerts = append(alerts, models.WeatherAlert{
			AlertType: "heavy_rain",
			Severity:  severity,
			Location:  r.Location,
			Message:   fmt.Sprintf("Heavy rainfall (%.0f mm) recorded near %s. Check field drainage and delay spraying.", r.Rainfall, r.Location),
		})
	}
	if r.Temperature >= 40 {
		severity := "medium"
		if r.Temperature >= 45 {
			severity = "high"
		}
		alerts = append(alerts, models.WeatherAlert{
			AlertType: "heat_wave",
			Severity:  severity,
			Location:  r.Location,
			Message:   fmt.Sprintf("Extreme heat (%d°C) at %s. Irrigate in the evening and shade young plants.", r.Temperature, r.Location),
		})
	}
	if r.WindSpeed >= 50 {
		alerts = append(alerts, models.WeatherAlert{
			AlertType: "high_wind",
			Severity:  "high",
			Location:  r.Location,
			Message:   fmt.Sprintf("High winds (%d km/h) at %s. Stake tall crops and secure covers.", r.WindSpeed, r.Location),
		})
	}
	return alerts
}

// Alerts lists the farmer's stored weather alerts, newest first.
func (s *WeatherService) Alerts(farmerID uint) ([]models.WeatherAlert, error) {
	var list []models.WeatherAlert
	err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Limit(100).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load weather alerts: %w", err)
	}
	return list, nil
}
