package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrentUsesOpenWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "Pune" {
			t.Errorf("q = %q, want Pune", r.URL.Query().Get("q"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Pune",
			"sys": {"country": "IN"},
			"main": {"temp": 31.4, "humidity": 62},
			"wind": {"speed": 4.2},
			"weather": [{"description": "scattered clouds", "icon": "03d"}],
			"rain": {"1h": 1.2}
		}`))
	}))
	defer srv.Close()

	svc := &WeatherService{
		OpenWeatherURL: srv.URL,
		APIKey:         "test-key",
		HTTP:           srv.Client(),
	}

	report, err := svc.Current(1, WeatherQuery{Location: "Pune"})
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if report.Location != "Pune, IN" {
		t.Errorf("location = %q", report.Location)
	}
	if report.Temperature != 31 {
		t.Errorf("temperature = %d, want 31", report.Temperature)
	}
	if report.WindSpeed != 15 { // 4.2 m/s -> 15.12 km/h, rounded
		t.Errorf("wind = %d, want 15", report.WindSpeed)
	}
	if report.Description != "scattered clouds" || report.Icon != "03d" {
		t.Errorf("description/icon = %q/%q", report.Description, report.Icon)
	}
}

func TestCurrentFallsBackToOpenMeteo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "Nashik" {
			t.Errorf("geocode name = %q", r.URL.Query().Get("name"))
		}
		w.Write([]byte(`{"results": [{"name": "Nashik", "country": "India", "latitude": 19.99, "longitude": 73.78}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": {"temperature_2m": 28.6, "relative_humidity_2m": 70, "precipitation": 0, "wind_speed_10m": 12.3}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// No OpenWeather key configured, so the primary lookup fails and the
	// keyless provider takes over.
	svc := &WeatherService{
		OpenMeteoURL: srv.URL,
		GeocodeURL:   srv.URL,
		HTTP:         srv.Client(),
	}

	report, err := svc.Current(1, WeatherQuery{Location: "Nashik"})
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if report.Location != "Nashik, India" {
		t.Errorf("location = %q", report.Location)
	}
	if report.Temperature != 29 {
		t.Errorf("temperature = %d, want 29", report.Temperature)
	}
	if report.Humidity != 70 {
		t.Errorf("humidity = %d, want 70", report.Humidity)
	}
}

func TestCurrentRequiresLocationOrCoordinates(t *testing.T) {
	svc := &WeatherService{}
	if _, err := svc.Current(1, WeatherQuery{}); err == nil {
		t.Fatal("expected validation error for empty query")
	}
}

func TestEvaluateAlerts(t *testing.T) {
	calm := WeatherReport{Location: "Pune", Temperature: 30, WindSpeed: 10, Rainfall: 2}
	if alerts := EvaluateAlerts(calm); len(alerts) != 0 {
		t.Fatalf("calm weather produced %d alerts", len(alerts))
	}

	severe := WeatherReport{Location: "Pune", Temperature: 46, WindSpeed: 55, Rainfall: 35}
	alerts := EvaluateAlerts(severe)
	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, want 3", len(alerts))
	}

	bySeverity := map[string]string{}
	for _, a := range alerts {
		bySeverity[a.AlertType] = a.Severity
	}
	if bySeverity["heavy_rain"] != "high" {
		t.Errorf("heavy_rain severity = %q, want high", bySeverity["heavy_rain"])
	}
	if bySeverity["heat_wave"] != "high" {
		t.Errorf("heat_wave severity = %q, want high", bySeverity["heat_wave"])
	}
	if bySeverity["high_wind"] != "high" {
		t.Errorf("high_wind severity = %q, want high", bySeverity["high_wind"])
	}

	moderate := WeatherReport{Location: "Pune", Temperature: 41, WindSpeed: 20, Rainfall: 12}
	for _, a := range EvaluateAlerts(moderate) {
		if a.Severity != "medium" {
			t.Errorf("%s severity = %q, want medium", a.AlertType, a.Severity)
		}
	}
}
