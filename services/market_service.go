package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"krishimitra-backend/models"
	"krishimitra-backend/utils"

	"gorm.io/gorm"
)

// Agmarknet mandi-price resource on data.gov.in.
const agmarknetResource = "/resource/9ef84268-d588-465a-a308-a864a43d0070"

type MarketService struct {
	DB *gorm.DB

	AgmarknetURL string
	APIKey       string
	HTTP         *http.Client
}

func NewMarketService(db *gorm.DB) *MarketService {
	return &MarketService{
		DB:           db,
		AgmarknetURL: utils.EnvOrDefault("AGMARKNET_URL", "https://api.data.gov.in"),
		APIKey:       utils.EnvOrDefault("AGMARKNET_API_KEY", ""),
		HTTP:         &http.Client{Timeout: 30 * time.Second},
	}
}

type agmarknetRecord struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	ArrivalDate string `json:"arrival_date"` // dd/mm/yyyy
	ModalPrice  string `json:"modal_price"`  // number in a string
}

type agmarknetResponse struct {
	Records []agmarknetRecord `json:"records"`
}

// normalizeRecord converts one Agmarknet row into a MarketPrice. Rows with
// an unparseable price are dropped (returns false); a bad arrival date
// falls back to today, matching the upstream feed's quirks.
func normalizeRecord(r agmarknetRecord, now time.Time) (models.MarketPrice, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(r.ModalPrice), 64)
	if err != nil || price <= 0 {
		return models.MarketPrice{}, false
	}

	date := now
	if t, err := time.Parse("02/01/2006", strings.TrimSpace(r.ArrivalDate)); err == nil {
		date = t
	}

	return models.MarketPrice{
		CropName:        strings.TrimSpace(r.Commodity),
		Variety:         strings.TrimSpace(r.Variety),
		State:           strings.TrimSpace(r.State),
		District:        strings.TrimSpace(r.District),
		MarketName:      strings.TrimSpace(r.Market),
		PricePerQuintal: price,
		Currency:        "INR",
		Date:            date,
	}, true
}

// Refresh pulls current mandi prices from Agmarknet and stores them.
// Returns how many rows were ingested.
func (s *MarketService) Refresh(crop, state string, limit int) (int, error) {
	if s.APIKey == "" {
		return 0, fmt.Errorf("AGMARKNET_API_KEY not configured")
	}
	if limit <= 0 || limit > 1000 {
		limit = 500
	}

	params := url.Values{}
	params.Set("api-key", s.APIKey)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	if crop != "" {
		params.Set("filters[commodity]", crop)
	}
	if state != "" {
		params.Set("filters[state]", state)
	}

	resp, err := s.HTTP.Get(s.AgmarknetURL + agmarknetResource + "?" + params.Encode())
	if err != nil {
		return 0, fmt.Errorf("agmarknet request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("agmarknet error: status %d", resp.StatusCode)
	}

	var payload agmarknetResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode agmarknet response: %w", err)
	}

	now := time.Now()
	ingested := 0
	for _, r := range payload.Records {
		row, ok := normalizeRecord(r, now)
		if !ok {
			continue
		}
		// Same market+crop+date replaces the older row.
		var existing models.MarketPrice
		lookup := s.DB.
			Where("crop_name = ? AND market_name = ? AND date = ?", row.CropName, row.MarketName, row.Date).
			First(&existing)
		if lookup.Error == nil {
			row.ID = existing.ID
			row.CreatedAt = existing.CreatedAt
			if err := s.DB.Save(&row).Error; err != nil {
				return ingested, fmt.Errorf("failed to update market price: %w", err)
			}
		} else if err := s.DB.Create(&row).Error; err != nil {
			return ingested, fmt.Errorf("failed to store market price: %w", err)
		}
		ingested++
	}
	return ingested, nil
}

// List returns stored prices, optionally filtered by crop/state, newest
// first.
func (s *MarketService) List(crop, state string, limit int) ([]models.MarketPrice, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	q := s.DB.Model(&models.MarketPrice{})
	if crop != "" {
		q = q.Where("LOWER(crop_name) = ?", strings.ToLower(strings.TrimSpace(crop)))
	}
	if state != "" {
		q = q.Where("state = ?", state)
	}

	var list []models.MarketPrice
	if err := q.Order("date DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list market prices: %w", err)
	}
	return list, nil
}

// LatestByState returns, for one crop, the most recent price row per state.
func (s *MarketService) LatestByState(crop string) ([]models.MarketPrice, error) {
	if strings.TrimSpace(crop) == "" {
		return nil, fmt.Errorf("%w: crop is required", ErrValidation)
	}
	rows, err := s.List(crop, "", 1000)
	if err != nil {
		return nil, err
	}
	return latestPerState(rows), nil
}

// latestPerState keeps the newest row for each state, sorted by state name.
func latestPerState(rows []models.MarketPrice) []models.MarketPrice {
	byState := make(map[string]models.MarketPrice)
	for _, row := range rows {
		key := strings.TrimSpace(row.State)
		existing, ok := byState[key]
		if !ok || row.Date.After(existing.Date) {
			byState[key] = row
		}
	}

	out := make([]models.MarketPrice, 0, len(byState))
	for _, row := range byState {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out
}

// Crops returns the distinct crop names present in the stored prices,
// case-insensitively deduplicated and sorted.
func (s *MarketService) Crops() ([]string, error) {
	var names []string
	if err := s.DB.Model(&models.MarketPrice{}).
		Distinct("crop_name").
		Pluck("crop_name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}
	return distinctCrops(names), nil
}

func distinctCrops(names []string) []string {
	seen := make(map[string]string)
	for _, raw := range names {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		key := strings.ToLower(raw)
		if _, ok := seen[key]; !ok {
			seen[key] = raw
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
