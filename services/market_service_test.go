package services

import (
	"testing"
	"time"

	"krishimitra-backend/models"
)

func TestNormalizeRecord(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	row, ok := normalizeRecord(agmarknetRecord{
		State:       "Maharashtra",
		District:    "Pune",
		Market:      "Pune Market",
		Commodity:   "Onion",
		Variety:     "Red",
		ArrivalDate: "12/06/2025",
		ModalPrice:  "1450",
	}, now)
	if !ok {
		t.Fatal("valid record dropped")
	}
	if row.CropName != "Onion" || row.State != "Maharashtra" || row.PricePerQuintal != 1450 {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.Currency != "INR" {
		t.Errorf("currency = %q, want INR", row.Currency)
	}
	want := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	if !row.Date.Equal(want) {
		t.Errorf("date = %v, want %v", row.Date, want)
	}
}

func TestNormalizeRecordDropsBadPrices(t *testing.T) {
	now := time.Now()
	for _, price := range []string{"", "NR", "N/A", "-100", "0"} {
		if _, ok := normalizeRecord(agmarknetRecord{Commodity: "Wheat", ModalPrice: price}, now); ok {
			t.Errorf("record with modal_price %q should be dropped", price)
		}
	}
}

func TestNormalizeRecordBadDateFallsBack(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	row, ok := normalizeRecord(agmarknetRecord{Commodity: "Wheat", ModalPrice: "2100", ArrivalDate: "yesterday"}, now)
	if !ok {
		t.Fatal("record dropped")
	}
	if !row.Date.Equal(now) {
		t.Errorf("date = %v, want fallback %v", row.Date, now)
	}
}

func TestLatestPerState(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	rows := []models.MarketPrice{
		{State: "Punjab", PricePerQuintal: 2000, Date: day(10)},
		{State: "Punjab", PricePerQuintal: 2100, Date: day(14)},
		{State: "Haryana", PricePerQuintal: 1900, Date: day(12)},
		{State: "Haryana", PricePerQuintal: 1800, Date: day(11)},
	}

	got := latestPerState(rows)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	// Sorted by state name.
	if got[0].State != "Haryana" || got[1].State != "Punjab" {
		t.Errorf("order = %s, %s; want Haryana, Punjab", got[0].State, got[1].State)
	}
	if got[0].PricePerQuintal != 1900 {
		t.Errorf("Haryana price = %v, want newest row 1900", got[0].PricePerQuintal)
	}
	if got[1].PricePerQuintal != 2100 {
		t.Errorf("Punjab price = %v, want newest row 2100", got[1].PricePerQuintal)
	}
}

func TestDistinctCrops(t *testing.T) {
	got := distinctCrops([]string{"Wheat", "wheat", " Onion ", "", "Rice", "WHEAT"})
	want := []string{"Onion", "Rice", "Wheat"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("crops[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
