package services

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAsDataURI(t *testing.T) {
	if got := asDataURI("aGVsbG8="); got != "data:image/jpeg;base64,aGVsbG8=" {
		t.Errorf("raw payload = %q", got)
	}
	uri := "data:image/png;base64,aGVsbG8="
	if got := asDataURI(uri); got != uri {
		t.Errorf("data URI must pass through, got %q", got)
	}
}

func TestRunDetectionSendsInlineImageForBase64(t *testing.T) {
	var captured struct {
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices": [{"message": {"content": "Disease: Rust\nConfidence: 70"}}]}`))
	}))
	defer srv.Close()

	svc := &DiseaseService{
		AI:        &AIClient{BaseURL: srv.URL, APIKey: "k", Model: "m", HTTP: srv.Client()},
		UploadDir: t.TempDir(),
	}

	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
	storedURL, result, err := svc.runDetection("", payload)
	if err != nil {
		t.Fatalf("runDetection: %v", err)
	}
	if result.Disease != "Rust" {
		t.Errorf("disease = %q, want Rust", result.Disease)
	}
	if !strings.HasPrefix(storedURL, "/uploads/") {
		t.Errorf("stored url = %q, want an /uploads/ path for history", storedURL)
	}

	if len(captured.Messages) != 2 {
		t.Fatalf("gateway saw %d messages, want 2", len(captured.Messages))
	}
	var parts []AIContentPart
	if err := json.Unmarshal(captured.Messages[1].Content, &parts); err != nil {
		t.Fatalf("decode content parts: %v", err)
	}
	var imageURL string
	for _, p := range parts {
		if p.Type == "image_url" && p.ImageURL != nil {
			imageURL = p.ImageURL.URL
		}
	}
	// The gateway cannot fetch server-relative paths; base64 uploads must
	// arrive inline.
	if !strings.HasPrefix(imageURL, "data:image/") {
		t.Errorf("gateway received %q, want an inline data URI", imageURL)
	}
}

func TestRunDetectionForwardsPublicURL(t *testing.T) {
	var captured struct {
		Messages []struct {
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"choices": [{"message": {"content": "healthy"}}]}`))
	}))
	defer srv.Close()

	svc := &DiseaseService{
		AI: &AIClient{BaseURL: srv.URL, APIKey: "k", Model: "m", HTTP: srv.Client()},
	}

	storedURL, _, err := svc.runDetection("https://cdn.example.com/leaf.jpg", "")
	if err != nil {
		t.Fatalf("runDetection: %v", err)
	}
	if storedURL != "https://cdn.example.com/leaf.jpg" {
		t.Errorf("stored url = %q", storedURL)
	}

	var parts []AIContentPart
	if err := json.Unmarshal(captured.Messages[1].Content, &parts); err != nil {
		t.Fatalf("decode content parts: %v", err)
	}
	found := false
	for _, p := range parts {
		if p.Type == "image_url" && p.ImageURL != nil && p.ImageURL.URL == "https://cdn.example.com/leaf.jpg" {
			found = true
		}
	}
	if !found {
		t.Error("gateway did not receive the public image URL unchanged")
	}
}

func TestParseDetection(t *testing.T) {
	answer := `Disease: Leaf Blight
Confidence: 92

Remedies:
1. Apply copper-based fungicide every 7 days
2. Remove and burn infected leaves away from the field
- Improve spacing between plants for airflow`

	result := parseDetection(answer)
	if result.Disease != "Leaf Blight" {
		t.Errorf("disease = %q, want Leaf Blight", result.Disease)
	}
	if result.Confidence != 92 {
		t.Errorf("confidence = %d, want 92", result.Confidence)
	}
	if len(result.Remedies) != 3 {
		t.Fatalf("got %d remedies, want 3: %v", len(result.Remedies), result.Remedies)
	}
	if result.Remedies[0] != "Apply copper-based fungicide every 7 days" {
		t.Errorf("first remedy = %q", result.Remedies[0])
	}
}

func TestParseDetectionDefaults(t *testing.T) {
	result := parseDetection("The leaves look healthy overall.")
	if result.Disease != "No disease detected" {
		t.Errorf("disease = %q, want default", result.Disease)
	}
	if result.Confidence != 85 {
		t.Errorf("confidence = %d, want default 85", result.Confidence)
	}
	if len(result.Remedies) != len(defaultRemedies) {
		t.Errorf("got %d remedies, want the %d defaults", len(result.Remedies), len(defaultRemedies))
	}
}

func TestParseDetectionSkipsShortBullets(t *testing.T) {
	result := parseDetection("Disease: Rust\n- ok\n- Spray sulfur dust early in the morning")
	if len(result.Remedies) != 1 {
		t.Fatalf("got %d remedies, want 1: %v", len(result.Remedies), result.Remedies)
	}
	if result.Remedies[0] != "Spray sulfur dust early in the morning" {
		t.Errorf("remedy = %q", result.Remedies[0])
	}
}
