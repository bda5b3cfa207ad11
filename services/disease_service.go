package services

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"krishimitra-backend/models"
	"krishimitra-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const diseaseSystemPrompt = "You are an expert agricultural AI assistant specializing in crop disease detection for Indian farmers. Analyze crop images and provide: 1. Disease name (if any) 2. Confidence level (0-100) 3. Practical remedies using locally available materials 4. Preventive measures. Keep responses concise and actionable. Focus on safe, organic solutions first."

const diseaseUserPrompt = "Analyze this crop image and identify any diseases or issues. Provide the disease name, confidence level, and 3-5 practical remedies suitable for Indian farmers."

// Fallback remedies when the model's answer yields none.
var defaultRemedies = []string{
	"Apply neem oil spray (20ml per liter of water)",
	"Remove affected leaves immediately",
	"Ensure proper drainage in the field",
	"Consult your local Krishi Vigyan Kendra",
}

var (
	diseaseNameRe = regexp.MustCompile(`(?i)disease[:\s]+([^\n.]+)`)
	confidenceRe  = regexp.MustCompile(`(?i)confidence[:\s]+(\d+)`)
	bulletLineRe  = regexp.MustCompile(`^[\d\-•*]`)
	bulletTrimRe  = regexp.MustCompile(`^[\d\-•*.\s]+`)
)

type DiseaseService struct {
	DB        *gorm.DB
	AI        *AIClient
	UploadDir string
}

func NewDiseaseService(db *gorm.DB, ai *AIClient) *DiseaseService {
	return &DiseaseService{DB: db, AI: ai, UploadDir: utils.EnvOrDefault("UPLOAD_DIR", "./uploads")}
}

// DetectionResult is the parsed outcome of one analysis.
type DetectionResult struct {
	Disease    string   `json:"disease"`
	Confidence int      `json:"confidence"`
	Remedies   []string `json:"remedies"`
	RawAnswer  string   `json:"raw_answer,omitempty"`
}

// asDataURI wraps a raw base64 payload so vision-capable gateways can read
// the image inline; data URIs pass through untouched.
func asDataURI(imageBase64 string) string {
	imageBase64 = strings.TrimSpace(imageBase64)
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	return "data:image/jpeg;base64," + imageBase64
}

// runDetection resolves the two image URLs (what the gateway sees, what
// history stores), runs the vision call and parses the answer. Base64
// uploads are saved locally for the history record, but the gateway gets
// the image inline as a data URI: it cannot fetch paths under /uploads.
func (s *DiseaseService) runDetection(imageURL, imageBase64 string) (string, *DetectionResult, error) {
	if imageURL == "" && imageBase64 == "" {
		return "", nil, fmt.Errorf("%w: image_url or image_base64 is required", ErrValidation)
	}

	visionURL := imageURL
	storedURL := imageURL
	if imageURL == "" {
		saved, err := utils.SaveBase64Image(imageBase64, s.UploadDir)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		storedURL = "/uploads/" + filepath.Base(saved)
		visionURL = asDataURI(imageBase64)
	}

	answer, err := s.AI.Complete([]AIMessage{
		{Role: "system", Content: diseaseSystemPrompt},
		{Role: "user", Content: []AIContentPart{
			{Type: "text", Text: diseaseUserPrompt},
			{Type: "image_url", ImageURL: &AIImageURL{URL: visionURL}},
		}},
	}, 0.3)
	if err != nil {
		return "", nil, err
	}
	return storedURL, parseDetection(answer), nil
}

// Detect analyzes a crop photo (URL or base64 payload) and records the
// result for the farmer.
func (s *DiseaseService) Detect(farmerID uint, imageURL, imageBase64, cropType string) (*models.DiseaseDetection, *DetectionResult, error) {
	storedURL, result, err := s.runDetection(imageURL, imageBase64)
	if err != nil {
		return nil, nil, err
	}

	remediesJSON, _ := json.Marshal(result.Remedies)
	record := models.DiseaseDetection{
		FarmerID:    farmerID,
		CropType:    cropType,
		ImageURL:    storedURL,
		DiseaseName: result.Disease,
		Confidence:  result.Confidence,
		Remedies:    datatypes.JSON(remediesJSON),
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to store detection: %w", err)
	}
	return &record, result, nil
}

// parseDetection extracts the disease name, confidence and remedy bullet
// lines from the model's free-text answer, with the same heuristics and
// defaults the mobile app relies on.
func parseDetection(answer string) *DetectionResult {
	result := &DetectionResult{
		Disease:    "No disease detected",
		Confidence: 85,
		RawAnswer:  answer,
	}

	if m := diseaseNameRe.FindStringSubmatch(answer); m != nil {
		result.Disease = strings.TrimSpace(m[1])
	}
	if m := confidenceRe.FindStringSubmatch(answer); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			result.Confidence = v
		}
	}

	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if !bulletLineRe.MatchString(line) {
			continue
		}
		remedy := strings.TrimSpace(bulletTrimRe.ReplaceAllString(line, ""))
		if len(remedy) > 10 {
			result.Remedies = append(result.Remedies, remedy)
		}
	}
	if len(result.Remedies) == 0 {
		result.Remedies = defaultRemedies
	}
	return result
}

// History lists the farmer's past detections, newest first.
func (s *DiseaseService) History(farmerID uint) ([]models.DiseaseDetection, error) {
	var list []models.DiseaseDetection
	err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load detections: %w", err)
	}
	return list, nil
}
