package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"krishimitra-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type YieldService struct {
	DB *gorm.DB
	AI *AIClient
}

func NewYieldService(db *gorm.DB, ai *AIClient) *YieldService {
	return &YieldService{DB: db, AI: ai}
}

type YieldRecordInput struct {
	CropName      string  `json:"crop_name"`
	FieldLocation string  `json:"field_location"`
	HarvestDate   string  `json:"harvest_date"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	Revenue       float64 `json:"revenue"`
}

func (s *YieldService) CreateRecord(farmerID uint, in YieldRecordInput) (*models.YieldRecord, error) {
	if strings.TrimSpace(in.CropName) == "" {
		return nil, fmt.Errorf("%w: crop_name is required", ErrValidation)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	date, err := ParseDate(in.HarvestDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid harvest_date", ErrValidation)
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "quintal"
	}
	record := models.YieldRecord{
		FarmerID:      farmerID,
		CropName:      strings.TrimSpace(in.CropName),
		FieldLocation: strings.TrimSpace(in.FieldLocation),
		HarvestDate:   date,
		Quantity:      in.Quantity,
		Unit:          unit,
		Revenue:       in.Revenue,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create yield record: %w", err)
	}
	return &record, nil
}

func (s *YieldService) ListRecords(farmerID uint) ([]models.YieldRecord, error) {
	var list []models.YieldRecord
	err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("harvest_date DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list yield records: %w", err)
	}
	return list, nil
}

func (s *YieldService) DeleteRecord(recordID, farmerID uint) error {
	var record models.YieldRecord
	if err := s.DB.First(&record, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("db error loading yield record %d: %w", recordID, err)
	}
	if record.FarmerID != farmerID {
		return ErrForbidden
	}
	if err := s.DB.Delete(&record).Error; err != nil {
		return fmt.Errorf("failed to delete yield record: %w", err)
	}
	return nil
}

// PredictionInput describes the field the farmer wants a forecast for.
type PredictionInput struct {
	CropName     string  `json:"crop_name"`
	FieldSize    float64 `json:"field_size"` // acres
	SoilType     string  `json:"soil_type"`
	LastYield    float64 `json:"last_yield"` // quintals
	PlantingDate string  `json:"planting_date"`
	Location     string  `json:"location"`
}

// predictionArgs is the structured output forced out of the model.
type predictionArgs struct {
	PredictedYield  float64  `json:"predicted_yield"`
	ConfidenceLevel float64  `json:"confidence_level"`
	Factors         []string `json:"factors"`
}

const yieldSystemPrompt = "You are an agricultural AI specialist helping Indian farmers predict crop yields. Analyze the provided data and provide a realistic yield prediction with confidence level and key factors. Consider: soil conditions, historical yields, planting timing, field size, and regional climate patterns."

// Predict asks the model for a structured yield forecast and stores it.
func (s *YieldService) Predict(farmerID uint, in PredictionInput) (*models.YieldPrediction, error) {
	if strings.TrimSpace(in.CropName) == "" {
		return nil, fmt.Errorf("%w: crop_name is required", ErrValidation)
	}

	userPrompt := fmt.Sprintf(
		"Predict the yield for:\n- Crop: %s\n- Field Size: %g acres\n- Soil Type: %s\n- Last Yield: %g quintals\n- Planting Date: %s\n- Location: %s\n\nProvide a detailed prediction with factors affecting the yield.",
		in.CropName, in.FieldSize, in.SoilType, in.LastYield, in.PlantingDate, in.Location,
	)

	args, err := s.AI.CompleteWithTool(
		[]AIMessage{
			{Role: "system", Content: yieldSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		AIToolSpec{
			Name:        "predict_yield",
			Description: "Generate yield prediction with confidence and factors",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"predicted_yield":  map[string]interface{}{"type": "number"},
					"confidence_level": map[string]interface{}{"type": "number"},
					"factors": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "string"},
					},
				},
				"required":             []string{"predicted_yield", "confidence_level", "factors"},
				"additionalProperties": false,
			},
		},
	)
	if err != nil {
		return nil, err
	}

	var parsed predictionArgs
	if err := json.Unmarshal(args, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prediction arguments: %w", err)
	}

	factorsJSON, _ := json.Marshal(parsed.Factors)
	prediction := models.YieldPrediction{
		FarmerID:        farmerID,
		CropName:        strings.TrimSpace(in.CropName),
		PredictedYield:  parsed.PredictedYield,
		ConfidenceLevel: int(parsed.ConfidenceLevel),
		PredictionDate:  time.Now(),
		Factors:         datatypes.JSON(factorsJSON),
	}
	if in.PlantingDate != "" {
		if planting, err := ParseDate(in.PlantingDate); err == nil {
			// rough harvest estimate four months out; the model's text is
			// advisory only
			harvest := planting.AddDate(0, 4, 0)
			prediction.ExpectedHarvestDate = &harvest
		}
	}

	if err := s.DB.Create(&prediction).Error; err != nil {
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}
	return &prediction, nil
}

func (s *YieldService) ListPredictions(farmerID uint) ([]models.YieldPrediction, error) {
	var list []models.YieldPrediction
	err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return list, nil
}
