package services

import (
	"errors"
	"fmt"
	"strings"

	"krishimitra-backend/models"

	"gorm.io/gorm"
)

type ToolService struct {
	DB *gorm.DB
}

func NewToolService(db *gorm.DB) *ToolService {
	return &ToolService{DB: db}
}

// ToolFilters narrows the public listing. Nil fields are ignored.
type ToolFilters struct {
	Available *bool
	Category  string
	Location  string
}

// ToolUpdate carries the owner's partial update; nil fields are untouched.
type ToolUpdate struct {
	Name        *string
	Category    *string
	Description *string
	ImageURL    *string
	DailyRate   *float64
	Available   *bool
	Location    *string
}

func (s *ToolService) List(f ToolFilters) ([]models.Tool, error) {
	q := s.DB.Model(&models.Tool{})
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}

	var tools []models.Tool
	if err := q.Order("created_at DESC").Find(&tools).Error; err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, nil
}

func (s *ToolService) GetByID(id uint) (*models.Tool, error) {
	var tool models.Tool
	if err := s.DB.First(&tool, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, fmt.Errorf("db error loading tool %d: %w", id, err)
	}
	return &tool, nil
}

func (s *ToolService) Create(ownerID uint, tool models.Tool) (*models.Tool, error) {
	if strings.TrimSpace(tool.Name) == "" || strings.TrimSpace(tool.Category) == "" {
		return nil, fmt.Errorf("%w: name and category are required", ErrValidation)
	}
	if tool.DailyRate < 0 {
		return nil, fmt.Errorf("%w: daily_rate must not be negative", ErrValidation)
	}

	tool.OwnerID = ownerID
	if err := s.DB.Create(&tool).Error; err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}
	return &tool, nil
}

// Update applies a partial update; only the owner may change a tool.
func (s *ToolService) Update(toolID, actorID uint, upd ToolUpdate) (*models.Tool, error) {
	tool, err := s.GetByID(toolID)
	if err != nil {
		return nil, err
	}
	if tool.OwnerID != actorID {
		return nil, ErrForbidden
	}

	changes := map[string]interface{}{}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Category != nil {
		changes["category"] = *upd.Category
	}
	if upd.Description != nil {
		changes["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		changes["image_url"] = *upd.ImageURL
	}
	if upd.DailyRate != nil {
		if *upd.DailyRate < 0 {
			return nil, fmt.Errorf("%w: daily_rate must not be negative", ErrValidation)
		}
		changes["daily_rate"] = *upd.DailyRate
	}
	if upd.Available != nil {
		changes["available"] = *upd.Available
	}
	if upd.Location != nil {
		changes["location"] = *upd.Location
	}
	if len(changes) == 0 {
		return tool, nil
	}

	if err := s.DB.Model(tool).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("failed to update tool %d: %w", toolID, err)
	}
	return tool, nil
}
