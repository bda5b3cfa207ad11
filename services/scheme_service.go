package services

import (
	"errors"
	"fmt"

	"krishimitra-backend/models"

	"gorm.io/gorm"
)

type SchemeService struct {
	DB *gorm.DB
}

func NewSchemeService(db *gorm.DB) *SchemeService {
	return &SchemeService{DB: db}
}

// List returns active schemes. A state filter also includes nationwide
// schemes (empty state).
func (s *SchemeService) List(schemeType, state string) ([]models.GovernmentScheme, error) {
	q := s.DB.Model(&models.GovernmentScheme{}).Where("is_active = ?", true)
	if schemeType != "" {
		q = q.Where("scheme_type = ?", schemeType)
	}
	if state != "" {
		q = q.Where("state = ? OR state = ''", state)
	}

	var list []models.GovernmentScheme
	if err := q.Order("scheme_name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}
	return list, nil
}

func (s *SchemeService) GetByID(id uint) (*models.GovernmentScheme, error) {
	var scheme models.GovernmentScheme
	if err := s.DB.First(&scheme, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error loading scheme %d: %w", id, err)
	}
	return &scheme, nil
}
