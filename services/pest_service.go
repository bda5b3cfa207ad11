package services

import (
	"errors"
	"fmt"
	"strings"

	"krishimitra-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAlreadyConfirmed = errors.New("already_confirmed")

type PestService struct {
	DB *gorm.DB
}

func NewPestService(db *gorm.DB) *PestService {
	return &PestService{DB: db}
}

type PestAlertInput struct {
	PestName     string `json:"pest_name"`
	Description  string `json:"description"`
	Severity     string `json:"severity"`
	Location     string `json:"location"`
	State        string `json:"state"`
	District     string `json:"district"`
	CropAffected string `json:"crop_affected"`
	ImageURL     string `json:"image_url"`
}

func (s *PestService) Create(farmerID uint, in PestAlertInput) (*models.PestAlert, error) {
	if strings.TrimSpace(in.PestName) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, fmt.Errorf("%w: pest_name and location are required", ErrValidation)
	}
	severity := strings.ToLower(strings.TrimSpace(in.Severity))
	switch severity {
	case "low", "medium", "high":
	case "":
		severity = "medium"
	default:
		return nil, fmt.Errorf("%w: severity must be low, medium or high", ErrValidation)
	}

	alert := models.PestAlert{
		FarmerID:     farmerID,
		PestName:     strings.TrimSpace(in.PestName),
		Description:  in.Description,
		Severity:     severity,
		Location:     strings.TrimSpace(in.Location),
		State:        strings.TrimSpace(in.State),
		District:     strings.TrimSpace(in.District),
		CropAffected: strings.TrimSpace(in.CropAffected),
		ImageURL:     strings.TrimSpace(in.ImageURL),
	}
	if err := s.DB.Create(&alert).Error; err != nil {
		return nil, fmt.Errorf("failed to create pest alert: %w", err)
	}
	return &alert, nil
}

func (s *PestService) List(state, district string) ([]models.PestAlert, error) {
	q := s.DB.Model(&models.PestAlert{})
	if state != "" {
		q = q.Where("state = ?", state)
	}
	if district != "" {
		q = q.Where("district = ?", district)
	}

	var list []models.PestAlert
	if err := q.Order("created_at DESC").Limit(200).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list pest alerts: %w", err)
	}
	return list, nil
}

// Confirm records that a farmer has also seen the pest. Each farmer counts
// once per alert; the unique (alert_id, farmer_id) index backs this up and
// the count update rides in the same transaction.
func (s *PestService) Confirm(alertID, farmerID uint) (*models.PestAlert, error) {
	var alert models.PestAlert

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&alert, alertID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("db error loading pest alert %d: %w", alertID, err)
		}

		var existing int64
		if err := tx.Model(&models.PestAlertConfirmation{}).
			Where("alert_id = ? AND farmer_id = ?", alertID, farmerID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("db error checking confirmation: %w", err)
		}
		if existing > 0 {
			return ErrAlreadyConfirmed
		}

		if err := tx.Create(&models.PestAlertConfirmation{AlertID: alertID, FarmerID: farmerID}).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrAlreadyConfirmed
			}
			return fmt.Errorf("failed to create confirmation: %w", err)
		}
		if err := tx.Model(&alert).
			Update("confirmed_count", gorm.Expr("confirmed_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to bump confirmed count: %w", err)
		}
		alert.ConfirmedCount++
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &alert, nil
}
