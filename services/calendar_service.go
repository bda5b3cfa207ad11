package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"krishimitra-backend/models"

	"gorm.io/gorm"
)

type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

// CalendarEntryInput is the create/update payload for a calendar entry.
type CalendarEntryInput struct {
	CropName            string  `json:"crop_name"`
	Variety             string  `json:"variety"`
	PlantingDate        string  `json:"planting_date"`
	ExpectedHarvestDate string  `json:"expected_harvest_date"`
	FieldSize           float64 `json:"field_size"`
	FieldLocation       string  `json:"field_location"`
	Notes               string  `json:"notes"`
}

func (s *CalendarService) CreateEntry(farmerID uint, in CalendarEntryInput) (*models.CropCalendarEntry, error) {
	if strings.TrimSpace(in.CropName) == "" {
		return nil, fmt.Errorf("%w: crop_name is required", ErrValidation)
	}
	planting, err := ParseDate(in.PlantingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid planting_date", ErrValidation)
	}

	entry := models.CropCalendarEntry{
		FarmerID:      farmerID,
		CropName:      strings.TrimSpace(in.CropName),
		Variety:       strings.TrimSpace(in.Variety),
		PlantingDate:  planting,
		FieldSize:     in.FieldSize,
		FieldLocation: strings.TrimSpace(in.FieldLocation),
		Notes:         in.Notes,
	}
	if in.ExpectedHarvestDate != "" {
		harvest, err := ParseDate(in.ExpectedHarvestDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expected_harvest_date", ErrValidation)
		}
		entry.ExpectedHarvestDate = &harvest
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create calendar entry: %w", err)
	}
	return &entry, nil
}

func (s *CalendarService) ListEntries(farmerID uint) ([]models.CropCalendarEntry, error) {
	var list []models.CropCalendarEntry
	err := s.DB.
		Where("farmer_id = ?", farmerID).
		Preload("Reminders").
		Order("planting_date DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar entries: %w", err)
	}
	return list, nil
}

func (s *CalendarService) getOwnedEntry(entryID, farmerID uint) (*models.CropCalendarEntry, error) {
	var entry models.CropCalendarEntry
	if err := s.DB.First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error loading calendar entry %d: %w", entryID, err)
	}
	if entry.FarmerID != farmerID {
		return nil, ErrForbidden
	}
	return &entry, nil
}

// CalendarEntryUpdate is a partial edit; nil fields are untouched.
type CalendarEntryUpdate struct {
	CropName            *string
	Variety             *string
	PlantingDate        *string
	ExpectedHarvestDate *string
	FieldSize           *float64
	FieldLocation       *string
	Notes               *string
}

func (s *CalendarService) UpdateEntry(entryID, farmerID uint, upd CalendarEntryUpdate) (*models.CropCalendarEntry, error) {
	entry, err := s.getOwnedEntry(entryID, farmerID)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if upd.CropName != nil && strings.TrimSpace(*upd.CropName) != "" {
		changes["crop_name"] = strings.TrimSpace(*upd.CropName)
	}
	if upd.Variety != nil {
		changes["variety"] = strings.TrimSpace(*upd.Variety)
	}
	if upd.PlantingDate != nil {
		planting, err := ParseDate(*upd.PlantingDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid planting_date", ErrValidation)
		}
		changes["planting_date"] = planting
	}
	if upd.ExpectedHarvestDate != nil {
		if *upd.ExpectedHarvestDate == "" {
			changes["expected_harvest_date"] = nil
		} else {
			harvest, err := ParseDate(*upd.ExpectedHarvestDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid expected_harvest_date", ErrValidation)
			}
			changes["expected_harvest_date"] = harvest
		}
	}
	if upd.FieldSize != nil {
		changes["field_size"] = *upd.FieldSize
	}
	if upd.FieldLocation != nil {
		changes["field_location"] = strings.TrimSpace(*upd.FieldLocation)
	}
	if upd.Notes != nil {
		changes["notes"] = *upd.Notes
	}
	if len(changes) == 0 {
		return entry, nil
	}

	if err := s.DB.Model(entry).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("failed to update calendar entry %d: %w", entryID, err)
	}
	return entry, nil
}

func (s *CalendarService) DeleteEntry(entryID, farmerID uint) error {
	entry, err := s.getOwnedEntry(entryID, farmerID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(entry).Error; err != nil {
		return fmt.Errorf("failed to delete calendar entry: %w", err)
	}
	return nil
}

// ReminderInput creates a reminder attached to one of the farmer's
// calendar entries.
type ReminderInput struct {
	CalendarEntryID uint   `json:"calendar_entry_id"`
	ReminderType    string `json:"reminder_type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ReminderDate    string `json:"reminder_date"`
}

func (s *CalendarService) CreateReminder(farmerID uint, in ReminderInput) (*models.CropReminder, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ReminderType) == "" {
		return nil, fmt.Errorf("%w: title and reminder_type are required", ErrValidation)
	}
	date, err := ParseDate(in.ReminderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reminder_date", ErrValidation)
	}
	if _, err := s.getOwnedEntry(in.CalendarEntryID, farmerID); err != nil {
		return nil, err
	}

	reminder := models.CropReminder{
		FarmerID:        farmerID,
		CalendarEntryID: in.CalendarEntryID,
		ReminderType:    strings.TrimSpace(in.ReminderType),
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		ReminderDate:    date,
	}
	if err := s.DB.Create(&reminder).Error; err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return &reminder, nil
}

// CompleteReminder marks a reminder done (or not done again).
func (s *CalendarService) CompleteReminder(reminderID, farmerID uint, done bool) (*models.CropReminder, error) {
	var reminder models.CropReminder
	if err := s.DB.First(&reminder, reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error loading reminder %d: %w", reminderID, err)
	}
	if reminder.FarmerID != farmerID {
		return nil, ErrForbidden
	}

	if err := s.DB.Model(&reminder).Update("is_completed", done).Error; err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	reminder.IsCompleted = done
	return &reminder, nil
}

// UpcomingReminders lists incomplete reminders due in the next `days` days.
func (s *CalendarService) UpcomingReminders(farmerID uint, days int) ([]models.CropReminder, error) {
	if days <= 0 || days > 90 {
		days = 7
	}
	now := time.Now().Truncate(24 * time.Hour)
	until := now.AddDate(0, 0, days)

	var list []models.CropReminder
	err := s.DB.
		Where("farmer_id = ? AND is_completed = ? AND reminder_date >= ? AND reminder_date <= ?",
			farmerID, false, now, until).
		Order("reminder_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming reminders: %w", err)
	}
	return list, nil
}
