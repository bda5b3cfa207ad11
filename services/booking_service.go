package services

import (
	"errors"
	"fmt"
	"log"

	"krishimitra-backend/models"
	"krishimitra-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBooking validates the range, checks availability and conflicts,
// prices the rental and inserts a pending booking.
//
// The whole read-then-insert sequence runs in one transaction with the tool
// row locked FOR UPDATE, so two concurrent requests for the same tool are
// serialized and cannot both pass the conflict check.
func (s *BookingService) CreateBooking(renterID, toolID uint, startDate, endDate string) (*models.Booking, error) {
	if !ValidDateRange(startDate, endDate) {
		return nil, ErrInvalidDateRange
	}

	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var tool models.Tool
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tool, toolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrToolNotFound
			}
			return fmt.Errorf("db error checking tool %d: %w", toolID, err)
		}

		var active []models.Booking
		if err := tx.
			Where("tool_id = ?", toolID).
			Where("status IN ?", []string{models.BookingPending, models.BookingConfirmed}).
			Find(&active).Error; err != nil {
			return fmt.Errorf("db error loading active bookings: %w", err)
		}

		planned, err := PlanBooking(tool, active, renterID, startDate, endDate)
		if err != nil {
			return err
		}
		planned.ReferenceCode = uuid.NewString()

		if err := tx.Create(&planned).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		booking = planned
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Tool").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// ListForFarmer returns bookings where the farmer is the renter or owns the
// booked tool, newest first.
func (s *BookingService) ListForFarmer(farmerID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Joins("JOIN tools ON tools.id = bookings.tool_id").
		Where("bookings.renter_id = ? OR tools.owner_id = ?", farmerID, farmerID).
		Preload("Tool").
		Order("bookings.created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// UpdateStatus moves a booking along its lifecycle. Only the renter or the
// tool owner may act, and only forward transitions are allowed.
func (s *BookingService) UpdateStatus(bookingID, actorID uint, newStatus string) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Tool").
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("db error loading booking %d: %w", bookingID, err)
		}

		if err := CheckStatusChange(booking, booking.Tool.OwnerID, actorID, newStatus); err != nil {
			return err
		}

		if err := tx.Model(&booking).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		booking.Status = newStatus
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notifyCounterparty(&booking, actorID)
	return &booking, nil
}

// notifyCounterparty emails whichever party did not perform the change.
// Best effort only; a mail failure never fails the request.
func (s *BookingService) notifyCounterparty(b *models.Booking, actorID uint) {
	recipientID := b.RenterID
	if actorID == b.RenterID {
		recipientID = b.Tool.OwnerID
	}

	var recipient models.Farmer
	if err := s.DB.First(&recipient, recipientID).Error; err != nil {
		log.Printf("booking %s: could not load notification recipient %d: %v", b.ReferenceCode, recipientID, err)
		return
	}
	if recipient.Email == "" {
		return
	}

	if err := utils.SendBookingStatusEmail(
		recipient.Email,
		recipient.FullName,
		b.Tool.Name,
		b.ReferenceCode,
		b.Status,
		b.StartDate.Format(DateLayout),
		b.EndDate.Format(DateLayout),
	); err != nil {
		log.Printf("booking %s: notification email failed: %v", b.ReferenceCode, err)
	}
}
