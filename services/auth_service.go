package services

import (
	"errors"
	"fmt"
	"strings"

	"krishimitra-backend/models"
	"krishimitra-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a farmer account keyed by phone number and returns a
// signed bearer token.
func (s *AuthService) Register(fullName, phone, password, state, district, language string) (*models.Farmer, string, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	if fullName == "" || phone == "" || len(password) < 6 {
		return nil, "", fmt.Errorf("%w: full_name, phone and a password of 6+ characters are required", ErrValidation)
	}

	var existing models.Farmer
	if err := s.DB.Where("phone = ?", phone).First(&existing).Error; err == nil {
		return nil, "", fmt.Errorf("%w: phone already registered", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("db error checking phone: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if language == "" {
		language = "en"
	}
	farmer := models.Farmer{
		FullName: fullName,
		Phone:    phone,
		Password: string(hash),
		State:    strings.TrimSpace(state),
		District: strings.TrimSpace(district),
		Language: language,
	}
	if err := s.DB.Create(&farmer).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, "", fmt.Errorf("%w: phone already registered", ErrValidation)
		}
		return nil, "", fmt.Errorf("failed to create farmer: %w", err)
	}

	token, err := utils.GenerateToken(farmer.ID, farmer.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return &farmer, token, nil
}

func (s *AuthService) Login(phone, password string) (*models.Farmer, string, error) {
	var farmer models.Farmer
	if err := s.DB.Where("phone = ?", strings.TrimSpace(phone)).First(&farmer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("db error loading farmer: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(farmer.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(farmer.ID, farmer.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return &farmer, token, nil
}

func (s *AuthService) GetProfile(farmerID uint) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := s.DB.First(&farmer, farmerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error loading farmer %d: %w", farmerID, err)
	}
	return &farmer, nil
}

// ProfileUpdate is a partial profile edit; nil fields stay as they are.
type ProfileUpdate struct {
	FullName *string
	Email    *string
	State    *string
	District *string
	Language *string
}

func (s *AuthService) UpdateProfile(farmerID uint, upd ProfileUpdate) (*models.Farmer, error) {
	farmer, err := s.GetProfile(farmerID)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if upd.FullName != nil && strings.TrimSpace(*upd.FullName) != "" {
		changes["full_name"] = strings.TrimSpace(*upd.FullName)
	}
	if upd.Email != nil {
		changes["email"] = strings.TrimSpace(*upd.Email)
	}
	if upd.State != nil {
		changes["state"] = strings.TrimSpace(*upd.State)
	}
	if upd.District != nil {
		changes["district"] = strings.TrimSpace(*upd.District)
	}
	if upd.Language != nil && *upd.Language != "" {
		changes["language"] = *upd.Language
	}
	if len(changes) == 0 {
		return farmer, nil
	}

	if err := s.DB.Model(farmer).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return farmer, nil
}
