package services

import (
	"fmt"

	"krishimitra-backend/models"

	"gorm.io/gorm"
)

// Per-language system prompts for the farming assistant. Unknown languages
// fall back to English.
var assistantPrompts = map[string]string{
	"en": "You are KrishiMitra, a helpful AI assistant for Indian farmers. Provide practical, actionable advice on crop cultivation, pest and disease management, soil health and fertilization, irrigation, weather-related decisions, and government schemes. Keep responses concise (2-4 sentences), use simple language, and focus on solutions available to small and marginal farmers. Prioritize organic and sustainable methods when possible.",
	"hi": "आप कृषिमित्र हैं, भारतीय किसानों के लिए एक सहायक AI सहायक। फसल की खेती, कीट और रोग प्रबंधन, मिट्टी स्वास्थ्य, सिंचाई, मौसम संबंधी फैसलों और सरकारी योजनाओं पर व्यावहारिक सलाह दें। संक्षिप्त (2-4 वाक्य) जवाब दें, सरल भाषा का उपयोग करें, और छोटे किसानों के लिए उपलब्ध समाधानों पर ध्यान दें। जैविक और टिकाऊ तरीकों को प्राथमिकता दें।",
}

type AssistantService struct {
	DB *gorm.DB
	AI *AIClient
}

func NewAssistantService(db *gorm.DB, ai *AIClient) *AssistantService {
	return &AssistantService{DB: db, AI: ai}
}

// HistoryTurn is one prior exchange supplied by the client to give the
// model conversational context.
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat sends the farmer's message to the assistant and records the
// exchange.
func (s *AssistantService) Chat(farmerID uint, message, language string, history []HistoryTurn, isVoice bool) (*models.ChatMessage, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	prompt, ok := assistantPrompts[language]
	if !ok {
		prompt = assistantPrompts["en"]
	}

	messages := make([]AIMessage, 0, len(history)+2)
	messages = append(messages, AIMessage{Role: "system", Content: prompt})
	for _, h := range history {
		messages = append(messages, AIMessage{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, AIMessage{Role: "user", Content: message})

	reply, err := s.AI.Complete(messages, 0.7)
	if err != nil {
		return nil, err
	}

	record := models.ChatMessage{
		FarmerID: farmerID,
		Message:  message,
		Response: reply,
		Language: language,
		IsVoice:  isVoice,
	}
	if record.Language == "" {
		record.Language = "en"
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}
	return &record, nil
}

// History returns the farmer's past exchanges, newest first.
func (s *AssistantService) History(farmerID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var list []models.ChatMessage
	err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return list, nil
}
