package services

import (
	"context"
	"fmt"

	"studio-backend/models"

	"gorm.io/gorm"
)

const DefaultChatRoom = "lobby"

type ChatService struct {
	DB *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{DB: db}
}

func (s *ChatService) Save(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	if msg.Room == "" {
		msg.Room = DefaultChatRoom
	}
	if err := s.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("save chat message: %w", err)
	}
	return msg, nil
}

// Recent returns up to limit messages of room, oldest first.
func (s *ChatService) Recent(ctx context.Context, room string, limit int) ([]models.ChatMessage, error) {
	if room == "" {
		room = DefaultChatRoom
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	messages := []models.ChatMessage{}
	err := s.DB.WithContext(ctx).
		Where("room = ?", room).
		Order("id desc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("recent chat messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
