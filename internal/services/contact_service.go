package services

import (
	"strings"

	"water_store/internal/models"
	"water_store/internal/repository"
)

type ContactService interface {
	Submit(name, email, subject, message string) error
	GetMessageByID(id uint) (*models.ContactMessage, error)
	GetAllMessages(limit, offset int) ([]models.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Submit persists one message when all four fields are non-blank after
// trimming; otherwise it rejects with a single aggregate error and stores
// nothing.
func (s *contactService) Submit(name, email, subject, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || subject == "" || message == "" {
		return newValidationError("All fields are required.")
	}

	return s.contactRepo.Create(&models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
}

func (s *contactService) GetMessageByID(id uint) (*models.ContactMessage, error) {
	return s.contactRepo.GetByID(id)
}

func (s *contactService) GetAllMessages(limit, offset int) ([]models.ContactMessage, error) {
	return s.contactRepo.GetAll(limit, offset)
}
