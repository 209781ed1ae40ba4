package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"water_store/internal/models"
	"water_store/internal/repository"
)

func TestContactSubmitRequiresAllFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db))

	tests := []struct {
		name                            string
		fname, email, subject, message string
	}{
		{"all blank", "", "", "", ""},
		{"missing name", "", "a@b.com", "Hi", "Hello"},
		{"missing email", "Ali", "", "Hi", "Hello"},
		{"missing subject", "Ali", "a@b.com", "", "Hello"},
		{"missing message", "Ali", "a@b.com", "Hi", ""},
		{"whitespace only", "  ", "a@b.com", "Hi", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Submit(tt.fname, tt.email, tt.subject, tt.message)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "All fields are required.", validationErr.Message)
		})
	}

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestContactSubmitPersistsTrimmedFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db))

	require.NoError(t, svc.Submit("  Ali  ", " ali@example.com ", "Delivery question", "When do you deliver to Malaz?"))

	messages, err := svc.GetAllMessages(10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, "Ali", messages[0].Name)
	assert.Equal(t, "ali@example.com", messages[0].Email)
	assert.Equal(t, "Delivery question", messages[0].Subject)
	assert.Equal(t, "When do you deliver to Malaz?", messages[0].Message)
}
