package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gatekeeper/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(&model.User{
		ID: id, Name: "Test", Email: "test@example.com", Role: "user",
		PasswordHash: "hash-never-exposed",
	}, nil)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.GetUser(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.GetUser(context.Background(), id)

	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return([]model.User{
		{ID: uuid.New(), Name: "A", Email: "a@example.com", Role: "user"},
		{ID: uuid.New(), Name: "B", Email: "b@example.com", Role: "admin"},
	}, nil)

	svc := NewUserService(mockRepo, nil)
	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "admin", users[1].Role)
}
