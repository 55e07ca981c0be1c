package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "usermgmt/internal/errors"
	"usermgmt/internal/model"
	"usermgmt/internal/repository/mocks"
)

func TestRoleService_GetRoleByID(t *testing.T) {
	storeDown := errors.New("connection refused")

	tests := []struct {
		name          string
		id            int
		setupMock     func(*mocks.RoleRepository)
		expected      *model.Role
		expectedError error
	}{
		{
			name: "role exists",
			id:   2,
			setupMock: func(m *mocks.RoleRepository) {
				m.On("FindByID", mock.Anything, 2).Return(&model.Role{ID: 2, Description: "Usuário Padrão"}, nil)
			},
			expected: &model.Role{ID: 2, Description: "Usuário Padrão"},
		},
		{
			name: "role not found",
			id:   999,
			setupMock: func(m *mocks.RoleRepository) {
				m.On("FindByID", mock.Anything, 999).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrRoleNotFound,
		},
		{
			name: "store unavailable",
			id:   1,
			setupMock: func(m *mocks.RoleRepository) {
				m.On("FindByID", mock.Anything, 1).Return(nil, storeDown)
			},
			expectedError: storeDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.RoleRepository)
			tt.setupMock(repo)

			role, err := NewRoleService(repo).GetRoleByID(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, role)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, role)
			}
			repo.AssertExpectations(t)
		})
	}
}
