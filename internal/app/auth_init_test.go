//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/mocks"
)

func TestSeedDefaultOperator(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		setupMock func(*mocks.MockUserRepository)
		wantError bool
	}{
		{
			name:     "creates manager account when none exists",
			password: "change-me",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByEmail", mock.Anything, defaultOperatorEmail).Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					if u.Email != defaultOperatorEmail || !u.Active {
						return false
					}
					if !u.HasRole(model.RoleManager) || !u.HasRole(model.RoleCashier) {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("change-me")) == nil
				})).Return(nil).Once()
			},
			wantError: false,
		},
		{
			name:     "skips seeding when account exists",
			password: "change-me",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByEmail", mock.Anything, defaultOperatorEmail).
					Return(&model.User{Email: defaultOperatorEmail}, nil).Once()
			},
			wantError: false,
		},
		{
			name:      "skips seeding without password",
			password:  "",
			setupMock: func(m *mocks.MockUserRepository) {},
			wantError: false,
		},
		{
			name:     "lookup error",
			password: "change-me",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByEmail", mock.Anything, defaultOperatorEmail).
					Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name:     "create error",
			password: "change-me",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByEmail", mock.Anything, defaultOperatorEmail).Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEFAULT_OPERATOR_PASSWORD", tt.password)

			mockRepo := new(mocks.MockUserRepository)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := seedDefaultOperator(mockRepo)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
