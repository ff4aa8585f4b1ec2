package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-trading-hub/internal/models"
	"github.com/sbilibin2017/gw-trading-hub/internal/repositories"
	"github.com/sbilibin2017/gw-trading-hub/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		input        services.RegisterInput
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		mailerErr    error
		skipReader   bool
		skipWriter   bool
		skipMailer   bool
		wantErr      error
	}{
		{
			name: "successful registration",
			input: services.RegisterInput{
				Email:    "alice@example.com",
				Username: "alice",
				Password: "Secret1!",
			},
		},
		{
			name: "weak password rejected before any store access",
			input: services.RegisterInput{
				Email:    "bob@example.com",
				Username: "bob",
				Password: "weak",
			},
			skipReader: true,
			skipWriter: true,
			skipMailer: true,
			wantErr:    services.ErrWeakPassword,
		},
		{
			name: "user already exists",
			input: services.RegisterInput{
				Email:    "carol@example.com",
				Username: "carol",
				Password: "Secret1!",
			},
			existingUser: &models.UserDB{Username: "carol"},
			skipWriter:   true,
			skipMailer:   true,
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name: "reader error",
			input: services.RegisterInput{
				Email:    "eve@example.com",
				Username: "eve",
				Password: "Secret1!",
			},
			readerErr:  errors.New("db error"),
			skipWriter: true,
			skipMailer: true,
			wantErr:    errors.New("db error"),
		},
		{
			name: "writer error",
			input: services.RegisterInput{
				Email:    "dan@example.com",
				Username: "dan",
				Password: "Secret1!",
			},
			writerErr:  errors.New("save error"),
			skipMailer: true,
			wantErr:    errors.New("save error"),
		},
		{
			name: "duplicate surfaced by unique constraint",
			input: services.RegisterInput{
				Email:    "frank@example.com",
				Username: "frank",
				Password: "Secret1!",
			},
			writerErr:  repositories.ErrDuplicateUsername,
			skipMailer: true,
			wantErr:    services.ErrUserAlreadyExists,
		},
		{
			name: "email failure does not fail registration",
			input: services.RegisterInput{
				Email:    "grace@example.com",
				Username: "grace",
				Password: "Secret1!",
			},
			mailerErr: errors.New("smtp unreachable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockMailer := services.NewMockEmailSender(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockMailer)

			if !tt.skipReader {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.input.Username).
					Return(tt.existingUser, tt.readerErr)
			}
			if !tt.skipWriter {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user models.UserDB) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						assert.Equal(t, tt.input.Username, user.Username)
						assert.Equal(t, models.RoleUser, user.Role)
						// The plaintext password is never persisted.
						assert.NotEqual(t, tt.input.Password, user.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
						saved := user
						return &saved, nil
					})
			}
			if !tt.skipMailer {
				mockMailer.EXPECT().
					Send(tt.input.Email, gomock.Any(), gomock.Any()).
					Return(tt.mailerErr)
			}

			saved, err := svc.Register(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Username, saved.Username)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "Secret1!"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		wantErr   error
		wantRole  string
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{Username: "alice", PasswordHash: string(hashed), Role: models.RoleUser},
			wantRole:  models.RoleUser,
		},
		{
			name:      "admin role returned",
			username:  "root",
			loginPass: password,
			user:      &models.UserDB{Username: "root", PasswordHash: string(hashed), Role: models.RoleAdmin},
			wantRole:  models.RoleAdmin,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			loginPass: password,
			wantErr:   services.ErrUserDoesNotExist,
		},
		{
			name:      "invalid password",
			username:  "carol",
			loginPass: "WrongPass1!",
			user:      &models.UserDB{Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "eve",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockMailer := services.NewMockEmailSender(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockMailer)

			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			user, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.wantRole, user.Role)
			}
		})
	}
}
