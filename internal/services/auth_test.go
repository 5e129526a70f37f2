package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/autoapply/unified-service/internal/models"
	"github.com/autoapply/unified-service/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful registration",
			email:        "alice@example.com",
			password:     "pass123",
			existingUser: nil,
			wantErr:      nil,
		},
		{
			name:         "email already registered",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New(), Email: "bob@example.com"},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				userID := uuid.New()
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.email, gomock.Any(), "Test", "User", models.RoleUser).
					DoAndReturn(func(_ context.Context, email, hash, firstName, lastName, role string) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						// The service must store a hash, never the raw password.
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return &models.UserDB{
							UserID:       userID,
							Email:        email,
							PasswordHash: hash,
							FirstName:    firstName,
							LastName:     lastName,
							Role:         role,
						}, nil
					})

				if tt.writerErr == nil {
					mockJWT.EXPECT().
						Generate(gomock.Any(), userID, tt.email).
						Return("token123", nil)
				}
			}

			token, user, err := svc.Register(context.Background(), tt.email, tt.password, "Test", "User")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "unknown email",
			email:     "bob@example.com",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "wrong password",
			email:     "carol@example.com",
			user:      &models.UserDB{UserID: uuid.New(), Email: "carol@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "oauth-only account cannot use password login",
			email:     "dave@example.com",
			user:      &models.UserDB{UserID: uuid.New(), Email: "dave@example.com", PasswordHash: models.OAuthPasswordSentinel},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			email:     "dan@example.com",
			user:      &models.UserDB{UserID: userID, Email: "dan@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password && tt.user.PasswordHash != models.OAuthPasswordSentinel {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.Email).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
				assert.Equal(t, tt.user.UserID, user.UserID)
			}
		})
	}
}

func TestAuthService_FindOrCreateOAuthUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	existing := &models.UserDB{UserID: uuid.New(), Email: "known@example.com"}

	tests := []struct {
		name      string
		email     string
		existing  *models.UserDB
		readerErr error
		writerErr error
		wantErr   error
	}{
		{
			name:     "existing account reused",
			email:    "known@example.com",
			existing: existing,
		},
		{
			name:  "new account created with sentinel hash",
			email: "new@example.com",
		},
		{
			name:      "reader error",
			email:     "err@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "fail@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existing, tt.readerErr)

			if tt.existing == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.email, models.OAuthPasswordSentinel, "Jane", "Doe", models.RoleUser).
					DoAndReturn(func(_ context.Context, email, hash, firstName, lastName, role string) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						return &models.UserDB{UserID: uuid.New(), Email: email, PasswordHash: hash}, nil
					})
			}

			user, err := svc.FindOrCreateOAuthUser(context.Background(), tt.email, "Jane", "Doe")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			if tt.existing != nil {
				assert.Equal(t, tt.existing.UserID, user.UserID)
			} else {
				assert.Equal(t, models.OAuthPasswordSentinel, user.PasswordHash)
			}
		})
	}
}

func TestAuthService_IssueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockJWT)

	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, user.Email).Return("session", nil)

	token, err := svc.IssueToken(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, "session", token)
}
