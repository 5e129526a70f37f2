package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/autoapply/unified-service/internal/models"
	"github.com/autoapply/unified-service/internal/services"
)

func TestProfileService_CreateOrUpdateProfile(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name            string
		params          services.ProfileParams
		wantReplaceExp  bool
		wantReplaceEdu  bool
		wantReplaceSkl  bool
		wantExperiences int
		wantSkills      int
	}{
		{
			name:   "scalars only leaves every collection alone",
			params: services.ProfileParams{FullName: strPtr("Alice Smith"), Phone: strPtr("+1-555-0100")},
		},
		{
			name: "non-nil collections replace wholesale",
			params: services.ProfileParams{
				FullName: strPtr("Alice Smith"),
				Experiences: &[]models.ExperienceDB{
					{Company: "Acme", Position: "Engineer"},
					{Company: "Globex", Position: "Senior Engineer", IsCurrent: true},
				},
				Skills: &[]models.SkillDB{{Name: "Go"}},
			},
			wantReplaceExp:  true,
			wantReplaceSkl:  true,
			wantExperiences: 2,
			wantSkills:      1,
		},
		{
			name: "empty non-nil collection still replaces",
			params: services.ProfileParams{
				Education: &[]models.EducationDB{},
			},
			wantReplaceEdu: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := services.NewMockProfileStore(ctrl)
			mockStore.EXPECT().
				Upsert(gomock.Any(), gomock.Any(), tt.wantReplaceExp, tt.wantReplaceEdu, tt.wantReplaceSkl).
				DoAndReturn(func(_ context.Context, profile *models.ProfileDB, _, _, _ bool) (*models.ProfileDB, error) {
					assert.Equal(t, userID, profile.UserID)
					assert.Equal(t, tt.params.FullName, profile.FullName)
					assert.Len(t, profile.Experiences, tt.wantExperiences)
					assert.Len(t, profile.Skills, tt.wantSkills)
					return profile, nil
				})

			svc := services.NewProfileService(mockStore)

			updated, err := svc.CreateOrUpdateProfile(context.Background(), userID, tt.params)
			assert.NoError(t, err)
			assert.Equal(t, userID, updated.UserID)
		})
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockProfileStore(ctrl)
	svc := services.NewProfileService(mockStore)

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockStore.EXPECT().
			GetByUserID(gomock.Any(), userID).
			Return(&models.ProfileDB{UserID: userID, FullName: strPtr("Alice Smith")}, nil)

		profile, err := svc.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "Alice Smith", *profile.FullName)
	})

	t.Run("missing profile", func(t *testing.T) {
		mockStore.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)

		profile, err := svc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, profile)
	})
}
