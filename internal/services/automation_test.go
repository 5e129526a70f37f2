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

func TestAutomationService_AnalyzePage(t *testing.T) {
	userID := uuid.New()

	req := models.PageAnalysisRequest{
		PageURL: "https://jobs.example.com/apply/123",
		DetectedFields: []models.FormField{
			{Selector: "#email", Name: "email", Required: true},
		},
	}

	t.Run("profile loaded and plan produced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProfiles := services.NewMockProfileStore(ctrl)
		mockProfiles.EXPECT().
			GetByUserID(gomock.Any(), userID).
			Return(&models.ProfileDB{UserID: userID, FullName: strPtr("Alice Smith")}, nil)

		svc := services.NewAutomationService(mockProfiles)

		plan, err := svc.AnalyzePage(context.Background(), userID, req)
		assert.NoError(t, err)
		assert.Equal(t, "job_application", plan.PageType)
		assert.Equal(t, "email", plan.FieldMappings["#email"])
	})

	t.Run("missing profile still yields a plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProfiles := services.NewMockProfileStore(ctrl)
		mockProfiles.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)

		svc := services.NewAutomationService(mockProfiles)

		plan, err := svc.AnalyzePage(context.Background(), userID, req)
		assert.NoError(t, err)
		assert.NotNil(t, plan)
		assert.Len(t, plan.Actions, 1)
	})
}

func TestAutomationService_AnalyzeAndPlan_FieldMappings(t *testing.T) {
	svc := services.NewAutomationService(nil)

	req := models.PageAnalysisRequest{
		PageURL: "https://jobs.example.com/apply/123",
		DetectedFields: []models.FormField{
			{Selector: "#fname", Name: "first_name"},
			{Selector: "#lname", Name: "last_name"},
			{Selector: "#email", Name: "email", Required: true},
			{Selector: "#phone", Label: "Telephone"},
			{Selector: "#li", Placeholder: "LinkedIn profile URL"},
			{Selector: "#about", Name: "about"},
		},
	}

	plan := svc.AnalyzeAndPlan(req, "{}")

	assert.Equal(t, map[string]string{
		"#fname": "firstName",
		"#lname": "lastName",
		"#email": "email",
		"#phone": "phone",
		"#li":    "linkedinUrl",
		"#about": "summary",
	}, plan.FieldMappings)

	// One fill action per mapped field, in detection order.
	assert.Len(t, plan.Actions, 6)
	assert.Equal(t, "fill_field", plan.Actions[0].ActionType)
	assert.Equal(t, "{{firstName}}", plan.Actions[0].Value)
	assert.Equal(t, 1, plan.Actions[0].Order)
	assert.Equal(t, 6, plan.Actions[5].Order)

	// Every field mapped.
	assert.Equal(t, services.ConfidenceHigh, plan.Confidence)
	assert.Empty(t, plan.Warnings)
}

func TestAutomationService_AnalyzeAndPlan_Confidence(t *testing.T) {
	svc := services.NewAutomationService(nil)

	tests := []struct {
		name   string
		fields []models.FormField
		want   string
	}{
		{
			name: "all mapped is HIGH",
			fields: []models.FormField{
				{Selector: "#email", Name: "email"},
				{Selector: "#phone", Name: "phone"},
			},
			want: services.ConfidenceHigh,
		},
		{
			name: "half mapped is MEDIUM",
			fields: []models.FormField{
				{Selector: "#email", Name: "email"},
				{Selector: "#x", Name: "cover_letter"},
			},
			want: services.ConfidenceMedium,
		},
		{
			name: "few mapped is LOW",
			fields: []models.FormField{
				{Selector: "#email", Name: "email"},
				{Selector: "#a", Name: "cover_letter"},
				{Selector: "#b", Name: "salary_expectation"},
			},
			want: services.ConfidenceLow,
		},
		{
			name:   "no fields is LOW",
			fields: nil,
			want:   services.ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := svc.AnalyzeAndPlan(models.PageAnalysisRequest{DetectedFields: tt.fields}, "{}")
			assert.Equal(t, tt.want, plan.Confidence)
		})
	}
}

func TestAutomationService_AnalyzeAndPlan_Warnings(t *testing.T) {
	svc := services.NewAutomationService(nil)

	req := models.PageAnalysisRequest{
		DetectedFields: []models.FormField{
			{Selector: "#email", Name: "email"},
			{Selector: "#cover", Label: "Cover Letter", Required: true},
		},
	}

	plan := svc.AnalyzeAndPlan(req, "{}")

	assert.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "Cover Letter")
	assert.Contains(t, plan.Suggestions[len(plan.Suggestions)-1], "manual input")
}

func TestDetectPageType(t *testing.T) {
	svc := services.NewAutomationService(nil)

	tests := []struct {
		name string
		req  models.PageAnalysisRequest
		want string
	}{
		{
			name: "apply url",
			req:  models.PageAnalysisRequest{PageURL: "https://example.com/apply/42"},
			want: "job_application",
		},
		{
			name: "apply now in content",
			req:  models.PageAnalysisRequest{PageURL: "https://example.com/x", PageContent: "Click Apply Now to start"},
			want: "job_application",
		},
		{
			name: "career page",
			req:  models.PageAnalysisRequest{PageURL: "https://example.com/careers/backend"},
			want: "job_listing",
		},
		{
			name: "profile page",
			req:  models.PageAnalysisRequest{PageURL: "https://example.com/users/profile"},
			want: "profile_page",
		},
		{
			name: "unknown",
			req:  models.PageAnalysisRequest{PageURL: "https://example.com/about"},
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := svc.AnalyzeAndPlan(tt.req, "{}")
			assert.Equal(t, tt.want, plan.PageType)
		})
	}
}

func TestIsApplicationForm(t *testing.T) {
	svc := services.NewAutomationService(nil)

	t.Run("more than three fields on any page", func(t *testing.T) {
		req := models.PageAnalysisRequest{
			PageURL: "https://example.com/about",
			DetectedFields: []models.FormField{
				{Selector: "#a"}, {Selector: "#b"}, {Selector: "#c"}, {Selector: "#d"},
			},
		}
		plan := svc.AnalyzeAndPlan(req, "{}")
		assert.True(t, plan.IsApplicationForm)
	})

	t.Run("application page with few fields", func(t *testing.T) {
		req := models.PageAnalysisRequest{PageURL: "https://example.com/apply"}
		plan := svc.AnalyzeAndPlan(req, "{}")
		assert.True(t, plan.IsApplicationForm)
	})

	t.Run("plain page with few fields", func(t *testing.T) {
		req := models.PageAnalysisRequest{PageURL: "https://example.com/about"}
		plan := svc.AnalyzeAndPlan(req, "{}")
		assert.False(t, plan.IsApplicationForm)
	})
}
