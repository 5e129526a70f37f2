package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/autoapply/unified-service/internal/middlewares"
	"github.com/autoapply/unified-service/internal/models"
)

func TestAnalyzePageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := middlewares.Identity{UserID: uuid.New()}

	t.Run("returns the plan", func(t *testing.T) {
		mockSvc := NewMockPageAnalyzer(ctrl)
		mockSvc.EXPECT().
			AnalyzePage(gomock.Any(), identity.UserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.PageAnalysisRequest) (*models.AutomationPlan, error) {
				assert.Equal(t, "https://jobs.example.com/apply/42", req.PageURL)
				return &models.AutomationPlan{
					PageType:          "job_application",
					IsApplicationForm: true,
					Confidence:        "HIGH",
					FieldMappings:     map[string]string{"#email": "email"},
				}, nil
			})

		bodyBytes, _ := json.Marshal(models.PageAnalysisRequest{
			PageURL:        "https://jobs.example.com/apply/42",
			DetectedFields: []models.FormField{{Selector: "#email", Name: "email"}},
		})
		rr := httptest.NewRecorder()
		NewAnalyzePageHandler(mockSvc)(rr, authedRequest(http.MethodPost, "/api/automation/analyze", bytes.NewBuffer(bodyBytes), identity))

		assert.Equal(t, http.StatusOK, rr.Code)

		var plan models.AutomationPlan
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
		assert.Equal(t, "job_application", plan.PageType)
		assert.True(t, plan.IsApplicationForm)
	})

	t.Run("missing page url", func(t *testing.T) {
		mockSvc := NewMockPageAnalyzer(ctrl)

		bodyBytes, _ := json.Marshal(models.PageAnalysisRequest{})
		rr := httptest.NewRecorder()
		NewAnalyzePageHandler(mockSvc)(rr, authedRequest(http.MethodPost, "/api/automation/analyze", bytes.NewBuffer(bodyBytes), identity))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		mockSvc := NewMockPageAnalyzer(ctrl)

		rr := httptest.NewRecorder()
		NewAnalyzePageHandler(mockSvc)(rr, httptest.NewRequest(http.MethodPost, "/api/automation/analyze", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
