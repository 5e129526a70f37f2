package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

// Confidence levels for automation plans.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// fieldPatterns maps field-name heuristics to profile attributes. The
// order matters: the first matching pattern wins.
var fieldPatterns = []struct {
	re      *regexp.Regexp
	profile string
}{
	{regexp.MustCompile(`first|given|fname|firstname`), "firstName"},
	{regexp.MustCompile(`last|family|lname|surname|lastname`), "lastName"},
	{regexp.MustCompile(`email|e-mail|emailaddress`), "email"},
	{regexp.MustCompile(`phone|tel|telephone|mobile`), "phone"},
	{regexp.MustCompile(`location|city|address`), "location"},
	{regexp.MustCompile(`linkedin|linked-in`), "linkedinUrl"},
	{regexp.MustCompile(`portfolio|website|personal.*website`), "portfolioUrl"},
	{regexp.MustCompile(`summary|about|bio|introduction`), "summary"},
}

// AutomationService plans form fills for the browser extension. The
// matching is a best-effort name heuristic, not a learned mapping.
// TODO: replace the regex matcher with a model-backed field classifier.
type AutomationService struct {
	profiles ProfileStore
}

// NewAutomationService creates a new AutomationService.
func NewAutomationService(profiles ProfileStore) *AutomationService {
	return &AutomationService{profiles: profiles}
}

// AnalyzePage loads the caller's profile and builds a fill plan for the
// captured page. A missing profile still yields a plan, just without
// field values.
func (s *AutomationService) AnalyzePage(
	ctx context.Context,
	userID uuid.UUID,
	req models.PageAnalysisRequest,
) (*models.AutomationPlan, error) {
	profileJSON := "{}"
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile != nil {
		data, err := json.Marshal(profile)
		if err != nil {
			return nil, fmt.Errorf("marshal profile: %w", err)
		}
		profileJSON = string(data)
	}

	plan := s.AnalyzeAndPlan(req, profileJSON)
	logger.Log.Infow("Page analyzed",
		"user_id", userID,
		"page_type", plan.PageType,
		"confidence", plan.Confidence,
	)
	return plan, nil
}

// AnalyzeAndPlan inspects the captured page and produces an advisory
// fill plan. The plan is never persisted.
func (s *AutomationService) AnalyzeAndPlan(req models.PageAnalysisRequest, profileJSON string) *models.AutomationPlan {
	plan := &models.AutomationPlan{
		PageType:      detectPageType(req),
		FieldMappings: map[string]string{},
		Actions:       []models.AutomationAction{},
		Warnings:      []string{},
		Suggestions:   []string{},
	}
	plan.IsApplicationForm = isApplicationForm(req, plan.PageType)

	for _, field := range req.DetectedFields {
		if profileField := mapFieldToProfile(field); profileField != "" {
			plan.FieldMappings[field.Selector] = profileField
		}
	}

	order := 1
	for _, field := range req.DetectedFields {
		profileField, ok := plan.FieldMappings[field.Selector]
		if !ok {
			continue
		}
		label := field.Label
		if label == "" {
			label = field.Name
		}
		plan.Actions = append(plan.Actions, models.AutomationAction{
			ActionType:    "fill_field",
			FieldSelector: field.Selector,
			FieldID:       field.ID,
			FieldName:     field.Name,
			Value:         "{{" + profileField + "}}",
			Order:         order,
			Description:   fmt.Sprintf("Fill %s with %s", label, profileField),
		})
		order++
	}

	plan.Confidence = calculateConfidence(len(req.DetectedFields), len(plan.FieldMappings))

	for _, field := range req.DetectedFields {
		if _, mapped := plan.FieldMappings[field.Selector]; !mapped && field.Required {
			label := field.Label
			if label == "" {
				label = field.Name
			}
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("Required field '%s' could not be automatically mapped", label))
		}
	}

	if plan.Confidence == ConfidenceLow {
		plan.Suggestions = append(plan.Suggestions,
			"Low confidence automation. Please review all fields before submitting.")
	}
	if len(plan.Warnings) > 0 {
		plan.Suggestions = append(plan.Suggestions,
			"Some required fields need manual input. Please fill them before submitting.")
	}

	return plan
}

// detectPageType guesses the page kind from its URL and content.
func detectPageType(req models.PageAnalysisRequest) string {
	url := strings.ToLower(req.PageURL)
	content := strings.ToLower(req.PageContent)

	switch {
	case strings.Contains(url, "apply") || strings.Contains(url, "application") || strings.Contains(content, "apply now"):
		return "job_application"
	case strings.Contains(url, "job") || strings.Contains(url, "career") || strings.Contains(content, "job description"):
		return "job_listing"
	case strings.Contains(url, "profile") || strings.Contains(content, "profile"):
		return "profile_page"
	}
	return "unknown"
}

func isApplicationForm(req models.PageAnalysisRequest, pageType string) bool {
	if len(req.DetectedFields) > 3 {
		return true
	}
	return pageType == "job_application"
}

// mapFieldToProfile guesses the profile attribute for a form field from
// its name, id, label and placeholder. Returns "" when nothing matches.
func mapFieldToProfile(field models.FormField) string {
	combined := strings.ToLower(strings.Join([]string{
		field.Name, field.ID, field.Label, field.Placeholder,
	}, " "))

	for _, p := range fieldPatterns {
		if p.re.MatchString(combined) {
			return p.profile
		}
	}
	return ""
}

// calculateConfidence grades the mapped-field ratio: HIGH at 0.8 and
// above, MEDIUM at 0.5, LOW otherwise.
func calculateConfidence(totalFields, mappedFields int) string {
	if mappedFields == 0 || totalFields == 0 {
		return ConfidenceLow
	}

	ratio := float64(mappedFields) / float64(totalFields)
	switch {
	case ratio >= 0.8:
		return ConfidenceHigh
	case ratio >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
