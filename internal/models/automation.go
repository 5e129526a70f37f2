package models

// FormField describes a single form field detected on a page by the
// browser extension.
type FormField struct {
	Selector    string `json:"selector"`
	Name        string `json:"name"`
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	FieldType   string `json:"field_type"`
	Required    bool   `json:"required"`
}

// PageAnalysisRequest carries the page structure captured by the
// extension for automation planning.
type PageAnalysisRequest struct {
	PageURL        string      `json:"page_url"`
	PageContent    string      `json:"page_content"`
	DetectedFields []FormField `json:"detected_fields"`
}

// AutomationAction is one step of a generated fill plan.
type AutomationAction struct {
	ActionType    string `json:"action_type"`
	FieldSelector string `json:"field_selector"`
	FieldID       string `json:"field_id"`
	FieldName     string `json:"field_name"`
	Value         string `json:"value"`
	Order         int    `json:"order"`
	Description   string `json:"description"`
}

// AutomationPlan is the advisory output of page analysis. It is never
// persisted; the extension executes (or discards) it client-side.
type AutomationPlan struct {
	PageType          string             `json:"page_type"`
	IsApplicationForm bool               `json:"is_application_form"`
	JobTitle          *string            `json:"job_title,omitempty"`
	CompanyName       *string            `json:"company_name,omitempty"`
	FieldMappings     map[string]string  `json:"field_mappings"`
	Actions           []AutomationAction `json:"actions"`
	Confidence        string             `json:"confidence"`
	Warnings          []string           `json:"warnings"`
	Suggestions       []string           `json:"suggestions"`
}
