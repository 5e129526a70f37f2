package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/services"
)

// JobLinkParser defines the interface that the link parser must implement.
type JobLinkParser interface {
	ParseJobLink(ctx context.Context, url string) (*services.ParsedJobLink, error)
}

// JobDescriptionParser defines the interface that the description
// parser must implement.
type JobDescriptionParser interface {
	ParseJobDescription(jobDescription string) *services.JobParsingResult
}

// ParseJobRequest represents the JSON body for job parsing. Exactly one
// of url and description should be set; url wins when both are.
// swagger:model ParseJobRequest
type ParseJobRequest struct {
	// Posting URL to scrape
	URL string `json:"url"`

	// Raw posting text to extract structure from
	Description string `json:"description"`
}

// ParseJobResponse carries whichever parse ran
// swagger:model ParseJobResponse
type ParseJobResponse struct {
	Link   *services.ParsedJobLink    `json:"link,omitempty"`
	Parsed *services.JobParsingResult `json:"parsed,omitempty"`
}

// NewParseJobHandler returns an HTTP handler that extracts posting
// details from a URL or from pasted description text.
// @Summary Parse a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param parseJobRequest body handlers.ParseJobRequest true "URL or description to parse"
// @Success 200 {object} handlers.ParseJobResponse "Extracted details"
// @Failure 400 {object} handlers.APIError "Neither url nor description given"
// @Failure 401 {object} handlers.APIError "Missing or invalid token"
// @Failure 502 {object} handlers.APIError "Posting URL could not be fetched"
// @Security BearerAuth
// @Router /api/jobs/parse [post]
func NewParseJobHandler(links JobLinkParser, parser JobDescriptionParser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ParseJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		switch {
		case req.URL != "":
			link, err := links.ParseJobLink(r.Context(), req.URL)
			if err != nil {
				logger.Log.Errorw("failed to parse job link", "url", req.URL, "err", err)
				writeError(w, r, http.StatusBadGateway, "Failed to fetch the posting URL")
				return
			}
			writeJSON(w, http.StatusOK, ParseJobResponse{Link: link})
		case req.Description != "":
			writeJSON(w, http.StatusOK, ParseJobResponse{
				Parsed: parser.ParseJobDescription(req.Description),
			})
		default:
			writeError(w, r, http.StatusBadRequest, "Either url or description is required")
		}
	}
}
