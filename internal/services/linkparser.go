package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/autoapply/unified-service/internal/logger"
)

const (
	linkParserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	maxDescriptionLen   = 500
)

// ParsedJobLink holds the fields guessed from a job posting page.
type ParsedJobLink struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Company     *string `json:"company,omitempty"`
	Description string  `json:"description"`
}

// LinkParserService fetches a job posting URL and guesses title,
// company and description from the page. It is a best-effort scrape,
// not a per-site extractor.
type LinkParserService struct {
	client *http.Client
}

// NewLinkParserService creates a LinkParserService with a bounded
// request timeout.
func NewLinkParserService() *LinkParserService {
	return &LinkParserService{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ParseJobLink fetches the URL and applies title heuristics:
// "Role | Company" and "Role at Company" split into the two fields,
// meta description falls back to truncated body text.
func (s *LinkParserService) ParseJobLink(ctx context.Context, url string) (*ParsedJobLink, error) {
	logger.Log.Infow("parsing job link", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", linkParserUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch job link", "url", url, "error", err)
		return nil, fmt.Errorf("failed to parse job link: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to parse job link: status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		logger.Log.Errorw("failed to parse job page", "url", url, "error", err)
		return nil, fmt.Errorf("failed to parse job link: %w", err)
	}

	result := &ParsedJobLink{URL: url}

	title := pageTitle(doc)
	description := metaDescription(doc)
	if description == "" {
		body := collectText(doc)
		if len(body) > maxDescriptionLen {
			body = body[:maxDescriptionLen] + "..."
		}
		description = body
	}
	result.Description = description

	// Company is often encoded in the title as "Role | Company" or
	// "Role at Company".
	switch {
	case strings.Contains(title, "|"):
		parts := strings.SplitN(title, "|", 2)
		company := strings.TrimSpace(parts[1])
		result.Title = strings.TrimSpace(parts[0])
		result.Company = &company
	case strings.Contains(title, " at "):
		parts := strings.SplitN(title, " at ", 2)
		company := strings.TrimSpace(parts[1])
		result.Title = strings.TrimSpace(parts[0])
		result.Company = &company
	default:
		result.Title = title
	}

	return result, nil
}

// pageTitle returns the text of the first <title> element.
func pageTitle(doc *html.Node) string {
	var title string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return title
}

// metaDescription returns the content of <meta name="description">.
func metaDescription(doc *html.Node) string {
	var content string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var name, value string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "name":
					name = attr.Val
				case "content":
					value = attr.Val
				}
			}
			if name == "description" {
				content = value
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return content
}

// collectText flattens the visible text of the document body.
func collectText(doc *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node, bool)
	walk = func(n *html.Node, body bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "body":
				body = true
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode && body {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, body)
		}
	}
	walk(doc, false)
	return sb.String()
}
