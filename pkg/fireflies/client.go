package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/haiminhdev/meeting-brief/internal/domain/entities"
	"github.com/haiminhdev/meeting-brief/pkg/config"
)

// transcriptQuery fetches the meeting title and per-speaker sentences
const transcriptQuery = `
    query GetTranscript($id: String!) {
        transcript(id: $id) {
            title
            sentences {
                speaker_name
                text
            }
        }
    }
`

// Client is a minimal Fireflies GraphQL client
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a Fireflies client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewClient(cfg *config.FirefliesConfig) *Client {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("FIREFLIES_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("FIREFLIES_API_URL")
		if base == "" {
			base = "https://api.fireflies.ai/graphql"
		}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// graphqlRequest is the shape for GraphQL POST bodies
type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// transcriptResponse is a minimal response shape
type transcriptResponse struct {
	Data struct {
		Transcript *struct {
			Title     string `json:"title"`
			Sentences []struct {
				SpeakerName string `json:"speaker_name"`
				Text        string `json:"text"`
			} `json:"sentences"`
		} `json:"transcript"`
	} `json:"data"`
}

// FetchTranscript fetches the transcript text and title for a meeting.
// Sentences are joined as one "Speaker: text" line per speaker turn.
func (c *Client) FetchTranscript(ctx context.Context, meetingID string) (*entities.Transcript, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("fireflies api key not configured")
	}

	reqBody := graphqlRequest{
		Query:     transcriptQuery,
		Variables: map[string]string{"id": meetingID},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	var tr transcriptResponse
	callFn := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("fireflies returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("fireflies returned status %d", resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(callFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	if tr.Data.Transcript == nil {
		return nil, fmt.Errorf("no transcript data found for meeting %s", meetingID)
	}
	if len(tr.Data.Transcript.Sentences) == 0 {
		return nil, fmt.Errorf("no sentences found in transcript for meeting %s", meetingID)
	}

	title := tr.Data.Transcript.Title
	if title == "" {
		title = "Untitled Meeting"
	}

	var sb strings.Builder
	for i, s := range tr.Data.Transcript.Sentences {
		if i > 0 {
			sb.WriteString("\n")
		}
		speaker := s.SpeakerName
		if speaker == "" {
			speaker = "Unknown"
		}
		sb.WriteString(speaker)
		sb.WriteString(": ")
		sb.WriteString(s.Text)
	}

	return &entities.Transcript{
		Text:  sb.String(),
		Title: title,
	}, nil
}
