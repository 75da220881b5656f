package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/haiminhdev/meeting-brief/pkg/config"
)

// Client is a minimal Asana REST client
type Client struct {
	token        string
	workspaceGID string
	baseURL      string
	client       *http.Client
}

// NewClient creates an Asana client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewClient(cfg *config.AsanaConfig) *Client {
	var token, workspace string
	if cfg != nil {
		token = cfg.AccessToken
		workspace = cfg.WorkspaceGID
	}
	if token == "" {
		token = os.Getenv("ASANA_PERSONAL_ACCESS_TOKEN")
	}
	if workspace == "" {
		workspace = os.Getenv("ASANA_WORKSPACE_GID")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = "https://app.asana.com/api/1.0"
	}

	return &Client{
		token:        token,
		workspaceGID: workspace,
		baseURL:      base,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// dataEnvelope wraps Asana request and response bodies
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type gidResource struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// FindProjectByName finds a project's GID within the configured workspace
// by a case-insensitive name match. Returns empty string when no project
// matches.
func (c *Client) FindProjectByName(ctx context.Context, projectName string) (string, error) {
	endpoint := fmt.Sprintf("%s/projects?workspace=%s&opt_fields=name",
		c.baseURL, url.QueryEscape(c.workspaceGID))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("asana returned status %d", resp.StatusCode)
	}

	var env struct {
		Data []gidResource `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", err
	}

	for _, project := range env.Data {
		if strings.EqualFold(project.Name, projectName) {
			return project.GID, nil
		}
	}
	return "", nil
}

// CreateTaskWithAttachment creates a new task in a project and attaches the
// transcript text as transcript.txt. Returns the new task GID.
func (c *Client) CreateTaskWithAttachment(ctx context.Context, projectGID, taskName, transcriptText string) (string, error) {
	taskGID, err := c.createTask(ctx, map[string]interface{}{
		"name":      taskName,
		"workspace": c.workspaceGID,
		"projects":  []string{projectGID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	if err := c.attachTranscript(ctx, taskGID, transcriptText); err != nil {
		return "", fmt.Errorf("failed to attach transcript: %w", err)
	}
	return taskGID, nil
}

// PostComment posts a rich text comment story to a task. The markup body
// must be wrapped in <body> tags per the Asana stories API.
func (c *Client) PostComment(ctx context.Context, taskGID, commentHTML string) error {
	endpoint := fmt.Sprintf("%s/tasks/%s/stories", c.baseURL, taskGID)
	payload := map[string]interface{}{
		"html_text": fmt.Sprintf("<body>%s</body>", commentHTML),
	}
	_, err := c.postJSON(ctx, endpoint, payload)
	return err
}

// CreateSubtask creates a sub-task under a parent task with an optional
// owner note and due date.
func (c *Client) CreateSubtask(ctx context.Context, parentGID, name, owner, dueOn string) error {
	payload := map[string]interface{}{
		"name":   name,
		"parent": parentGID,
	}
	if dueOn != "" {
		payload["due_on"] = dueOn
	}
	if owner != "" {
		payload["notes"] = fmt.Sprintf("Owner: %s", owner)
	}
	endpoint := fmt.Sprintf("%s/tasks", c.baseURL)
	_, err := c.postJSON(ctx, endpoint, payload)
	return err
}

func (c *Client) createTask(ctx context.Context, payload map[string]interface{}) (string, error) {
	endpoint := fmt.Sprintf("%s/tasks", c.baseURL)
	raw, err := c.postJSON(ctx, endpoint, payload)
	if err != nil {
		return "", err
	}

	var res gidResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", err
	}
	if res.GID == "" {
		return "", fmt.Errorf("no gid in task response")
	}
	return res.GID, nil
}

func (c *Client) attachTranscript(ctx context.Context, taskGID, transcriptText string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "transcript.txt")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(fw, transcriptText); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/tasks/%s/attachments", c.baseURL, taskGID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("asana returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]interface{}{"data": payload})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("asana returned status %d", resp.StatusCode)
	}

	var env dataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
