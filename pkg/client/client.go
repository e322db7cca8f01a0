// Package client is a typed HTTP client for the TaskForge API. The bearer
// token lives in the Client value itself, never in ambient storage, so a
// session is exactly as wide as the Client that holds it.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Task struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	ProjectID   uint       `json:"project_id"`
	OwnerID     uint       `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type TaskStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"inProgress"`
	Todo       int64 `json:"todo"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reqBody bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&errBody)
		return &APIError{StatusCode: res.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Register creates an account and starts a session on this client.
func (c *Client) Register(name, email, password string) (*User, error) {
	var res authResponse

	err := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}

	c.token = res.Token
	return &res.User, nil
}

// Login starts a session on this client.
func (c *Client) Login(email, password string) (*User, error) {
	var res authResponse

	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}

	c.token = res.Token
	return &res.User, nil
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) Me() (*User, error) {
	var res struct {
		User User `json:"user"`
	}

	if err := c.do(http.MethodGet, "/api/auth/me", nil, &res); err != nil {
		return nil, err
	}

	return &res.User, nil
}

func (c *Client) CreateProject(name, description string) (*Project, error) {
	var project Project

	err := c.do(http.MethodPost, "/api/projects", map[string]string{
		"name":        name,
		"description": description,
	}, &project)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) ListProjects() ([]Project, error) {
	var projects []Project

	if err := c.do(http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (c *Client) UpdateProject(id uint, patch map[string]interface{}) (*Project, error) {
	var project Project

	err := c.do(http.MethodPut, fmt.Sprintf("/api/projects/%d", id), patch, &project)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) DeleteProject(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

func (c *Client) CreateTask(projectID uint, fields map[string]interface{}) (*Task, error) {
	body := map[string]interface{}{"project_id": projectID}
	for k, v := range fields {
		body[k] = v
	}

	var task Task

	if err := c.do(http.MethodPost, "/api/tasks", body, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (c *Client) ListTasks(projectID uint) ([]Task, error) {
	var tasks []Task

	err := c.do(http.MethodGet, fmt.Sprintf("/api/projects/%d/tasks", projectID), nil, &tasks)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (c *Client) UpdateTask(id uint, patch map[string]interface{}) (*Task, error) {
	var task Task

	err := c.do(http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), patch, &task)
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (c *Client) DeleteTask(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

func (c *Client) TaskStats() (*TaskStats, error) {
	var stats TaskStats

	if err := c.do(http.MethodGet, "/api/tasks/stats/user", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
