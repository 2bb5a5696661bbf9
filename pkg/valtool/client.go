package valtool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the ValTool account service. One POST per login; no
// retry, no token refresh.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HTTPError is a non-2xx login response. It classifies the failure as an
// authentication rejection rather than a transport problem.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("valtool: login rejected with status %d", e.StatusCode)
}

// LoginResult is the profile extracted from a successful login.
type LoginResult struct {
	AuthToken     string
	TestToken     string
	UserName      string
	Email         string
	Phone         string
	Organizations []string
}

type loginRequest struct {
	EMail    string `json:"EMail"`
	Password string `json:"Password"`
}

type loginResponse struct {
	WaivUser struct {
		Meta struct {
			Token     string `json:"token"`
			TestToken string `json:"test_token"`
		} `json:"meta"`
		Data struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Phone string `json:"phone"`
		} `json:"data"`
	} `json:"waivUser"`
	WaivOrgs struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	} `json:"waivOrgs"`
}

// Login posts credentials to /api/login. The secondary token comes from the
// response body when present, otherwise from the "test_token" or
// "evp-valuation" cookie, first non-empty wins.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload, err := json.Marshal(loginRequest{EMail: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/login", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read login response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal login response: %w", err)
	}

	testToken := parsed.WaivUser.Meta.TestToken
	if testToken == "" {
		testToken = cookieValue(resp.Cookies(), "test_token")
	}
	if testToken == "" {
		testToken = cookieValue(resp.Cookies(), "evp-valuation")
	}

	orgs := make([]string, 0, len(parsed.WaivOrgs.Data))
	for _, org := range parsed.WaivOrgs.Data {
		orgs = append(orgs, org.Name)
	}

	return &LoginResult{
		AuthToken:     parsed.WaivUser.Meta.Token,
		TestToken:     testToken,
		UserName:      parsed.WaivUser.Data.Name,
		Email:         parsed.WaivUser.Data.Email,
		Phone:         parsed.WaivUser.Data.Phone,
		Organizations: orgs,
	}, nil
}

func cookieValue(cookies []*http.Cookie, name string) string {
	for _, c := range cookies {
		if c.Name == name && c.Value != "" {
			return c.Value
		}
	}
	return ""
}
