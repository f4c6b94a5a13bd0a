package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/common"
)

const (
	learningGoalPath = "/api/v1/clock-in/goal"
	userDetailPath   = "/api/v1/auth/user/"
	wordbooksPath    = "/books"
)

// HTTPClient talks to the WordTrail REST backend.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	newID      func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.httpClient = c
	}
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) SaveLearningGoal(ctx context.Context, token string, newWords, reviewWords int) error {
	form := url.Values{}
	form.Set("dailyNewWordsGoal", strconv.Itoa(newWords))
	form.Set("dailyReviewWordsGoal", strconv.Itoa(reviewWords))

	req, err := c.newRequest(ctx, http.MethodPost, learningGoalPath, token, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return mapStatus(resp.StatusCode)
}

func (c *HTTPClient) GetLearningGoal(ctx context.Context, token string) (*models.LearningGoal, error) {
	var goal models.LearningGoal
	if err := c.getJSON(ctx, learningGoalPath, token, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *HTTPClient) GetUserDetail(ctx context.Context, token, userID string) (*models.UserDetail, error) {
	var detail models.UserDetail
	if err := c.getJSON(ctx, userDetailPath+url.PathEscape(userID), token, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *HTTPClient) ListWordbooks(ctx context.Context, token string) ([]models.Lexicon, error) {
	var books []models.Lexicon
	if err := c.getJSON(ctx, wordbooksPath, token, &books); err != nil {
		return nil, err
	}
	if books == nil {
		return nil, fmt.Errorf("%w: expected an array", ErrInvalidResponse)
	}
	return books, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path, token string, v any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	req.Header.Set(common.RequestIDHeaderName, c.newID())
	return req, nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return resp, nil
}
