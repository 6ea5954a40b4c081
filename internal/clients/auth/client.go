package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/cheques/internal/entity"
	"github.com/samandr77/microservices/cheques/pkg/transport"
)

const (
	defaultTimeout      = 3 * time.Second
	defaultRetryMax     = 2
	defaultRetryWaitMin = 100 * time.Millisecond
	defaultRetryWaitMax = time.Second
)

// Client resolves bearer tokens into principals using the auth service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = defaultRetryMax
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = defaultTimeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		baseURL: baseURL,
		http:    retryClient.StandardClient(),
	}
}

type validateRequest struct {
	Token string `json:"accessToken"`
}

type validateResponse struct {
	ID        uuid.UUID       `json:"id"`
	LastName  string          `json:"lastName"`
	FirstName string          `json:"firstName"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
}

// User returns the principal owning token. Tokens rejected by the auth service
// yield entity.ErrUnauthenticated.
func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(validateRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.User{}, fmt.Errorf("%w: auth service rejected token", entity.ErrUnauthenticated)
	default:
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data validateResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	if data.ID.IsNil() {
		return entity.User{}, fmt.Errorf("%w: auth service returned no user id", entity.ErrUnauthenticated)
	}

	return entity.User{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Role:      data.Role,
	}, nil
}
