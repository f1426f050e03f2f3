// File: mezbaan/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mezbaan/models"
	"mezbaan/services/booking"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the REST collaborator for the mezbaan backend. It implements
// booking.CatalogAPI, booking.BookingAPI and booking.RatingAPI. Authorized
// calls take their bearer token from the injected credential provider; there
// are no retries and no caching.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials booking.CredentialProvider
	Limiter     *rate.Limiter
	Logger      *zap.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
	Credentials       booking.CredentialProvider
	Logger            *zap.Logger
}

// New builds a Client. Requests are paced client-side so a misbehaving caller
// cannot hammer the shared backend.
func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerMinute == 0 {
		opts.RequestsPerMinute = 100
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		BaseURL:     opts.BaseURL,
		HTTPClient:  &http.Client{Timeout: opts.Timeout},
		Credentials: opts.Credentials,
		Limiter:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), opts.RequestsPerMinute),
		Logger:      opts.Logger,
	}
}

// remoteMessage is the error body shape the backend uses for non-2xx replies.
type remoteMessage struct {
	Message string `json:"message"`
}

// do performs one JSON request. Non-2xx responses map to the flow error
// taxonomy: 404 to NotFound, everything else to RemoteFailure carrying the
// server's message verbatim when it sent one.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	if err := c.Limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		token, err := c.Credentials.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return booking.NewRemoteError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var remote remoteMessage
		_ = json.NewDecoder(resp.Body).Decode(&remote)
		c.Logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", remote.Message),
		)
		if resp.StatusCode == http.StatusNotFound {
			if remote.Message == "" {
				remote.Message = "resource not found"
			}
			return booking.NewNotFoundError(remote.Message)
		}
		return booking.NewRemoteError(remote.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// FetchOffering retrieves one catalog record, e.g. GET /venues/{id}.
func (c *Client) FetchOffering(ctx context.Context, t models.ServiceType, id int) (*models.Offering, error) {
	desc, ok := booking.DescriptorFor(t)
	if !ok {
		return nil, booking.NewValidationError(fmt.Sprintf("unknown service type %q", t))
	}
	var envelope struct {
		Data models.Offering `json:"data"`
	}
	path := fmt.Sprintf("/%s/%d", desc.CatalogPath, id)
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope, true); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// FetchBooking retrieves one booking detail envelope.
func (c *Client) FetchBooking(ctx context.Context, t models.ServiceType, id int) (*models.BookingDetail, error) {
	var detail models.BookingDetail
	path := fmt.Sprintf("/bookings/%s/%d", t, id)
	if err := c.do(ctx, http.MethodGet, path, nil, &detail, true); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateBooking posts a new booking of the given type.
func (c *Client) CreateBooking(ctx context.Context, t models.ServiceType, payload any) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%s", t), payload, nil, true)
}

// UpdateBooking replaces an existing booking's details.
func (c *Client) UpdateBooking(ctx context.Context, t models.ServiceType, id int, payload any) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/%s/%d", t, id), payload, nil, true)
}

// DeleteBooking cancels a booking.
func (c *Client) DeleteBooking(ctx context.Context, t models.ServiceType, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%s/%d", t, id), nil, nil, true)
}

// FetchBookings retrieves the authenticated user's booking overview.
func (c *Client) FetchBookings(ctx context.Context) ([]models.BookingSummary, error) {
	var envelope struct {
		Bookings []models.BookingSummary `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, "/appUser/bookings", nil, &envelope, true); err != nil {
		return nil, err
	}
	return envelope.Bookings, nil
}

// SubmitRating rates a fulfilled booking.
func (c *Client) SubmitRating(ctx context.Context, req models.RatingRequest) error {
	return c.do(ctx, http.MethodPost, "/ratings", req, nil, true)
}

// Login exchanges credentials for a bearer token and user profile. It is the
// one unauthenticated call the client makes.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &auth, false); err != nil {
		return nil, err
	}
	return &auth, nil
}

var (
	_ booking.CatalogAPI = (*Client)(nil)
	_ booking.BookingAPI = (*Client)(nil)
	_ booking.RatingAPI  = (*Client)(nil)
)
