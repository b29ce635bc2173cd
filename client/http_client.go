package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paologalligit/moffi-booker/constant"
	"github.com/paologalligit/moffi-booker/entities"
	"github.com/paologalligit/moffi-booker/header"
)

// BookingAPI is the typed surface of the remote booking service.
type BookingAPI interface {
	SignIn(ctx context.Context, creds entities.Credentials) (string, error)
	ListBuildings(ctx context.Context, token string) ([]entities.BuildingItem, error)
	GetBuildingDetail(ctx context.Context, token, buildingId string) (*entities.BuildingDetail, error)
	GetWorkspaceAvailability(ctx context.Context, token, buildingId string, level int, startDate, endDate time.Time) ([]entities.AvailabilityItem, error)
	SubmitOrder(ctx context.Context, token string, order entities.Order) (*entities.OrderResult, error)
}

// MoffiClient implements BookingAPI over HTTP/JSON. Every request goes through
// the cookie manager: stored cookies are attached on the way out, Set-Cookie
// values are absorbed and persisted on the way back.
type MoffiClient struct {
	client  *http.Client
	baseURL *url.URL
	cookies *header.CookiesManager
}

func New(cookies *header.CookiesManager) (*MoffiClient, error) {
	return NewWithBaseURL(constant.BASE_URL, cookies)
}

func NewWithBaseURL(baseURL string, cookies *header.CookiesManager) (*MoffiClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	return &MoffiClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: u,
		cookies: cookies,
	}, nil
}

// SignIn posts the credentials and reads the token field. Any failure here is
// an AuthError: the workflow cannot proceed without a token.
func (c *MoffiClient) SignIn(ctx context.Context, creds entities.Credentials) (string, error) {
	if creds.Captcha == "" {
		creds.Captcha = constant.CAPTCHA_NOT_PROVIDED
	}
	body, status, err := c.do(ctx, http.MethodPost, c.baseURL.JoinPath(constant.SIGNIN_PATH), "", creds)
	if err != nil {
		return "", &AuthError{Reason: "signin call failed", Err: err}
	}
	if status < 200 || status >= 300 {
		return "", &AuthError{Reason: fmt.Sprintf("signin rejected with status %d", status)}
	}
	var resp entities.SignInResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &AuthError{Reason: "malformed signin response", Err: err}
	}
	if resp.Token == "" {
		return "", &AuthError{Reason: "token missing from signin response"}
	}
	return resp.Token, nil
}

func (c *MoffiClient) ListBuildings(ctx context.Context, token string) ([]entities.BuildingItem, error) {
	body, err := c.doGet(ctx, "buildings", c.baseURL.JoinPath(constant.BUILDINGS_PATH), token)
	if err != nil {
		return nil, err
	}
	var items []entities.BuildingItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &ParseError{Op: "buildings", Err: err}
	}
	return items, nil
}

func (c *MoffiClient) GetBuildingDetail(ctx context.Context, token, buildingId string) (*entities.BuildingDetail, error) {
	body, err := c.doGet(ctx, "building detail", c.baseURL.JoinPath(constant.BUILDING_PATH, buildingId), token)
	if err != nil {
		return nil, err
	}
	var detail entities.BuildingDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, &ParseError{Op: "building detail", Err: err}
	}
	return &detail, nil
}

func (c *MoffiClient) GetWorkspaceAvailability(ctx context.Context, token, buildingId string, level int, startDate, endDate time.Time) ([]entities.AvailabilityItem, error) {
	if startDate.IsZero() {
		startDate = time.Now()
	}
	if endDate.IsZero() {
		endDate = startDate
	}
	u := c.baseURL.JoinPath(constant.AVAILABILITIES_PATH)
	q := url.Values{}
	q.Set("buildingId", buildingId)
	q.Set("startDate", startDate.Format(constant.AVAILABILITY_FORMAT))
	q.Set("endDate", endDate.Format(constant.AVAILABILITY_FORMAT))
	q.Set("places", constant.PLACES)
	q.Set("period", constant.PERIOD)
	q.Set("floor", strconv.Itoa(level))
	u.RawQuery = q.Encode()

	body, err := c.doGet(ctx, "availabilities", u, token)
	if err != nil {
		return nil, err
	}
	var items []entities.AvailabilityItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &ParseError{Op: "availabilities", Err: err}
	}
	return items, nil
}

// SubmitOrder posts the order and returns whatever body came back, success or
// not. Only a transport failure is an error; a non-2xx status is a business
// rejection the caller must interpret.
func (c *MoffiClient) SubmitOrder(ctx context.Context, token string, order entities.Order) (*entities.OrderResult, error) {
	body, status, err := c.do(ctx, http.MethodPost, c.baseURL.JoinPath(constant.ORDER_PATH), token, order)
	if err != nil {
		return nil, err
	}
	return &entities.OrderResult{StatusCode: status, Body: body}, nil
}

// doGet is the helper for the authenticated GET endpoints; an unexpected
// status is reported as a transport-level failure since these endpoints carry
// no business meaning in their error bodies.
func (c *MoffiClient) doGet(ctx context.Context, op string, u *url.URL, token string) ([]byte, error) {
	body, status, err := c.do(ctx, http.MethodGet, u, token, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", status)}
	}
	return body, nil
}

func (c *MoffiClient) do(ctx context.Context, method string, u *url.URL, token string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, 0, &TransportError{Op: method + " " + u.Path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.cookies != nil {
		c.cookies.Apply(req)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Op: method + " " + u.Path, Err: err}
	}
	defer resp.Body.Close()
	if c.cookies != nil {
		if err := c.cookies.Absorb(ctx, resp); err != nil {
			return nil, 0, err
		}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &TransportError{Op: method + " " + u.Path, Err: err}
	}
	return body, resp.StatusCode, nil
}
