package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultSSOBaseURL     = "https://sso.garmin.com"
	defaultConnectBaseURL = "https://connect.garmin.com"

	// Browser-ish UA; the SSO endpoint rejects obvious bot agents.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	maxAttempts  = 3
	retryWaitMin = 2 * time.Second
	retryWaitMax = 30 * time.Second
)

// Client talks to the Garmin Connect private API. The SSO login establishes
// session cookies held in the resty cookie jar; every subsequent request
// rides on those cookies, so a single Client must not be shared across
// credential pairs.
type Client struct {
	http     *resty.Client
	email    string
	password string

	ssoBaseURL     string
	connectBaseURL string

	displayName string
	loggedIn    bool
}

// NewClient creates a Garmin client with bounded retry on transport errors,
// 429 and 5xx responses. timeoutSec caps each HTTP request.
func NewClient(email, password string, timeoutSec int) (*Client, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("garmin: email and password required")
	}
	r := resty.New().
		SetTimeout(time.Duration(timeoutSec) * time.Second).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(maxAttempts - 1).
		SetRetryWaitTime(retryWaitMin).
		SetRetryMaxWaitTime(retryWaitMax).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= 500
		})
	return &Client{
		http:           r,
		email:          email,
		password:       password,
		ssoBaseURL:     defaultSSOBaseURL,
		connectBaseURL: defaultConnectBaseURL,
	}, nil
}

// SetBaseURLs overrides the SSO and Connect hosts (tests).
func (c *Client) SetBaseURLs(sso, connect string) {
	c.ssoBaseURL = sso
	c.connectBaseURL = connect
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// classify maps a finished request to the error taxonomy. A nil return means
// the response is 200 OK.
func classify(op string, resp *resty.Response, err error) error {
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	switch {
	case resp.StatusCode() == http.StatusOK:
		return nil
	case resp.StatusCode() == http.StatusTooManyRequests:
		return &RateLimitError{Op: op, RetryAfter: parseRetryAfter(resp)}
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return &AuthError{Reason: fmt.Sprintf("%s answered status %d", op, resp.StatusCode())}
	default:
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
	}
}

func parseRetryAfter(resp *resty.Response) time.Duration {
	if v := resp.Header().Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}

// getJSON runs one GET (with the client retry policy) and decodes the body.
func (c *Client) getJSON(ctx context.Context, op, url string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx).SetHeader("NK", "NL")
	if query != nil {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(url)
	if cerr := classify(op, resp, err); cerr != nil {
		return cerr
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &SchemaError{Endpoint: op, Err: err}
	}
	return nil
}
