package garmin

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

var (
	csrfRe   = regexp.MustCompile(`name="_csrf"\s+value="([^"]+)"`)
	ticketRe = regexp.MustCompile(`ticket=([^"&\\]+)`)
)

// Login runs the Garmin SSO flow: fetch the signin page for a CSRF token,
// post the credentials, extract the service ticket, exchange it against the
// Connect host for session cookies, then resolve the account display name
// (path segment of several wellness endpoints).
func (c *Client) Login(ctx context.Context) error {
	signinURL := c.ssoBaseURL + "/sso/signin"
	ssoParams := map[string]string{
		"service":   c.connectBaseURL + "/modern",
		"embed":     "false",
		"gauthHost": c.ssoBaseURL + "/sso",
	}

	resp, err := c.http.R().SetContext(ctx).SetQueryParams(ssoParams).Get(signinURL)
	if cerr := classify("sso signin page", resp, err); cerr != nil {
		return cerr
	}
	m := csrfRe.FindSubmatch(resp.Body())
	if m == nil {
		return &AuthError{Reason: "no CSRF token on signin page, login flow changed"}
	}

	resp, err = c.http.R().SetContext(ctx).
		SetQueryParams(ssoParams).
		SetHeader("Referer", signinURL).
		SetFormData(map[string]string{
			"username": c.email,
			"password": c.password,
			"embed":    "false",
			"_csrf":    string(m[1]),
		}).
		Post(signinURL)
	if err != nil {
		return &TransportError{Op: "sso signin", Err: err}
	}
	if resp.StatusCode() == http.StatusTooManyRequests {
		return &RateLimitError{Op: "sso signin", RetryAfter: parseRetryAfter(resp)}
	}
	body := string(resp.Body())
	switch {
	case resp.StatusCode() == http.StatusForbidden:
		return &AuthError{Reason: "signin rejected (CSRF or bot detection)"}
	case strings.Contains(body, `sendEvent('FAIL')`):
		return &AuthError{Reason: "invalid credentials"}
	case strings.Contains(body, `sendEvent('ACCOUNT_LOCKED')`):
		return &AuthError{Reason: "account locked"}
	case strings.Contains(body, "MFA"):
		return &AuthError{Reason: "verification challenge required, cannot proceed unattended"}
	}
	tm := ticketRe.FindStringSubmatch(body)
	if tm == nil {
		return &AuthError{Reason: "no service ticket in signin response, login flow changed"}
	}

	resp, err = c.http.R().SetContext(ctx).
		SetQueryParam("ticket", tm[1]).
		Get(c.connectBaseURL + "/modern")
	if cerr := classify("ticket exchange", resp, err); cerr != nil {
		return cerr
	}

	var prof socialProfile
	if err := c.getJSON(ctx, "social profile", c.connectBaseURL+"/userprofile-service/socialProfile", nil, &prof); err != nil {
		return err
	}
	if prof.DisplayName == "" {
		return &AuthError{Reason: "session established but no display name on profile"}
	}
	c.displayName = prof.DisplayName
	c.loggedIn = true
	slog.Info("garmin login ok", "display_name", prof.DisplayName)
	return nil
}
