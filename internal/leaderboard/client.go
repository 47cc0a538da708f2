package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single leaderboard request.
const DefaultTimeout = 5 * time.Second

// result is what a background request hands back to the frame loop.
type result struct {
	id     string
	top    []Entry
	submit *SubmitResponse
	err    string
}

// request is one in-flight call. Its channel holds exactly one result so the
// worker never blocks, even after the client stopped listening.
type request struct {
	id     string
	ch     chan result
	cancel context.CancelFunc
}

// Client talks to the leaderboard server without blocking the caller.
//
// Requests run on their own goroutine and report through a single-slot
// channel that Poll drains once per frame. Starting a new fetch abandons the
// previous one: its result is never observed. Failures are terminal until the
// caller asks again; nothing is retried.
//
// Client is not safe for concurrent use; it belongs to the frame loop.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *log.Logger
	nickname string

	state State
	top   []Entry
	err   string
	fetch *request

	submitState State
	submitted   *SubmitResponse
	submitErr   string
	submit      *request
}

// NewClient creates a client for the given endpoint. A zero timeout uses
// DefaultTimeout; a nil logger discards output.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SetNickname sanitizes and stores the player's nickname.
func (c *Client) SetNickname(name string) { c.nickname = SanitizeName(name) }

// Nickname returns the sanitized nickname.
func (c *Client) Nickname() string { return c.nickname }

// NameAvailable reports whether the nickname is long enough to submit.
func (c *Client) NameAvailable() bool { return ValidName(c.nickname) }

func (c *Client) State() State    { return c.state }
func (c *Client) Top() []Entry    { return c.top }
func (c *Client) Err() string     { return c.err }
func (c *Client) Pending() bool   { return c.fetch != nil }
func (c *Client) BaseURL() string { return c.baseURL }

// SubmitState reports the last submission's lifecycle.
func (c *Client) SubmitState() State { return c.submitState }

// Submitted returns the server's answer to the last successful submission.
func (c *Client) Submitted() *SubmitResponse { return c.submitted }

// SubmitErr returns the failure message of the last submission.
func (c *Client) SubmitErr() string { return c.submitErr }

// ResetSubmit forgets the outcome of a finished submission so a new round
// starts from StateIdle. An in-flight submission is left alone.
func (c *Client) ResetSubmit() {
	if c.submit != nil {
		return
	}
	c.submitState = StateIdle
	c.submitted = nil
	c.submitErr = ""
}

// FetchTop starts loading the top list and returns the request id.
// Any fetch still in flight is cancelled and its result dropped.
func (c *Client) FetchTop() string {
	if c.fetch != nil {
		c.fetch.cancel()
	}
	req := c.start(func(ctx context.Context, id string) result {
		return c.getTop(ctx, id)
	})
	c.fetch = req
	c.state = StateLoading
	c.err = ""
	return req.id
}

// Submit posts score under the current nickname.
func (c *Client) Submit(score uint32) (string, error) {
	if !c.NameAvailable() {
		return "", ErrNameTooShort
	}
	if c.submit != nil {
		return "", ErrBusy
	}
	body := SubmitRequest{Name: c.nickname, Score: score}
	req := c.start(func(ctx context.Context, id string) result {
		return c.postScore(ctx, id, body)
	})
	c.submit = req
	c.submitState = StateLoading
	c.submitted = nil
	c.submitErr = ""
	return req.id, nil
}

// Poll collects finished requests without blocking and returns the fetch state.
func (c *Client) Poll() State {
	if c.fetch != nil {
		select {
		case r := <-c.fetch.ch:
			c.fetch = nil
			if r.err != "" {
				c.state = StateError
				c.err = r.err
				c.logger.Warn("leaderboard fetch failed", "request", r.id, "error", r.err)
			} else {
				c.state = StateReady
				c.top = r.top
			}
		default:
		}
	}
	if c.submit != nil {
		select {
		case r := <-c.submit.ch:
			c.submit = nil
			if r.err != "" {
				c.submitState = StateError
				c.submitErr = r.err
				c.logger.Warn("leaderboard submit failed", "request", r.id, "error", r.err)
			} else {
				c.submitState = StateReady
				c.submitted = r.submit
			}
		default:
		}
	}
	return c.state
}

// Close cancels every in-flight request.
func (c *Client) Close() {
	if c.fetch != nil {
		c.fetch.cancel()
		c.fetch = nil
	}
	if c.submit != nil {
		c.submit.cancel()
		c.submit = nil
	}
}

func (c *Client) start(run func(ctx context.Context, id string) result) *request {
	ctx, cancel := context.WithCancel(context.Background())
	req := &request{
		id:     uuid.NewString(),
		ch:     make(chan result, 1),
		cancel: cancel,
	}
	go func() {
		defer cancel()
		req.ch <- run(ctx, req.id)
	}()
	return req
}

func (c *Client) topURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("action", "top")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) getTop(ctx context.Context, id string) result {
	target, err := c.topURL()
	if err != nil {
		return result{id: id, err: fmt.Sprintf("Request error: %v", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return result{id: id, err: fmt.Sprintf("Request error: %v", err)}
	}
	req.Header.Set("X-Request-ID", id)

	text, fail := c.do(req)
	if fail != "" {
		return result{id: id, err: fail}
	}

	var parsed TopResponse
	if err := json.Unmarshal(text, &parsed); err != nil {
		return result{id: id, err: fmt.Sprintf("Bad JSON: %v. Body: %s", err, text)}
	}
	if !parsed.OK {
		return result{id: id, err: serverError(parsed.Error)}
	}
	if parsed.Top == nil {
		parsed.Top = []Entry{}
	}
	return result{id: id, top: parsed.Top}
}

func (c *Client) postScore(ctx context.Context, id string, body SubmitRequest) result {
	payload, err := json.Marshal(body)
	if err != nil {
		return result{id: id, err: fmt.Sprintf("Request error: %v", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return result{id: id, err: fmt.Sprintf("Request error: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", id)

	text, fail := c.do(req)
	if fail != "" {
		return result{id: id, err: fail}
	}

	var parsed SubmitResponse
	if err := json.Unmarshal(text, &parsed); err != nil {
		return result{id: id, err: fmt.Sprintf("Bad JSON: %v. Body: %s", err, text)}
	}
	if !parsed.OK {
		return result{id: id, err: serverError(parsed.Error)}
	}
	return result{id: id, submit: &parsed}
}

// do sends req and returns the body of a 2xx response, or a display message.
func (c *Client) do(req *http.Request) ([]byte, string) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Sprintf("Request error: %v", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Sprintf("Request error: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Sprintf("HTTP %s: %s", resp.Status, strings.TrimSpace(string(text)))
	}
	return text, ""
}

func serverError(msg string) string {
	if msg == "" {
		return "Server error"
	}
	return msg
}
