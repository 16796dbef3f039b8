package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ultraupload/ultraupload/internal/client/models"
	"github.com/ultraupload/ultraupload/internal/common"
	"github.com/ultraupload/ultraupload/internal/logging"
)

// authResponse is the body of both endpoints.
type authResponse struct {
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
	Message string       `json:"message"`
	Code    string       `json:"code"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HTTPClient talks to the backend over HTTP/JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
	requestID  func() string
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the default *http.Client. The client's own
// timeout, if any, is the only timeout applied to requests.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.httpClient = c }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// WithRequestIDFunc sets the generator of X-Request-ID values.
func WithRequestIDFunc(fn func() string) Option {
	return func(h *HTTPClient) { h.requestID = fn }
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "https://api.example.com/api").
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logging.Nop(),
		requestID:  uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Login authenticates with email and password. When the server omits the
// user record, a placeholder built from email is returned instead.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (Result, error) {
	resp, err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, msgLoginFailed, false)
	if err != nil {
		return Result{}, err
	}

	user := placeholderLoginUser(email)
	if resp.User != nil && resp.User.Valid() {
		user = *resp.User
	}
	return Result{Token: resp.Token, User: user}, nil
}

// Register creates an account. When the server omits the user record, a
// placeholder built from req is returned instead.
func (c *HTTPClient) Register(ctx context.Context, req models.RegistrationRequest) (Result, error) {
	resp, err := c.post(ctx, "/register", req, msgRegisterFailed, true)
	if err != nil {
		return Result{}, err
	}

	user := placeholderRegisteredUser(req)
	if resp.User != nil && resp.User.Valid() {
		user = *resp.User
	}
	return Result{Token: resp.Token, User: user}, nil
}

// post sends body to path and decodes the auth response. defaultMsg is used
// when a rejection carries no message; detectDuplicate enables duplicate
// account classification.
func (c *HTTPClient) post(ctx context.Context, path string, body any, defaultMsg string, detectDuplicate bool) (*authResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: msgConnection, Err: fmt.Errorf("encode request: %w", err)}
	}

	reqID := c.requestID()
	log := c.log.With("path", path, "request_id", reqID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: msgConnection, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)

	log.Debug(ctx, "api request")

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "api transport failure", "error", err)
		return nil, &Error{Kind: KindTransport, Message: msgConnection, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: msgConnection, Status: res.StatusCode, Err: err}
	}

	log.Debug(ctx, "api response", "status", res.StatusCode)

	// A body that is not JSON (an HTML error page from a proxy, say) is a
	// transport failure whatever the status.
	var out authResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &Error{Kind: KindTransport, Message: msgConnection, Status: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := out.Message
		if msg == "" {
			msg = defaultMsg
		}
		kind := KindRejected
		if detectDuplicate && (out.Code == DuplicateCode || res.StatusCode == http.StatusConflict || isDuplicateMessage(out.Message)) {
			kind = KindDuplicate
		}
		return nil, &Error{Kind: kind, Message: msg, Status: res.StatusCode}
	}

	if out.Token == "" {
		return nil, &Error{Kind: KindMissingToken, Message: msgMissingToken, Status: res.StatusCode}
	}

	return &out, nil
}
