package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// ErrDecode is wrapped by every failure to decode a response body into the requested target.
var ErrDecode = errors.New("failed to decode response body")

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// FormFile is a multipart/form-data request body with a single file part and optional plain fields.
type FormFile struct {
	FieldName string
	FileName  string
	Content   []byte
	Fields    map[string]string
}

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// WrapTransport decorates the pooled transport, e.g. to sign requests.
	WrapTransport func(base http.RoundTripper) http.RoundTripper
	// Logger receives request and response events. Nil disables logging.
	Logger HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}
	if opts.WrapTransport != nil {
		transport = opts.WrapTransport(transport)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends an HTTP request with the given method, path, query parameters, headers, body, success response, and error response.
// It returns the success response, error response, status code, and error if any. Non-2xx answers
// produce a *StatusError; the error response is filled when the body can be decoded into it.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	url := hc.buildURL(path)
	if len(queryParams) > 0 {
		url += "?" + buildQueryString(queryParams)
	}

	bodyReader, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(method, url, headers, describeBody(body))
	}
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, url, headers, describeBody(body), 0, "", time.Since(start).Milliseconds(), err)
		}
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}
	latency := time.Since(start).Milliseconds()

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, url, headers, describeBody(body), resp.StatusCode, describeResponse(respContentType, bodyBytes), latency)
		}
		if successResp != nil {
			if err := hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("%w: %w", ErrDecode, err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	if hc.logger != nil {
		hc.logger.LogResponseError(method, url, headers, describeBody(body), resp.StatusCode, describeResponse(respContentType, bodyBytes), latency, statusErr)
	}

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	if errorResp != nil && hc.unmarshalResponse(bodyBytes, respContentType, errorResp) == nil {
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// encodeBody prepares the request body and its content type.
func (hc *Client) encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return bytes.NewBufferString(body), "text/plain", nil
	case []byte:
		return bytes.NewBuffer(body), "application/octet-stream", nil
	case FormFile:
		return encodeMultipart(body)
	case *FormFile:
		return encodeMultipart(*body)
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return bytes.NewBuffer(xmlBody), "application/xml", nil
	case "text/plain":
		return bytes.NewBufferString(fmt.Sprintf("%v", body)), "text/plain", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return bytes.NewBuffer(jsonBody), "application/json", nil
	}
}

// encodeMultipart writes the plain fields first, then the file part.
func encodeMultipart(form FormFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write multipart field %s: %w", name, err)
		}
	}

	fileName := form.FileName
	if fileName == "" {
		fileName = form.FieldName
	}
	part, err := writer.CreateFormFile(form.FieldName, fileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart file part: %w", err)
	}
	if _, err := part.Write(form.Content); err != nil {
		return nil, "", fmt.Errorf("failed to write multipart file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// unmarshalResponse unmarshals response body based on content type. Raw targets (*[]byte) always
// receive the body as is.
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	if bytePtr, ok := target.(*[]byte); ok {
		*bytePtr = bodyBytes
		return nil
	}

	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return strings.TrimRight(hc.baseURL, "/") + path
}

// buildQueryString builds an escaped query string from parameters, sorted by key
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

func describeBody(body any) string {
	switch body := body.(type) {
	case nil:
		return ""
	case string:
		return body
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(body))
	case FormFile:
		return fmt.Sprintf("<multipart %s: %d bytes>", body.FieldName, len(body.Content))
	case *FormFile:
		return fmt.Sprintf("<multipart %s: %d bytes>", body.FieldName, len(body.Content))
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Sprintf("%v", body)
		}
		return string(jsonBody)
	}
}

func describeResponse(contentType string, body []byte) string {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if strings.HasPrefix(mainContentType, "image/") || mainContentType == "application/octet-stream" {
		return fmt.Sprintf("<%d bytes>", len(body))
	}
	return string(body)
}
