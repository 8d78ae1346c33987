// Package client 提供 SECOM MES 操作员 REST API 的只读 Go 客户端，
// 供 AI 智能体调用。每个方法只发出一次 HTTP 请求，不做重试和缓存。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// DefaultBaseURL 是 SECOM MES API 的默认地址。
const DefaultBaseURL = "http://localhost:8080/api/v1"

// DefaultTimeout 是单次请求的默认超时时间。
const DefaultTimeout = 30 * time.Second

// Client 是操作员 API 的客户端。基础地址和超时在构造时确定一次，
// 所有方法共用，不再通过参数层层传递。
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	validate   *validator.Validate
	translator ut.Translator
}

type Option func(*Client)

// WithTimeout 覆盖默认的单次请求超时时间。
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient 覆盖底层使用的 http.Client。
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger 为客户端指定 logger，不指定则不输出日志。
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient 创建一个客户端，baseURL 为空时使用 DefaultBaseURL。
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:   validate,
		translator: trans,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// request 发出一次 HTTP 请求并返回原始响应体。
// endpoint 是不带参数值的路由模式（例如 /operators/{id}），只用于日志和指标，
// path 才是实际请求的路径。响应状态码不是 2xx 时返回 *StatusError。
func (c *Client) request(ctx context.Context, method string, endpoint string, path string, jsonBody any, params url.Values) ([]byte, error) {
	var body io.Reader
	if jsonBody != nil {
		encoded, err := json.Marshal(jsonBody)
		if err != nil {
			return nil, fmt.Errorf("无法序列化请求体: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("无法创建请求: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		observeRequest(endpoint, "error", duration)
		c.logger.Warn("请求失败", "method", method, "endpoint", endpoint, "error", err)
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	observeRequest(endpoint, statusClass(resp.StatusCode), duration)
	c.logger.Debug("已发出请求", "method", method, "endpoint", endpoint, "status", resp.StatusCode, "duration", duration)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
		}
	}

	return raw, nil
}

// get 是 request 的 GET 简写，直接把响应体解析到 v 中。
func (c *Client) get(ctx context.Context, endpoint string, path string, v any) error {
	raw, err := c.request(ctx, http.MethodGet, endpoint, path, nil, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("解析响应体失败: %w", err)
	}
	return nil
}

// validateRecord 在反序列化边界上校验单条记录，而不是直接信任服务端的结构。
func (c *Client) validateRecord(v any) error {
	if err := c.validate.Struct(v); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		return fmt.Errorf("响应不符合约定的结构: %s", validationErrors[0].Translate(c.translator))
	}
	return nil
}
