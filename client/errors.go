package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound 表示单条记录查询返回了 404。
// 可以配合 errors.Is 判断任何来自本客户端的错误。
var ErrNotFound = errors.New("记录不存在")

// StatusError 表示服务端返回了非 2xx 的状态码。
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("请求 %s %s 返回了非预期的状态码 %d", e.Method, e.Path, e.StatusCode)
}

// Is 使 404 的 StatusError 能匹配 ErrNotFound。
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// TransportError 表示请求在传输层就失败了（连接被拒绝、超时等），
// 根本没有拿到 HTTP 响应。
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("请求 %s %s 失败: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
