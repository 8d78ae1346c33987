package client

import (
	"context"
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/secom-mes-client/domain"
)

// GetOperatorSummary 把操作员档案和其生产历史拼成一份汇总。
// 两次请求依次发出，任何一次失败都会让整个调用失败。
func (c *Client) GetOperatorSummary(ctx context.Context, operatorID int64) (*domain.OperatorSummary, error) {
	operator, err := c.GetOperatorByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	lots, err := c.GetOperatorLots(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	return &domain.OperatorSummary{
		Operator:           operator,
		Lots:               lots,
		TotalLots:          len(lots),
		Departments:        []string{operator.Department},
		SummaryGeneratedAt: time.Now(),
	}, nil
}

// SearchOptions 是 SearchOperators 的过滤条件，零值字段表示不过滤。
type SearchOptions struct {
	Department string
	Status     string
}

// SearchOperators 按部门和状态过滤操作员。指定了部门时走部门接口，
// 否则拉取全量列表；状态过滤在客户端这边做，保持服务端返回的顺序。
func (c *Client) SearchOperators(ctx context.Context, opts SearchOptions) ([]domain.Operator, error) {
	var operators []domain.Operator
	var err error

	if opts.Department != "" {
		operators, err = c.GetOperatorsByDepartment(ctx, opts.Department)
	} else {
		operators, err = c.GetAllOperators(ctx)
	}
	if err != nil {
		return nil, err
	}

	if opts.Status == "" {
		return operators, nil
	}

	filtered := make([]domain.Operator, 0, len(operators))
	for _, operator := range operators {
		if operator.Status == opts.Status {
			filtered = append(filtered, operator)
		}
	}
	return filtered, nil
}

// LookupOutcome 标记 SafeGetOperator 的查询结果，
// 让调用方能区分“记录不存在”和“服务不可达”这两种缺席原因。
type LookupOutcome int

const (
	// LookupFound 查到了记录
	LookupFound LookupOutcome = iota
	// LookupNotFound 服务端明确返回了 404
	LookupNotFound
	// LookupUnreachable 请求在传输层就失败了（连接被拒绝、超时等）
	LookupUnreachable
)

// SafeGetOperator 是 GetOperatorByID 的容错版本：404 和传输层失败都不算错误，
// 而是通过 LookupOutcome 告知调用方。其余错误（非 404 的状态码、响应解析失败等）
// 仍然原样返回，此时应先检查 err 再使用 outcome。
func (c *Client) SafeGetOperator(ctx context.Context, operatorID int64) (*domain.Operator, LookupOutcome, error) {
	operator, err := c.GetOperatorByID(ctx, operatorID)
	if err == nil {
		return operator, LookupFound, nil
	}

	if errors.Is(err, ErrNotFound) {
		return nil, LookupNotFound, nil
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return nil, LookupUnreachable, nil
	}

	return nil, LookupUnreachable, err
}
