package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sysu-ecnc-dev/secom-mes-client/domain"
)

// GetOperatorByID 根据 ID 获取单个操作员，不存在时返回能匹配 ErrNotFound 的错误。
func (c *Client) GetOperatorByID(ctx context.Context, operatorID int64) (*domain.Operator, error) {
	operator := &domain.Operator{}
	if err := c.get(ctx, "/operators/{id}", fmt.Sprintf("/operators/%d", operatorID), operator); err != nil {
		return nil, err
	}
	if err := c.validateRecord(operator); err != nil {
		return nil, err
	}
	return operator, nil
}

// GetAllOperators 获取所有操作员。
func (c *Client) GetAllOperators(ctx context.Context) ([]domain.Operator, error) {
	operators := []domain.Operator{}
	if err := c.get(ctx, "/operators", "/operators", &operators); err != nil {
		return nil, err
	}
	for i := range operators {
		if err := c.validateRecord(&operators[i]); err != nil {
			return nil, fmt.Errorf("第 %d 条记录无效: %w", i+1, err)
		}
	}
	return operators, nil
}

// GetOperatorLots 获取某个操作员经手的所有生产批次，
// 批次中内嵌产品型号、设备和班次信息。
func (c *Client) GetOperatorLots(ctx context.Context, operatorID int64) ([]domain.Lot, error) {
	lots := []domain.Lot{}
	if err := c.get(ctx, "/operators/{id}/lots", fmt.Sprintf("/operators/%d/lots", operatorID), &lots); err != nil {
		return nil, err
	}
	for i := range lots {
		if err := c.validateRecord(&lots[i]); err != nil {
			return nil, fmt.Errorf("第 %d 条记录无效: %w", i+1, err)
		}
	}
	return lots, nil
}

// GetOperatorsByDepartment 获取某个部门下的所有操作员。
// 部门下没有操作员时，服务端可能返回 404。
func (c *Client) GetOperatorsByDepartment(ctx context.Context, department string) ([]domain.Operator, error) {
	operators := []domain.Operator{}
	if err := c.get(ctx, "/operators/department/{department}", "/operators/department/"+url.PathEscape(department), &operators); err != nil {
		return nil, err
	}
	for i := range operators {
		if err := c.validateRecord(&operators[i]); err != nil {
			return nil, fmt.Errorf("第 %d 条记录无效: %w", i+1, err)
		}
	}
	return operators, nil
}

// GetOperatorByCode 根据操作员编号（业务标识，例如 OP001）获取单个操作员。
func (c *Client) GetOperatorByCode(ctx context.Context, code string) (*domain.Operator, error) {
	operator := &domain.Operator{}
	if err := c.get(ctx, "/operators/code/{code}", "/operators/code/"+url.PathEscape(code), operator); err != nil {
		return nil, err
	}
	if err := c.validateRecord(operator); err != nil {
		return nil, err
	}
	return operator, nil
}
