// Package mesmock 在内存里模拟 SECOM MES 的操作员只读接口，
// 用于客户端的单元测试和智能体的本地调试，不是真正的 MES 服务端。
package mesmock

import (
	"github.com/sysu-ecnc-dev/secom-mes-client/domain"
)

// Dataset 是模拟服务端持有的全部数据，构造之后不再修改。
type Dataset struct {
	Operators      []domain.Operator
	LotsByOperator map[int64][]domain.Lot
}

func (d *Dataset) OperatorByID(operatorID int64) (*domain.Operator, bool) {
	for i := range d.Operators {
		if d.Operators[i].OperatorID == operatorID {
			return &d.Operators[i], true
		}
	}
	return nil, false
}

func (d *Dataset) OperatorByCode(code string) (*domain.Operator, bool) {
	for i := range d.Operators {
		if d.Operators[i].OperatorCode == code {
			return &d.Operators[i], true
		}
	}
	return nil, false
}

func (d *Dataset) OperatorsByDepartment(department string) []domain.Operator {
	operators := []domain.Operator{}
	for _, operator := range d.Operators {
		if operator.Department == department {
			operators = append(operators, operator)
		}
	}
	return operators
}

func (d *Dataset) OperatorLots(operatorID int64) []domain.Lot {
	lots := d.LotsByOperator[operatorID]
	if lots == nil {
		lots = []domain.Lot{}
	}
	return lots
}
