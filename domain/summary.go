package domain

import (
	"time"
)

// OperatorSummary 是客户端这边拼出来的复合记录，不对应任何单一的远端接口，
// 方便智能体一次拿到操作员档案和其生产历史。
type OperatorSummary struct {
	Operator           *Operator `json:"operator"`
	Lots               []Lot     `json:"lots"`
	TotalLots          int       `json:"totalLots"`
	Departments        []string  `json:"departments"`
	SummaryGeneratedAt time.Time `json:"summaryGeneratedAt"`
}
