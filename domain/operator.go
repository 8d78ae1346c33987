// Package domain 定义从 SECOM MES 操作员 API 中镜像出来的实体。
// 这些记录全部来自远端响应，本地不会构造，也不维护任何跨实体引用。
package domain

// 操作员所属部门，与 SECOM 数据库中的取值保持一致
const (
	DepartmentProduction  = "Production"
	DepartmentQuality     = "Quality"
	DepartmentMaintenance = "Maintenance"
	DepartmentEngineering = "Engineering"
)

const (
	OperatorStatusActive   = "Active"
	OperatorStatusInactive = "Inactive"
)

// Operator 是一名生产操作员的档案记录。
// 日期字段是 YYYY-MM-DD 格式的字符串，时间戳字段是 ISO-8601 格式的字符串，
// 与远端 API 的返回格式保持一致。
type Operator struct {
	OperatorID     int64  `json:"operatorId" validate:"required"`
	OperatorCode   string `json:"operatorCode"`
	OperatorName   string `json:"operatorName"`
	EmployeeNumber string `json:"employeeNumber"`
	Department     string `json:"department"`
	HireDate       string `json:"hireDate"`
	Email          string `json:"email" validate:"omitempty,email"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
