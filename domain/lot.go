package domain

// 批次状态，与 SECOM 数据库中的取值保持一致
const (
	LotStatusInProgress = "In Progress"
	LotStatusCompleted  = "Completed"
)

// ProductType 是一种产品型号及其目标良率。
type ProductType struct {
	ProductTypeID        int64   `json:"productTypeId" validate:"required"`
	ProductCode          string  `json:"productCode"`
	ProductName          string  `json:"productName"`
	ProductFamily        string  `json:"productFamily"`
	TargetYield          float64 `json:"targetYield" validate:"omitempty,gte=0,lte=100"`
	SpecificationVersion string  `json:"specificationVersion"`
	CreatedAt            string  `json:"createdAt"`
}

// Equipment 是一台产线设备。
type Equipment struct {
	EquipmentID   int64  `json:"equipmentId" validate:"required"`
	EquipmentCode string `json:"equipmentCode"`
	EquipmentName string `json:"equipmentName"`
	EquipmentType string `json:"equipmentType"`
	Location      string `json:"location"`
	Manufacturer  string `json:"manufacturer"`
	InstallDate   string `json:"installDate"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// Shift 是一个班次，开始和结束时间是 HH:MM:SS 格式的字符串。
type Shift struct {
	ShiftID     int64  `json:"shiftId" validate:"required"`
	ShiftCode   string `json:"shiftCode"`
	ShiftName   string `json:"shiftName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// Lot 是一个生产批次，内嵌的产品型号、设备、操作员和班次由服务端填充，
// 可能缺失，因此都是指针。
type Lot struct {
	LotID           int64        `json:"lotId" validate:"required"`
	LotNumber       string       `json:"lotNumber"`
	ProductType     *ProductType `json:"productType"`
	Equipment       *Equipment   `json:"equipment"`
	Operator        *Operator    `json:"operator"`
	Shift           *Shift       `json:"shift"`
	ProductionStart string       `json:"productionStart"`
	ProductionEnd   string       `json:"productionEnd"`
	WaferCount      int32        `json:"waferCount" validate:"gte=0"`
	Status          string       `json:"status"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt"`
}
