package mesmock

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/secom-mes-client/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "庆",
	"建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

var departments = []string{
	domain.DepartmentProduction,
	domain.DepartmentQuality,
	domain.DepartmentMaintenance,
	domain.DepartmentEngineering,
}

var digits = "0123456789"

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

// GenerateEmailFromChineseName 把中文姓名转成拼音再拼上随机数字，
// 模拟 SECOM 给操作员分配邮箱的方式。
func GenerateEmailFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	local := ""

	for _, p := range pinyinArray {
		local += p
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@secom.example.com"
}

func randomDate(startYear int, endYear int) string {
	start := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rand.Intn(days+1)).Format("2006-01-02")
}

func randomTimestamp() string {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(rand.Intn(365*24)) * time.Hour).Format(time.RFC3339)
}

// GenerateRandomOperator 生成一名随机操作员，编号由 operatorID 派生，保证唯一。
func GenerateRandomOperator(operatorID int64) domain.Operator {
	name := GenerateRandomChineseName()

	status := domain.OperatorStatusActive
	if rand.Intn(5) == 0 {
		status = domain.OperatorStatusInactive
	}

	return domain.Operator{
		OperatorID:     operatorID,
		OperatorCode:   fmt.Sprintf("OP%03d", operatorID),
		OperatorName:   name,
		EmployeeNumber: fmt.Sprintf("EMP%05d", 10000+operatorID),
		Department:     departments[rand.Intn(len(departments))],
		HireDate:       randomDate(2015, 2024),
		Email:          GenerateEmailFromChineseName(name),
		Status:         status,
		CreatedAt:      randomTimestamp(),
		UpdatedAt:      randomTimestamp(),
	}
}

// 固定的产品型号、设备和班次目录，批次从中随机引用
var productTypes = []domain.ProductType{
	{ProductTypeID: 1, ProductCode: "PT100", ProductName: "200mm Logic Wafer", ProductFamily: "Logic", TargetYield: 92.5, SpecificationVersion: "v2.1", CreatedAt: "2023-06-01T00:00:00Z"},
	{ProductTypeID: 2, ProductCode: "PT200", ProductName: "300mm Memory Wafer", ProductFamily: "Memory", TargetYield: 88.0, SpecificationVersion: "v1.4", CreatedAt: "2023-06-01T00:00:00Z"},
	{ProductTypeID: 3, ProductCode: "PT300", ProductName: "Power Device Wafer", ProductFamily: "Power", TargetYield: 95.0, SpecificationVersion: "v3.0", CreatedAt: "2023-06-01T00:00:00Z"},
}

var equipments = []domain.Equipment{
	{EquipmentID: 1, EquipmentCode: "EQ001", EquipmentName: "Stepper A", EquipmentType: "Lithography", Location: "Fab1-Bay3", Manufacturer: "ASML", InstallDate: "2019-03-15", Status: "Running", CreatedAt: "2023-06-01T00:00:00Z", UpdatedAt: "2023-06-01T00:00:00Z"},
	{EquipmentID: 2, EquipmentCode: "EQ002", EquipmentName: "Etcher B", EquipmentType: "Etching", Location: "Fab1-Bay5", Manufacturer: "Lam Research", InstallDate: "2020-07-20", Status: "Running", CreatedAt: "2023-06-01T00:00:00Z", UpdatedAt: "2023-06-01T00:00:00Z"},
	{EquipmentID: 3, EquipmentCode: "EQ003", EquipmentName: "Furnace C", EquipmentType: "Diffusion", Location: "Fab2-Bay1", Manufacturer: "TEL", InstallDate: "2018-11-02", Status: "Maintenance", CreatedAt: "2023-06-01T00:00:00Z", UpdatedAt: "2023-06-01T00:00:00Z"},
}

var shifts = []domain.Shift{
	{ShiftID: 1, ShiftCode: "DAY", ShiftName: "白班", StartTime: "08:00:00", EndTime: "16:00:00", Description: "日间班次", CreatedAt: "2023-06-01T00:00:00Z"},
	{ShiftID: 2, ShiftCode: "SWING", ShiftName: "中班", StartTime: "16:00:00", EndTime: "00:00:00", Description: "傍晚班次", CreatedAt: "2023-06-01T00:00:00Z"},
	{ShiftID: 3, ShiftCode: "NIGHT", ShiftName: "夜班", StartTime: "00:00:00", EndTime: "08:00:00", Description: "夜间班次", CreatedAt: "2023-06-01T00:00:00Z"},
}

// GenerateRandomLot 为指定操作员生成一个随机批次。
func GenerateRandomLot(lotID int64, operator *domain.Operator) domain.Lot {
	productType := productTypes[rand.Intn(len(productTypes))]
	equipment := equipments[rand.Intn(len(equipments))]
	shift := shifts[rand.Intn(len(shifts))]

	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(rand.Intn(300*24)) * time.Hour)
	end := start.Add(time.Duration(rand.Intn(12)+1) * time.Hour)

	status := domain.LotStatusCompleted
	if rand.Intn(4) == 0 {
		status = domain.LotStatusInProgress
	}

	return domain.Lot{
		LotID:           lotID,
		LotNumber:       fmt.Sprintf("LOT%04d", lotID),
		ProductType:     &productType,
		Equipment:       &equipment,
		Operator:        operator,
		Shift:           &shift,
		ProductionStart: start.Format(time.RFC3339),
		ProductionEnd:   end.Format(time.RFC3339),
		WaferCount:      int32(rand.Intn(25) + 1),
		Status:          status,
		CreatedAt:       start.Format(time.RFC3339),
		UpdatedAt:       end.Format(time.RFC3339),
	}
}

// GenerateRandomDataset 生成一份完整的随机数据集。
// 每名操作员名下有 0 到 maxLotsPerOperator 个批次。
func GenerateRandomDataset(operatorCount int, maxLotsPerOperator int) *Dataset {
	dataset := &Dataset{
		Operators:      make([]domain.Operator, 0, operatorCount),
		LotsByOperator: make(map[int64][]domain.Lot),
	}

	var nextLotID int64 = 1
	for i := 0; i < operatorCount; i++ {
		operator := GenerateRandomOperator(int64(i + 1))
		dataset.Operators = append(dataset.Operators, operator)

		lots := []domain.Lot{}
		for j := 0; j < rand.Intn(maxLotsPerOperator+1); j++ {
			lots = append(lots, GenerateRandomLot(nextLotID, &operator))
			nextLotID++
		}
		dataset.LotsByOperator[operator.OperatorID] = lots
	}

	return dataset
}
