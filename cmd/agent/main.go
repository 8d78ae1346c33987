package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/secom-mes-client/client"
	"github.com/sysu-ecnc-dev/secom-mes-client/internal/config"
)

func main() {
	var op string
	var operatorID int64
	var code string
	var department string
	var status string

	flag.StringVar(&op, "op", "", "要执行的操作 (operator, operators, lots, department, code, summary, search)")
	flag.Int64Var(&operatorID, "id", 0, "操作员 ID")
	flag.StringVar(&code, "code", "", "操作员编号 (例如 OP001)")
	flag.StringVar(&department, "department", "", "部门名称")
	flag.StringVar(&status, "status", "", "操作员状态 (例如 Active)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建客户端
	c, err := client.NewClient(
		cfg.MES.BaseURL,
		client.WithTimeout(time.Duration(cfg.MES.RequestTimeout)*time.Second),
		client.WithLogger(logger),
	)
	if err != nil {
		logger.Error("无法创建客户端", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// 执行操作
	var result any
	switch op {
	case "":
		logger.Error("未指定操作")
		flag.Usage()
		os.Exit(1)
	case "operator":
		result, err = c.GetOperatorByID(ctx, operatorID)
	case "operators":
		result, err = c.GetAllOperators(ctx)
	case "lots":
		result, err = c.GetOperatorLots(ctx, operatorID)
	case "department":
		result, err = c.GetOperatorsByDepartment(ctx, department)
	case "code":
		result, err = c.GetOperatorByCode(ctx, code)
	case "summary":
		result, err = c.GetOperatorSummary(ctx, operatorID)
	case "search":
		result, err = c.SearchOperators(ctx, client.SearchOptions{Department: department, Status: status})
	default:
		logger.Error("未知的操作", "op", op)
		os.Exit(1)
	}

	if err != nil {
		logger.Error("调用失败", "op", op, "error", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("无法序列化结果", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}
