package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sysu-ecnc-dev/secom-mes-client/domain"
)

func TestGetOperatorSummary(t *testing.T) {
	c := newTestClient(t, testDataset())

	summary, err := c.GetOperatorSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("生成汇总失败: %v", err)
	}

	if summary.Operator.OperatorName != "John Smith" {
		t.Fatalf("操作员姓名错误: %s", summary.Operator.OperatorName)
	}
	if summary.TotalLots != 2 {
		t.Fatalf("期望 totalLots 为 2，实际是 %d", summary.TotalLots)
	}
	if summary.TotalLots != len(summary.Lots) {
		t.Fatalf("totalLots (%d) 与批次数量 (%d) 不一致", summary.TotalLots, len(summary.Lots))
	}
	if len(summary.Departments) != 1 || summary.Departments[0] != domain.DepartmentProduction {
		t.Fatalf("部门列表错误: %v", summary.Departments)
	}
	if summary.SummaryGeneratedAt.IsZero() {
		t.Fatalf("汇总时间没有填充")
	}
}

func TestGetOperatorSummaryNotFound(t *testing.T) {
	c := newTestClient(t, testDataset())

	if _, err := c.GetOperatorSummary(context.Background(), 999); err == nil {
		t.Fatalf("期望返回错误")
	}
}

func TestSearchOperatorsByDepartment(t *testing.T) {
	c := newTestClient(t, testDataset())

	byDepartment, err := c.GetOperatorsByDepartment(context.Background(), domain.DepartmentProduction)
	if err != nil {
		t.Fatalf("按部门查询失败: %v", err)
	}

	searched, err := c.SearchOperators(context.Background(), SearchOptions{Department: domain.DepartmentProduction})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if len(searched) != len(byDepartment) {
		t.Fatalf("不带状态过滤的搜索结果应该和部门查询一致: %d != %d", len(searched), len(byDepartment))
	}
	for i := range searched {
		if searched[i].OperatorID != byDepartment[i].OperatorID {
			t.Fatalf("搜索结果的顺序和服务端返回的不一致")
		}
	}
}

func TestSearchOperatorsStatusFilter(t *testing.T) {
	c := newTestClient(t, testDataset())

	operators, err := c.SearchOperators(context.Background(), SearchOptions{
		Department: domain.DepartmentProduction,
		Status:     domain.OperatorStatusActive,
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if len(operators) != 1 {
		t.Fatalf("期望 1 条记录，实际是 %d 条", len(operators))
	}
	for _, operator := range operators {
		if operator.Status != domain.OperatorStatusActive {
			t.Fatalf("状态过滤失效，出现了 %s 的记录", operator.Status)
		}
	}
}

func TestSearchOperatorsNoMatch(t *testing.T) {
	c := newTestClient(t, testDataset())

	// 状态过滤后为空不应该报错
	operators, err := c.SearchOperators(context.Background(), SearchOptions{Status: "Suspended"})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}
	if len(operators) != 0 {
		t.Fatalf("期望空结果，实际有 %d 条", len(operators))
	}
}

func TestSafeGetOperatorFound(t *testing.T) {
	c := newTestClient(t, testDataset())

	operator, outcome, err := c.SafeGetOperator(context.Background(), 1)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if outcome != LookupFound {
		t.Fatalf("期望 LookupFound，实际是 %d", outcome)
	}
	if operator == nil || operator.OperatorID != 1 {
		t.Fatalf("返回的操作员不对: %+v", operator)
	}
}

func TestSafeGetOperatorNotFound(t *testing.T) {
	c := newTestClient(t, testDataset())

	operator, outcome, err := c.SafeGetOperator(context.Background(), 999)
	if err != nil {
		t.Fatalf("404 不应该被当作错误返回: %v", err)
	}
	if outcome != LookupNotFound {
		t.Fatalf("期望 LookupNotFound，实际是 %d", outcome)
	}
	if operator != nil {
		t.Fatalf("缺席时不应该返回记录")
	}
}

func TestSafeGetOperatorUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	if err != nil {
		t.Fatalf("创建客户端失败: %v", err)
	}

	operator, outcome, err := c.SafeGetOperator(context.Background(), 1)
	if err != nil {
		t.Fatalf("传输失败不应该被当作错误返回: %v", err)
	}
	if outcome != LookupUnreachable {
		t.Fatalf("期望 LookupUnreachable，实际是 %d", outcome)
	}
	if operator != nil {
		t.Fatalf("不可达时不应该返回记录")
	}
}

func TestSafeGetOperatorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("创建客户端失败: %v", err)
	}

	// 非 404 的状态码错误要原样抛给调用方
	if _, _, err := c.SafeGetOperator(context.Background(), 1); err == nil {
		t.Fatalf("期望返回错误")
	}
}
