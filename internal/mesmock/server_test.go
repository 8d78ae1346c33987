package mesmock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sysu-ecnc-dev/secom-mes-client/domain"
)

func serverDataset() *Dataset {
	return &Dataset{
		Operators: []domain.Operator{
			{OperatorID: 1, OperatorCode: "OP001", OperatorName: "王伟", Department: domain.DepartmentProduction, Status: domain.OperatorStatusActive},
			{OperatorID: 2, OperatorCode: "OP002", OperatorName: "李静", Department: domain.DepartmentQuality, Status: domain.OperatorStatusActive},
		},
		LotsByOperator: map[int64][]domain.Lot{
			1: {{LotID: 11, LotNumber: "LOT0011", WaferCount: 10, Status: domain.LotStatusCompleted}},
		},
	}
}

func doGet(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("请求 %s 失败: %v", path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestServerEndpoints(t *testing.T) {
	srv := httptest.NewServer(NewServer(serverDataset()).Mux)
	defer srv.Close()

	resp := doGet(t, srv, "/api/v1/operators")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("期望 200，实际是 %d", resp.StatusCode)
	}
	var operators []domain.Operator
	if err := json.NewDecoder(resp.Body).Decode(&operators); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(operators) != 2 {
		t.Fatalf("期望 2 条记录，实际是 %d 条", len(operators))
	}

	resp = doGet(t, srv, "/api/v1/operators/1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("期望 200，实际是 %d", resp.StatusCode)
	}
	var operator domain.Operator
	if err := json.NewDecoder(resp.Body).Decode(&operator); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if operator.OperatorID != 1 {
		t.Fatalf("返回的操作员不对: %d", operator.OperatorID)
	}

	resp = doGet(t, srv, "/api/v1/operators/1/lots")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("期望 200，实际是 %d", resp.StatusCode)
	}
	var lots []domain.Lot
	if err := json.NewDecoder(resp.Body).Decode(&lots); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(lots) != 1 || lots[0].LotNumber != "LOT0011" {
		t.Fatalf("批次列表错误: %+v", lots)
	}

	resp = doGet(t, srv, "/api/v1/operators/code/OP002")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("期望 200，实际是 %d", resp.StatusCode)
	}

	resp = doGet(t, srv, "/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("期望 200，实际是 %d", resp.StatusCode)
	}
}

func TestServerNotFound(t *testing.T) {
	srv := httptest.NewServer(NewServer(serverDataset()).Mux)
	defer srv.Close()

	if resp := doGet(t, srv, "/api/v1/operators/999"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("不存在的操作员应该返回 404，实际是 %d", resp.StatusCode)
	}
	if resp := doGet(t, srv, "/api/v1/operators/code/OP999"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("不存在的编号应该返回 404，实际是 %d", resp.StatusCode)
	}
	if resp := doGet(t, srv, "/api/v1/operators/999/lots"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("不存在的操作员的批次应该返回 404，实际是 %d", resp.StatusCode)
	}
	// 部门下没有操作员时返回 404，与真实 MES 的契约一致
	if resp := doGet(t, srv, "/api/v1/operators/department/Engineering"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("空部门应该返回 404，实际是 %d", resp.StatusCode)
	}
}

func TestServerInvalidID(t *testing.T) {
	srv := httptest.NewServer(NewServer(serverDataset()).Mux)
	defer srv.Close()

	if resp := doGet(t, srv, "/api/v1/operators/abc"); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("非数字 ID 应该返回 400，实际是 %d", resp.StatusCode)
	}
}
