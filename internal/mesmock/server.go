package mesmock

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server 把一份 Dataset 暴露成和 SECOM MES 一致的只读 HTTP 接口。
type Server struct {
	dataset *Dataset

	Mux *chi.Mux
}

func NewServer(dataset *Dataset) *Server {
	s := &Server{
		dataset: dataset,

		Mux: chi.NewRouter(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Mux.Use(s.logger)
	s.Mux.Use(s.recoverer)

	s.Mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.Mux.Route("/api/v1/operators", func(r chi.Router) {
		r.Get("/", s.listOperators)
		r.Get("/department/{department}", s.listOperatorsByDepartment)
		r.Get("/code/{code}", s.getOperatorByCode)
		r.Get("/{id}", s.getOperator)
		r.Get("/{id}/lots", s.listOperatorLots)
	})
}

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (s *Server) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.errorResponse(w, http.StatusInternalServerError, "服务器内部错误")
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("无法编码响应", "error", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) operatorIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) listOperators(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dataset.Operators)
}

func (s *Server) getOperator(w http.ResponseWriter, r *http.Request) {
	operatorID, err := s.operatorIDFromURL(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "无效的操作员 ID")
		return
	}

	operator, ok := s.dataset.OperatorByID(operatorID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "操作员不存在")
		return
	}

	s.writeJSON(w, http.StatusOK, operator)
}

func (s *Server) listOperatorLots(w http.ResponseWriter, r *http.Request) {
	operatorID, err := s.operatorIDFromURL(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "无效的操作员 ID")
		return
	}

	if _, ok := s.dataset.OperatorByID(operatorID); !ok {
		s.errorResponse(w, http.StatusNotFound, "操作员不存在")
		return
	}

	s.writeJSON(w, http.StatusOK, s.dataset.OperatorLots(operatorID))
}

func (s *Server) listOperatorsByDepartment(w http.ResponseWriter, r *http.Request) {
	department := chi.URLParam(r, "department")

	operators := s.dataset.OperatorsByDepartment(department)
	// 与真实 MES 的契约一致：部门下没有操作员时返回 404
	if len(operators) == 0 {
		s.errorResponse(w, http.StatusNotFound, "部门下没有操作员")
		return
	}

	s.writeJSON(w, http.StatusOK, operators)
}

func (s *Server) getOperatorByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	operator, ok := s.dataset.OperatorByCode(code)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "操作员不存在")
		return
	}

	s.writeJSON(w, http.StatusOK, operator)
}
