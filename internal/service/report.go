package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
)

var (
	ErrReportNotFound  = errors.New("质检报告不存在")
	ErrReportDateEmpty = errors.New("质检日期不能为空")
)

// ReportFilter 质检报告过滤条件
type ReportFilter struct {
	Station string
	Status  string
}

// UpdateReportInput 质检报告部分更新
type UpdateReportInput struct {
	Date      *string `json:"date"`
	Station   *string `json:"station"`
	Inspector *string `json:"inspector"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

func (in *UpdateReportInput) apply(report *model.QAReport) int {
	applied := 0
	if in.Date != nil {
		report.Date = *in.Date
		applied++
	}
	if in.Station != nil {
		report.Station = *in.Station
		applied++
	}
	if in.Inspector != nil {
		report.Inspector = *in.Inspector
		applied++
	}
	if in.Status != nil {
		report.Status = *in.Status
		applied++
	}
	if in.Notes != nil {
		report.Notes = *in.Notes
		applied++
	}
	return applied
}

type ReportService interface {
	List(ctx context.Context, filter *ReportFilter) ([]model.QAReport, error)
	GetByID(ctx context.Context, id int64) (*model.QAReport, error)
	Create(ctx context.Context, report *model.QAReport) error
	Update(ctx context.Context, id int64, in *UpdateReportInput) error
	Delete(ctx context.Context, id int64) error
}

// reportService 质检报告 JSON 文件存储
// 整读整写 + 临时文件原子替换；进程内互斥，
// 跨进程并发写按后写覆盖处理（量小可接受）
type reportService struct {
	path string
	mu   sync.Mutex
}

// NewReportService 创建质检报告服务
func NewReportService(path string) ReportService {
	return &reportService{path: path}
}

// load 读出整个集合
// 文件不存在时初始化为空集合；解析失败时把原文件
// 备份为 .corrupt.<时间戳> 后从空集合继续
func (s *reportService) load() ([]model.QAReport, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := s.save([]model.QAReport{}); werr != nil {
				return nil, werr
			}
			return []model.QAReport{}, nil
		}
		return nil, err
	}

	var reports []model.QAReport
	if err := json.Unmarshal(raw, &reports); err != nil {
		backup := fmt.Sprintf("%s.corrupt.%d", s.path, time.Now().Unix())
		if werr := os.WriteFile(backup, raw, 0644); werr != nil {
			return nil, werr
		}
		if werr := s.save([]model.QAReport{}); werr != nil {
			return nil, werr
		}
		return []model.QAReport{}, nil
	}
	return reports, nil
}

// save 整写集合：先写临时文件再原子改名
// 改名前的任何中断都不会破坏正式文件
func (s *reportService) save(reports []model.QAReport) error {
	raw, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *reportService) List(ctx context.Context, filter *ReportFilter) ([]model.QAReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return reports, nil
	}
	filtered := make([]model.QAReport, 0, len(reports))
	for _, r := range reports {
		if filter.Station != "" && r.Station != filter.Station {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func (s *reportService) GetByID(ctx context.Context, id int64) (*model.QAReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, ErrReportNotFound
}

func (s *reportService) Create(ctx context.Context, report *model.QAReport) error {
	if report.Date == "" {
		return ErrReportDateEmpty
	}
	if report.Status == "" {
		report.Status = model.StatusPending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return err
	}
	var maxID int64
	for _, r := range reports {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	report.ID = maxID + 1
	reports = append(reports, *report)
	return s.save(reports)
}

func (s *reportService) Update(ctx context.Context, id int64, in *UpdateReportInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return err
	}
	for i := range reports {
		if reports[i].ID == id {
			if in.apply(&reports[i]) == 0 {
				return ErrNoUpdatableFields
			}
			return s.save(reports)
		}
	}
	return ErrReportNotFound
}

func (s *reportService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return err
	}
	for i := range reports {
		if reports[i].ID == id {
			reports = append(reports[:i], reports[i+1:]...)
			return s.save(reports)
		}
	}
	return ErrReportNotFound
}
