package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
)

var (
	ErrTrackingCarrierEmpty = errors.New("承运方不能为空")
	ErrTestItemEmpty        = errors.New("测试项目不能为空")
)

// UpdateTrackingInput 物流跟踪部分更新
// 编号 track_no 由分配器生成，不允许改写
type UpdateTrackingInput struct {
	Carrier     *string    `json:"carrier"`
	Destination *string    `json:"destination"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      *string    `json:"status"`
	Memo        *string    `json:"memo"`
}

func (in *UpdateTrackingInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Carrier != nil {
		m["carrier"] = *in.Carrier
	}
	if in.Destination != nil {
		m["destination"] = *in.Destination
	}
	if in.StartDate != nil {
		m["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		m["end_date"] = *in.EndDate
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type TrackingService interface {
	Create(ctx context.Context, tracking *model.Tracking) error
	GetByID(ctx context.Context, id uint) (*model.Tracking, error)
	Update(ctx context.Context, id uint, in *UpdateTrackingInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.TrackingFilter, page *repository.Pagination) ([]*model.Tracking, int64, error)
}

type trackingService struct {
	repo repository.TrackingRepository
}

func NewTrackingService(repo repository.TrackingRepository) TrackingService {
	return &trackingService{repo: repo}
}

func (s *trackingService) Create(ctx context.Context, tracking *model.Tracking) error {
	tracking.Carrier = strings.TrimSpace(tracking.Carrier)
	if tracking.Carrier == "" {
		return ErrTrackingCarrierEmpty
	}
	if tracking.Status == "" {
		tracking.Status = model.StatusPending
	}
	// 只给了起运日期时，预计到达默认一个月后
	if tracking.StartDate != nil && tracking.EndDate == nil {
		end := tracking.StartDate.AddDate(0, 1, 0)
		tracking.EndDate = &end
	}
	return s.repo.Create(ctx, tracking)
}

func (s *trackingService) GetByID(ctx context.Context, id uint) (*model.Tracking, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *trackingService) Update(ctx context.Context, id uint, in *UpdateTrackingInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	// 更新起运日期而未给到达日期时，同步推算到达日期
	if in.StartDate != nil && in.EndDate == nil {
		fields["end_date"] = in.StartDate.AddDate(0, 1, 0)
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *trackingService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *trackingService) List(ctx context.Context, filter *repository.TrackingFilter, page *repository.Pagination) ([]*model.Tracking, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// UpdateTestRecordInput 客户测试记录部分更新
type UpdateTestRecordInput struct {
	Item     *string    `json:"item"`
	Result   *string    `json:"result"`
	TestedAt *time.Time `json:"tested_at"`
	Status   *string    `json:"status"`
	Memo     *string    `json:"memo"`
}

func (in *UpdateTestRecordInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Item != nil {
		m["item"] = *in.Item
	}
	if in.Result != nil {
		m["result"] = *in.Result
	}
	if in.TestedAt != nil {
		m["tested_at"] = *in.TestedAt
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type TestRecordService interface {
	Create(ctx context.Context, record *model.TestRecord) error
	GetByID(ctx context.Context, id uint) (*model.TestRecord, error)
	Update(ctx context.Context, id uint, in *UpdateTestRecordInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.TestRecordFilter, page *repository.Pagination) ([]*model.TestRecord, int64, error)
}

type testRecordService struct {
	repo repository.TestRecordRepository
}

func NewTestRecordService(repo repository.TestRecordRepository) TestRecordService {
	return &testRecordService{repo: repo}
}

func (s *testRecordService) Create(ctx context.Context, record *model.TestRecord) error {
	record.Item = strings.TrimSpace(record.Item)
	if record.Item == "" {
		return ErrTestItemEmpty
	}
	if record.Status == "" {
		record.Status = model.StatusPending
	}
	return s.repo.Create(ctx, record)
}

func (s *testRecordService) GetByID(ctx context.Context, id uint) (*model.TestRecord, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *testRecordService) Update(ctx context.Context, id uint, in *UpdateTestRecordInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *testRecordService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *testRecordService) List(ctx context.Context, filter *repository.TestRecordFilter, page *repository.Pagination) ([]*model.TestRecord, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}
