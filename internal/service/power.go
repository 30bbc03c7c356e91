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
	ErrPowerStationEmpty   = errors.New("站点名称不能为空")
	ErrPreInstallSiteEmpty = errors.New("安装地点不能为空")
)

// UpdatePowerCalcInput 节电计算记录部分更新
// 编号 calc_no 由分配器生成，不允许改写
type UpdatePowerCalcInput struct {
	Station   *string  `json:"station"`
	Period    *string  `json:"period"`
	BeforeKwh *float64 `json:"before_kwh"`
	AfterKwh  *float64 `json:"after_kwh"`
	Memo      *string  `json:"memo"`
}

func (in *UpdatePowerCalcInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Station != nil {
		m["station"] = *in.Station
	}
	if in.Period != nil {
		m["period"] = *in.Period
	}
	if in.BeforeKwh != nil {
		m["before_kwh"] = *in.BeforeKwh
	}
	if in.AfterKwh != nil {
		m["after_kwh"] = *in.AfterKwh
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type PowerCalcService interface {
	Create(ctx context.Context, calc *model.PowerCalc) error
	GetByID(ctx context.Context, id uint) (*model.PowerCalc, error)
	Update(ctx context.Context, id uint, in *UpdatePowerCalcInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.PowerCalcFilter, page *repository.Pagination) ([]*model.PowerCalc, int64, error)
}

type powerCalcService struct {
	repo repository.PowerCalcRepository
}

func NewPowerCalcService(repo repository.PowerCalcRepository) PowerCalcService {
	return &powerCalcService{repo: repo}
}

func (s *powerCalcService) Create(ctx context.Context, calc *model.PowerCalc) error {
	calc.Station = strings.TrimSpace(calc.Station)
	if calc.Station == "" {
		return ErrPowerStationEmpty
	}
	calc.ComputeSavingPercent()
	return s.repo.Create(ctx, calc)
}

func (s *powerCalcService) GetByID(ctx context.Context, id uint) (*model.PowerCalc, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *powerCalcService) Update(ctx context.Context, id uint, in *UpdatePowerCalcInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	// 用电量字段变化时重算节电率（缺的一侧取现值）
	if in.BeforeKwh != nil || in.AfterKwh != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged := model.PowerCalc{
			BeforeKwh: current.BeforeKwh,
			AfterKwh:  current.AfterKwh,
		}
		if in.BeforeKwh != nil {
			merged.BeforeKwh = *in.BeforeKwh
		}
		if in.AfterKwh != nil {
			merged.AfterKwh = *in.AfterKwh
		}
		merged.ComputeSavingPercent()
		fields["saving_percent"] = merged.SavingPercent
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *powerCalcService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *powerCalcService) List(ctx context.Context, filter *repository.PowerCalcFilter, page *repository.Pagination) ([]*model.PowerCalc, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// UpdatePreInstallInput 安装前调查表部分更新
// 编号 form_no 由分配器生成，不允许改写
type UpdatePreInstallInput struct {
	Site          *string    `json:"site"`
	Surveyor      *string    `json:"surveyor"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Status        *string    `json:"status"`
	Memo          *string    `json:"memo"`
}

func (in *UpdatePreInstallInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Site != nil {
		m["site"] = *in.Site
	}
	if in.Surveyor != nil {
		m["surveyor"] = *in.Surveyor
	}
	if in.ScheduledDate != nil {
		m["scheduled_date"] = *in.ScheduledDate
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type PreInstallService interface {
	Create(ctx context.Context, form *model.PreInstallForm) error
	GetByID(ctx context.Context, id uint) (*model.PreInstallForm, error)
	Update(ctx context.Context, id uint, in *UpdatePreInstallInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.PreInstallFilter, page *repository.Pagination) ([]*model.PreInstallForm, int64, error)
}

type preInstallService struct {
	repo repository.PreInstallRepository
}

func NewPreInstallService(repo repository.PreInstallRepository) PreInstallService {
	return &preInstallService{repo: repo}
}

func (s *preInstallService) Create(ctx context.Context, form *model.PreInstallForm) error {
	form.Site = strings.TrimSpace(form.Site)
	if form.Site == "" {
		return ErrPreInstallSiteEmpty
	}
	if form.Status == "" {
		form.Status = model.StatusPending
	}
	return s.repo.Create(ctx, form)
}

func (s *preInstallService) GetByID(ctx context.Context, id uint) (*model.PreInstallForm, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *preInstallService) Update(ctx context.Context, id uint, in *UpdatePreInstallInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *preInstallService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *preInstallService) List(ctx context.Context, filter *repository.PreInstallFilter, page *repository.Pagination) ([]*model.PreInstallForm, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}
