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
	ErrProductNameEmpty  = errors.New("产品名称不能为空")
	ErrDeviceSerialEmpty = errors.New("设备序列号不能为空")
)

// UpdateProductInput 产品部分更新
type UpdateProductInput struct {
	Code     *string  `json:"code"`
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Spec     *string  `json:"spec"`
	Unit     *string  `json:"unit"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Memo     *string  `json:"memo"`
}

func (in *UpdateProductInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Code != nil {
		m["code"] = *in.Code
	}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Category != nil {
		m["category"] = *in.Category
	}
	if in.Spec != nil {
		m["spec"] = *in.Spec
	}
	if in.Unit != nil {
		m["unit"] = *in.Unit
	}
	if in.Price != nil {
		m["price"] = *in.Price
	}
	if in.Stock != nil {
		m["stock"] = *in.Stock
	}
	if in.Memo != nil {
		m["memo"] = *in.Memo
	}
	return m
}

type ProductService interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	Update(ctx context.Context, id uint, in *UpdateProductInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.ProductFilter, page *repository.Pagination) ([]*model.Product, int64, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, product *model.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return ErrProductNameEmpty
	}
	return s.repo.Create(ctx, product)
}

func (s *productService) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, id uint, in *UpdateProductInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *productService) List(ctx context.Context, filter *repository.ProductFilter, page *repository.Pagination) ([]*model.Product, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// UpdateDeviceInput 设备部分更新
type UpdateDeviceInput struct {
	Name    *string `json:"name"`
	Station *string `json:"station"`
	Model   *string `json:"model"`
}

func (in *UpdateDeviceInput) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Station != nil {
		m["station"] = *in.Station
	}
	if in.Model != nil {
		m["model"] = *in.Model
	}
	return m
}

type DeviceService interface {
	Create(ctx context.Context, device *model.Device) error
	GetByID(ctx context.Context, id uint) (*model.Device, error)
	Update(ctx context.Context, id uint, in *UpdateDeviceInput) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *repository.DeviceFilter, page *repository.Pagination) ([]*model.Device, int64, error)
	Heartbeat(ctx context.Context, id uint) error
}

type deviceService struct {
	repo repository.DeviceRepository
}

func NewDeviceService(repo repository.DeviceRepository) DeviceService {
	return &deviceService{repo: repo}
}

func (s *deviceService) Create(ctx context.Context, device *model.Device) error {
	device.SerialNo = strings.TrimSpace(device.SerialNo)
	if device.SerialNo == "" {
		return ErrDeviceSerialEmpty
	}
	return s.repo.Create(ctx, device)
}

func (s *deviceService) GetByID(ctx context.Context, id uint) (*model.Device, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *deviceService) Update(ctx context.Context, id uint, in *UpdateDeviceInput) error {
	if id == 0 {
		return ErrIDInvalid
	}
	fields := in.fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *deviceService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Delete(ctx, id)
}

func (s *deviceService) List(ctx context.Context, filter *repository.DeviceFilter, page *repository.Pagination) ([]*model.Device, int64, error) {
	if page == nil {
		page = &repository.Pagination{Page: 1, PageSize: 20}
	}
	return s.repo.List(ctx, filter, page)
}

// Heartbeat 记录设备上报时间
func (s *deviceService) Heartbeat(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDInvalid
	}
	return s.repo.Heartbeat(ctx, id, time.Now())
}
