package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
)

type mockPowerCalcRepository struct {
	calcs  map[uint]*model.PowerCalc
	nextID uint
}

func newMockPowerCalcRepository() *mockPowerCalcRepository {
	return &mockPowerCalcRepository{calcs: make(map[uint]*model.PowerCalc)}
}

func (m *mockPowerCalcRepository) Create(ctx context.Context, calc *model.PowerCalc) error {
	m.nextID++
	calc.ID = m.nextID
	calc.CalcNo = fmt.Sprintf("PWR-%06d", m.nextID)
	m.calcs[calc.ID] = calc
	return nil
}

func (m *mockPowerCalcRepository) GetByID(ctx context.Context, id uint) (*model.PowerCalc, error) {
	if calc, exists := m.calcs[id]; exists {
		return calc, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockPowerCalcRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	calc, exists := m.calcs[id]
	if !exists {
		return repository.ErrNotFound
	}
	if v, ok := fields["before_kwh"]; ok {
		calc.BeforeKwh = v.(float64)
	}
	if v, ok := fields["after_kwh"]; ok {
		calc.AfterKwh = v.(float64)
	}
	if v, ok := fields["saving_percent"]; ok {
		calc.SavingPercent = v.(float64)
	}
	if v, ok := fields["station"]; ok {
		calc.Station = v.(string)
	}
	return nil
}

func (m *mockPowerCalcRepository) Delete(ctx context.Context, id uint) error {
	if _, exists := m.calcs[id]; !exists {
		return repository.ErrNotFound
	}
	delete(m.calcs, id)
	return nil
}

func (m *mockPowerCalcRepository) List(ctx context.Context, filter *repository.PowerCalcFilter, page *repository.Pagination) ([]*model.PowerCalc, int64, error) {
	var result []*model.PowerCalc
	for _, calc := range m.calcs {
		result = append(result, calc)
	}
	return result, int64(len(result)), nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPowerCalcService_Create_SavingPercent(t *testing.T) {
	svc := NewPowerCalcService(newMockPowerCalcRepository())
	ctx := context.Background()

	calc := &model.PowerCalc{Station: "蔚山工厂", BeforeKwh: 1000, AfterKwh: 750}
	if err := svc.Create(ctx, calc); err != nil {
		t.Fatalf("创建节电计算失败: %v", err)
	}
	if !almostEqual(calc.SavingPercent, 25) {
		t.Errorf("节电率 = %v，期望 25", calc.SavingPercent)
	}
	if calc.CalcNo == "" {
		t.Error("期望生成计算编号")
	}
}

func TestPowerCalcService_Create_ZeroBefore(t *testing.T) {
	svc := NewPowerCalcService(newMockPowerCalcRepository())
	ctx := context.Background()

	calc := &model.PowerCalc{Station: "蔚山工厂", BeforeKwh: 0, AfterKwh: 100}
	if err := svc.Create(ctx, calc); err != nil {
		t.Fatalf("创建节电计算失败: %v", err)
	}
	if calc.SavingPercent != 0 {
		t.Errorf("改造前用电量为 0 时节电率应为 0，实际 %v", calc.SavingPercent)
	}
}

func TestPowerCalcService_Create_StationRequired(t *testing.T) {
	svc := NewPowerCalcService(newMockPowerCalcRepository())
	ctx := context.Background()

	if err := svc.Create(ctx, &model.PowerCalc{}); !errors.Is(err, ErrPowerStationEmpty) {
		t.Errorf("空站点应返回 ErrPowerStationEmpty，实际 %v", err)
	}
}

func TestPowerCalcService_Update_RecomputeSaving(t *testing.T) {
	repo := newMockPowerCalcRepository()
	svc := NewPowerCalcService(repo)
	ctx := context.Background()

	calc := &model.PowerCalc{Station: "蔚山工厂", BeforeKwh: 1000, AfterKwh: 750}
	_ = svc.Create(ctx, calc)

	// 只更新改造后用电量，改造前取现值
	after := 500.0
	if err := svc.Update(ctx, calc.ID, &UpdatePowerCalcInput{AfterKwh: &after}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if !almostEqual(repo.calcs[calc.ID].SavingPercent, 50) {
		t.Errorf("节电率 = %v，期望 50", repo.calcs[calc.ID].SavingPercent)
	}
}

func TestPowerCalcService_Update_NonPowerFieldKeepsSaving(t *testing.T) {
	repo := newMockPowerCalcRepository()
	svc := NewPowerCalcService(repo)
	ctx := context.Background()

	calc := &model.PowerCalc{Station: "蔚山工厂", BeforeKwh: 1000, AfterKwh: 750}
	_ = svc.Create(ctx, calc)

	station := "釜山工厂"
	if err := svc.Update(ctx, calc.ID, &UpdatePowerCalcInput{Station: &station}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if !almostEqual(repo.calcs[calc.ID].SavingPercent, 25) {
		t.Errorf("非用电量字段更新不应改变节电率，实际 %v", repo.calcs[calc.ID].SavingPercent)
	}
}

func TestPowerCalcService_Update_EmptyPatch(t *testing.T) {
	repo := newMockPowerCalcRepository()
	svc := NewPowerCalcService(repo)
	ctx := context.Background()

	calc := &model.PowerCalc{Station: "蔚山工厂"}
	_ = svc.Create(ctx, calc)

	if err := svc.Update(ctx, calc.ID, &UpdatePowerCalcInput{}); !errors.Is(err, ErrNoUpdatableFields) {
		t.Errorf("空补丁应返回 ErrNoUpdatableFields，实际 %v", err)
	}
}
