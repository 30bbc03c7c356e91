package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/kostec-kr/erp-backend/internal/service"
	"github.com/stretchr/testify/assert"
)

// mockTrackingService 内存物流跟踪服务
type mockTrackingService struct {
	trackings map[uint]*model.Tracking
}

func (m *mockTrackingService) Create(ctx context.Context, tracking *model.Tracking) error {
	tracking.ID = uint(len(m.trackings) + 1)
	m.trackings[tracking.ID] = tracking
	return nil
}

func (m *mockTrackingService) GetByID(ctx context.Context, id uint) (*model.Tracking, error) {
	tr, ok := m.trackings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return tr, nil
}

func (m *mockTrackingService) Update(ctx context.Context, id uint, in *service.UpdateTrackingInput) error {
	tr, ok := m.trackings[id]
	if !ok {
		return repository.ErrNotFound
	}
	if in.Carrier != nil {
		tr.Carrier = *in.Carrier
	}
	if in.Destination != nil {
		tr.Destination = *in.Destination
	}
	if in.Status != nil {
		tr.Status = *in.Status
	}
	return nil
}

func (m *mockTrackingService) Delete(ctx context.Context, id uint) error {
	if _, ok := m.trackings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.trackings, id)
	return nil
}

func (m *mockTrackingService) List(ctx context.Context, filter *repository.TrackingFilter, page *repository.Pagination) ([]*model.Tracking, int64, error) {
	var list []*model.Tracking
	for _, tr := range m.trackings {
		list = append(list, tr)
	}
	return list, int64(len(list)), nil
}

func setupTrackingTestRouter() (*gin.Engine, *mockTrackingService) {
	gin.SetMode(gin.TestMode)

	svc := &mockTrackingService{trackings: map[uint]*model.Tracking{}}
	h := NewTrackingHandler(svc)

	router := gin.New()
	router.PUT("/trackings/:id", h.UpdateTracking)
	return router, svc
}

// 编号由分配器生成，更新请求中携带的 track_no 必须被忽略
func TestTrackingHandler_Update_TrackNoImmutable(t *testing.T) {
	router, svc := setupTrackingTestRouter()
	svc.trackings[1] = &model.Tracking{
		BaseModel: model.BaseModel{ID: 1},
		TrackNo:   "KOT-2026-0001",
		Carrier:   "大韩通运",
	}

	w := doJSON(router, http.MethodPut, "/trackings/1", gin.H{
		"track_no": "KOT-9999-0001",
		"carrier":  "韩进物流",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "KOT-2026-0001", svc.trackings[1].TrackNo)
	assert.Equal(t, "韩进物流", svc.trackings[1].Carrier)
}
