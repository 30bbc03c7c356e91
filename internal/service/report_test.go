package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService(t *testing.T) (ReportService, string) {
	path := filepath.Join(t.TempDir(), "qa_reports.json")
	return NewReportService(path), path
}

func TestReportService_MissingFileInit(t *testing.T) {
	svc, path := newTestReportService(t)
	ctx := context.Background()

	reports, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, reports)

	// 首次读取后文件应被初始化为空集合
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestReportService_CorruptFileQuarantine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa_reports.json")
	corrupt := []byte("{ this is not json")
	require.NoError(t, os.WriteFile(path, corrupt, 0644))

	svc := NewReportService(path)
	ctx := context.Background()

	reports, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, reports)

	// 原文件必须被备份为 .corrupt.<时间戳>，内容原样保留
	matches, err := filepath.Glob(path + ".corrupt.*")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	backup, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, corrupt, backup)

	// 正式文件重置为空集合
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var parsed []model.QAReport
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Empty(t, parsed)
}

func TestReportService_CRUD(t *testing.T) {
	svc, _ := newTestReportService(t)
	ctx := context.Background()

	report := &model.QAReport{Date: "2026-08-01", Station: "釜山一号站", Inspector: "金检查员"}
	require.NoError(t, svc.Create(ctx, report))
	assert.Equal(t, int64(1), report.ID)
	assert.Equal(t, model.StatusPending, report.Status)

	second := &model.QAReport{Date: "2026-08-02", Station: "釜山二号站"}
	require.NoError(t, svc.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	got, err := svc.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "釜山一号站", got.Station)

	status := "done"
	require.NoError(t, svc.Update(ctx, report.ID, &UpdateReportInput{Status: &status}))
	got, err = svc.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "done", got.Status)

	require.NoError(t, svc.Delete(ctx, report.ID))
	_, err = svc.GetByID(ctx, report.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	// 删除后 ID 继续从现存最大值递增
	third := &model.QAReport{Date: "2026-08-03"}
	require.NoError(t, svc.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID)
}

func TestReportService_Create_DateRequired(t *testing.T) {
	svc, _ := newTestReportService(t)
	ctx := context.Background()

	err := svc.Create(ctx, &model.QAReport{Station: "釜山一号站"})
	assert.ErrorIs(t, err, ErrReportDateEmpty)
}

func TestReportService_ListFilter(t *testing.T) {
	svc, _ := newTestReportService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &model.QAReport{Date: "2026-08-01", Station: "釜山一号站", Status: "done"}))
	require.NoError(t, svc.Create(ctx, &model.QAReport{Date: "2026-08-02", Station: "釜山二号站"}))
	require.NoError(t, svc.Create(ctx, &model.QAReport{Date: "2026-08-03", Station: "釜山一号站"}))

	reports, err := svc.List(ctx, &ReportFilter{Station: "釜山一号站"})
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	reports, err = svc.List(ctx, &ReportFilter{Station: "釜山一号站", Status: "done"})
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestReportService_Update_EmptyPatch(t *testing.T) {
	svc, _ := newTestReportService(t)
	ctx := context.Background()

	report := &model.QAReport{Date: "2026-08-01"}
	require.NoError(t, svc.Create(ctx, report))

	err := svc.Update(ctx, report.ID, &UpdateReportInput{})
	assert.ErrorIs(t, err, ErrNoUpdatableFields)
}

func TestReportService_UpdateDelete_NotFound(t *testing.T) {
	svc, _ := newTestReportService(t)
	ctx := context.Background()

	notes := "备注"
	assert.ErrorIs(t, svc.Update(ctx, 99, &UpdateReportInput{Notes: &notes}), ErrReportNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 99), ErrReportNotFound)
}

func TestReportService_SaveLeavesNoTempFile(t *testing.T) {
	svc, path := newTestReportService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &model.QAReport{Date: "2026-08-01"}))

	// 原子替换完成后不应残留临时文件
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestReportService_CrashedTempWriteKeepsCanonicalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa_reports.json")
	ctx := context.Background()

	first := NewReportService(path)
	require.NoError(t, first.Create(ctx, &model.QAReport{Date: "2026-08-01", Station: "釜山一号站"}))

	// 模拟在临时文件写入后、改名前进程崩溃：留下半截 .tmp
	require.NoError(t, os.WriteFile(path+".tmp", []byte(`[{"id":2,"date":"2026-08-0`), 0644))

	// 重新打开：正式文件完好，已有数据可读
	second := NewReportService(path)
	reports, err := second.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "釜山一号站", reports[0].Station)

	// 下一次写入覆盖残留的临时文件并正常完成
	require.NoError(t, second.Create(ctx, &model.QAReport{Date: "2026-08-02", Station: "釜山二号站"}))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reports, err = second.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestReportService_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa_reports.json")
	ctx := context.Background()

	first := NewReportService(path)
	require.NoError(t, first.Create(ctx, &model.QAReport{Date: "2026-08-01", Station: "釜山一号站"}))

	// 重新打开同一文件应看到已写入的数据
	second := NewReportService(path)
	reports, err := second.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "釜山一号站", reports[0].Station)
}
