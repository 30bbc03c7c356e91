package repository

import "testing"

// TestPaginationNormalize 测试分页参数规范化
func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"正常参数", 3, 50, 3, 50},
		{"页码为零", 0, 20, 1, 20},
		{"页码为负", -5, 20, 1, 20},
		{"页大小为零", 1, 0, 1, 20},
		{"页大小为负", 1, -10, 1, 20},
		{"页大小超上限", 1, 500, 1, 200},
		{"上限边界", 1, 200, 1, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pagination{Page: tt.page, PageSize: tt.pageSize}
			p.Normalize()
			if p.Page != tt.wantPage {
				t.Errorf("Page 期望 %d, 实际 %d", tt.wantPage, p.Page)
			}
			if p.PageSize != tt.wantPageSize {
				t.Errorf("PageSize 期望 %d, 实际 %d", tt.wantPageSize, p.PageSize)
			}
		})
	}
}
