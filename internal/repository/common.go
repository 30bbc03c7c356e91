// Package repository 数据访问层
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound = errors.New("记录不存在")
	ErrNoFields = errors.New("没有可更新的字段")
)

// Pagination 分页参数
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize 规范化分页参数
// 页码从 1 开始，单页上限 200
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 200 {
		p.PageSize = 200
	}
}

// applyPage 应用分页
func applyPage(query *gorm.DB, page *Pagination) *gorm.DB {
	if page == nil {
		return query
	}
	page.Normalize()
	offset := (page.Page - 1) * page.PageSize
	return query.Offset(offset).Limit(page.PageSize)
}

// updateByID 按 ID 更新指定字段
// 先确认记录存在再更新，避免"字段值未变化"被误判为不存在；
// 存在性检查带行锁并与更新同事务，期间的并发删除
// 不会被误报成功
func updateByID(db *gorm.DB, ctx context.Context, m interface{}, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrNoFields
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked []uint
		if err := tx.Model(m).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).Pluck("id", &locked).Error; err != nil {
			return err
		}
		if len(locked) == 0 {
			return ErrNotFound
		}
		return tx.Model(m).Where("id = ?", id).Updates(fields).Error
	})
}

// deleteByID 按 ID 删除
// 未命中任何行时返回 ErrNotFound，而不是假装成功
func deleteByID(db *gorm.DB, ctx context.Context, m interface{}, id uint) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// getByID 按 ID 查询单条记录
func getByID(db *gorm.DB, ctx context.Context, dest interface{}, id uint) error {
	err := db.WithContext(ctx).Where("id = ?", id).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
