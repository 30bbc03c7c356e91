// Package model 定义数据模型
package model

import (
	"time"
)

// BaseModel 基础模型，包含通用字段
// 主键为数据库自增 ID，业务编号（如有）单独存储
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `gorm:"type:varchar(100)" json:"created_by"`
}

// 通用状态常量
// 状态为自由字段，各实体取值不同，入库前不做枚举校验
const (
	StatusPending = "pending" // 待处理
	StatusOrdered = "ordered" // 已下单
	StatusDone    = "done"    // 已完成
	StatusClosed  = "closed"  // 已关闭
)
