package model

import "time"

// SequenceCounter 业务编号计数器
// 每个作用域一行，取号时对行加锁后递增，
// 避免 MAX 扫描 + 插入的并发竞争
type SequenceCounter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Scope     string    `gorm:"type:varchar(64);uniqueIndex" json:"scope"`
	Value     int64     `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
