package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kostec-kr/erp-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScopeKind 编号作用域类型
type ScopeKind int

const (
	ScopeNone ScopeKind = iota // 全局递增，不重置
	ScopeYear                  // 按年重置
	ScopeDay                   // 按天重置
)

// NumberKind 业务编号类型定义
type NumberKind struct {
	Name   string    // 计数器作用域名，如 "tracking"
	Prefix string    // 编号前缀，如 "KOT"
	Scope  ScopeKind // 重置周期
	Width  int       // 序号零填充宽度
	Table  string    // 存量编号所在表
	Column string    // 存量编号所在列
}

// 各实体的编号类型
var (
	TestNumber       = NumberKind{Name: "test", Prefix: "TST", Scope: ScopeYear, Width: 4, Table: "test_records", Column: "test_no"}
	TrackingNumber   = NumberKind{Name: "tracking", Prefix: "KOT", Scope: ScopeYear, Width: 4, Table: "trackings", Column: "track_no"}
	PowerNumber      = NumberKind{Name: "power", Prefix: "PWR", Scope: ScopeNone, Width: 6, Table: "power_calcs", Column: "calc_no"}
	PreInstallNumber = NumberKind{Name: "pre_install", Prefix: "PRE", Scope: ScopeNone, Width: 6, Table: "pre_install_forms", Column: "form_no"}
	TaxInvoiceNumber = NumberKind{Name: "tax_invoice", Prefix: "TIV", Scope: ScopeDay, Width: 4, Table: "tax_invoices", Column: "tax_no"}
)

// ScopeKey 计算给定时刻的作用域键
func (k NumberKind) ScopeKey(now time.Time) string {
	switch k.Scope {
	case ScopeYear:
		return now.Format("2006")
	case ScopeDay:
		return now.Format("20060102")
	default:
		return ""
	}
}

// CounterScope 计数器行的作用域标识
func (k NumberKind) CounterScope(now time.Time) string {
	key := k.ScopeKey(now)
	if key == "" {
		return k.Name
	}
	return k.Name + ":" + key
}

// Format 拼装业务编号
func (k NumberKind) Format(scopeKey string, seq int64) string {
	if scopeKey == "" {
		return fmt.Sprintf("%s-%0*d", k.Prefix, k.Width, seq)
	}
	return fmt.Sprintf("%s-%s-%0*d", k.Prefix, scopeKey, k.Width, seq)
}

// numberPrefix 编号的固定前缀部分（含结尾连字符）
func (k NumberKind) numberPrefix(scopeKey string) string {
	if scopeKey == "" {
		return k.Prefix + "-"
	}
	return k.Prefix + "-" + scopeKey + "-"
}

// LikePattern 存量编号扫描用的 LIKE 模式
func (k NumberKind) LikePattern(scopeKey string) string {
	return k.numberPrefix(scopeKey) + "%"
}

// ParseSeq 从业务编号中解析序号
// 前缀不匹配或后缀非纯数字时返回 false
func (k NumberKind) ParseSeq(scopeKey, no string) (int64, bool) {
	prefix := k.numberPrefix(scopeKey)
	if !strings.HasPrefix(no, prefix) {
		return 0, false
	}
	suffix := no[len(prefix):]
	if suffix == "" {
		return 0, false
	}
	seq, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// MaxSeq 取一批存量编号中可解析的最大序号
// 无法解析的编号直接跳过，不允许污染计数
func MaxSeq(k NumberKind, scopeKey string, nos []string) int64 {
	var max int64
	for _, no := range nos {
		if seq, ok := k.ParseSeq(scopeKey, no); ok && seq > max {
			max = seq
		}
	}
	return max
}

// SequenceAllocator 业务编号分配器
// Next 必须在承载插入的同一事务内调用：
// 计数器行被 SELECT ... FOR UPDATE 锁住，
// 并发创建在行锁上串行化，不会产生重复编号
type SequenceAllocator interface {
	Next(tx *gorm.DB, kind NumberKind, now time.Time) (string, error)
}

type sequenceAllocator struct{}

// NewSequenceAllocator 创建业务编号分配器
func NewSequenceAllocator() SequenceAllocator {
	return &sequenceAllocator{}
}

func (a *sequenceAllocator) Next(tx *gorm.DB, kind NumberKind, now time.Time) (string, error) {
	scopeKey := kind.ScopeKey(now)
	scope := kind.CounterScope(now)

	var counter model.SequenceCounter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("scope = ?", scope).
		First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 首次使用该作用域：从存量编号播种计数器
		seed, serr := a.seed(tx, kind, scopeKey)
		if serr != nil {
			return "", serr
		}
		// 并发首建可能撞上唯一索引。DO NOTHING 让冲突不报错，
		// 事务在两种驱动下都保持可用（PostgreSQL 的唯一冲突
		// 会把整个事务置为中止态，冲突后不能再发语句），
		// 随后统一重读加锁拿到最终行
		counter = model.SequenceCounter{Scope: scope, Value: seed}
		if cerr := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&counter).Error; cerr != nil {
			return "", cerr
		}
		counter = model.SequenceCounter{}
		if rerr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("scope = ?", scope).
			First(&counter).Error; rerr != nil {
			return "", rerr
		}
	} else if err != nil {
		return "", err
	}

	counter.Value++
	if err := tx.Save(&counter).Error; err != nil {
		return "", err
	}
	return kind.Format(scopeKey, counter.Value), nil
}

// seed 扫描存量编号，返回可解析的最大序号
func (a *sequenceAllocator) seed(tx *gorm.DB, kind NumberKind, scopeKey string) (int64, error) {
	var nos []string
	err := tx.Table(kind.Table).
		Where(kind.Column+" LIKE ?", kind.LikePattern(scopeKey)).
		Pluck(kind.Column, &nos).Error
	if err != nil {
		return 0, err
	}
	return MaxSeq(kind, scopeKey, nos), nil
}
