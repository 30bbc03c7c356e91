package repository

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("解析时间失败: %v", err)
	}
	return parsed
}

func TestNumberKind_ScopeKey(t *testing.T) {
	now := mustTime(t, "2026-03-15")

	tests := []struct {
		name string
		kind NumberKind
		want string
	}{
		{"按年重置", TrackingNumber, "2026"},
		{"按天重置", TaxInvoiceNumber, "20260315"},
		{"全局递增", PowerNumber, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.ScopeKey(now); got != tt.want {
				t.Errorf("ScopeKey() = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

func TestNumberKind_CounterScope(t *testing.T) {
	now := mustTime(t, "2026-03-15")

	if got := TrackingNumber.CounterScope(now); got != "tracking:2026" {
		t.Errorf("CounterScope() = %q, 期望 tracking:2026", got)
	}
	if got := TaxInvoiceNumber.CounterScope(now); got != "tax_invoice:20260315" {
		t.Errorf("CounterScope() = %q, 期望 tax_invoice:20260315", got)
	}
	if got := PreInstallNumber.CounterScope(now); got != "pre_install" {
		t.Errorf("CounterScope() = %q, 期望 pre_install", got)
	}
}

func TestNumberKind_Format(t *testing.T) {
	tests := []struct {
		name     string
		kind     NumberKind
		scopeKey string
		seq      int64
		want     string
	}{
		{"测试记录编号", TestNumber, "2026", 7, "TST-2026-0007"},
		{"物流编号", TrackingNumber, "2026", 123, "KOT-2026-0123"},
		{"节电编号", PowerNumber, "", 42, "PWR-000042"},
		{"调查表编号", PreInstallNumber, "", 1, "PRE-000001"},
		{"税务发票编号", TaxInvoiceNumber, "20260315", 3, "TIV-20260315-0003"},
		{"序号超出宽度不截断", TrackingNumber, "2026", 123456, "KOT-2026-123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Format(tt.scopeKey, tt.seq); got != tt.want {
				t.Errorf("Format() = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

func TestNumberKind_LikePattern(t *testing.T) {
	if got := TrackingNumber.LikePattern("2026"); got != "KOT-2026-%" {
		t.Errorf("LikePattern() = %q, 期望 KOT-2026-%%", got)
	}
	if got := PowerNumber.LikePattern(""); got != "PWR-%" {
		t.Errorf("LikePattern() = %q, 期望 PWR-%%", got)
	}
}

func TestNumberKind_ParseSeq(t *testing.T) {
	tests := []struct {
		name     string
		kind     NumberKind
		scopeKey string
		no       string
		wantSeq  int64
		wantOK   bool
	}{
		{"正常编号", TrackingNumber, "2026", "KOT-2026-0042", 42, true},
		{"无零填充也可解析", TrackingNumber, "2026", "KOT-2026-7", 7, true},
		{"前缀不匹配", TrackingNumber, "2026", "TST-2026-0042", 0, false},
		{"年份不匹配", TrackingNumber, "2026", "KOT-2025-0042", 0, false},
		{"字母后缀", TrackingNumber, "2026", "KOT-2026-ABCD", 0, false},
		{"混合后缀", TrackingNumber, "2026", "KOT-2026-00A1", 0, false},
		{"空后缀", TrackingNumber, "2026", "KOT-2026-", 0, false},
		{"全局编号", PowerNumber, "", "PWR-000099", 99, true},
		{"空字符串", PowerNumber, "", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := tt.kind.ParseSeq(tt.scopeKey, tt.no)
			if ok != tt.wantOK || seq != tt.wantSeq {
				t.Errorf("ParseSeq(%q) = (%d, %v), 期望 (%d, %v)", tt.no, seq, ok, tt.wantSeq, tt.wantOK)
			}
		})
	}
}

func TestMaxSeq(t *testing.T) {
	// 字典序最大的编号后缀损坏时，取可解析编号中的最大值
	nos := []string{
		"KOT-2026-0003",
		"KOT-2026-0011",
		"KOT-2026-ZZZZ",
		"KOT-2026-00A7",
		"KOT-2025-0999",
	}
	if got := MaxSeq(TrackingNumber, "2026", nos); got != 11 {
		t.Errorf("MaxSeq() = %d, 期望 11", got)
	}
}

func TestMaxSeq_Empty(t *testing.T) {
	if got := MaxSeq(TrackingNumber, "2026", nil); got != 0 {
		t.Errorf("无存量编号时 MaxSeq() = %d, 期望 0", got)
	}
	if got := MaxSeq(TrackingNumber, "2026", []string{"垃圾数据", "KOT-"}); got != 0 {
		t.Errorf("全部不可解析时 MaxSeq() = %d, 期望 0", got)
	}
}
