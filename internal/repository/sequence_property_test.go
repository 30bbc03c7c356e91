package repository

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// 对任意非负序号，Format 生成的编号都能被 ParseSeq 还原
func TestProperty_FormatParseRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	kinds := []NumberKind{TestNumber, TrackingNumber, PowerNumber, PreInstallNumber, TaxInvoiceNumber}
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	properties.Property("编号格式化后可还原序号", prop.ForAll(
		func(kindIdx int, seq int64) bool {
			kind := kinds[kindIdx%len(kinds)]
			scopeKey := kind.ScopeKey(now)
			no := kind.Format(scopeKey, seq)
			parsed, ok := kind.ParseSeq(scopeKey, no)
			return ok && parsed == seq
		},
		gen.IntRange(0, 4),
		gen.Int64Range(0, 99999999),
	))

	properties.TestingRun(t)
}

// MaxSeq 不小于集合中任何可解析编号的序号，
// 且无法解析的编号不影响结果
func TestProperty_MaxSeqIgnoresUnparsable(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("损坏编号不污染最大序号", prop.ForAll(
		func(seqs []int64, junk []string) bool {
			scopeKey := "2026"
			nos := make([]string, 0, len(seqs)+len(junk))
			var want int64
			for _, seq := range seqs {
				nos = append(nos, TrackingNumber.Format(scopeKey, seq))
				if seq > want {
					want = seq
				}
			}
			for _, j := range junk {
				nos = append(nos, "KOT-2026-"+j+"X")
			}
			return MaxSeq(TrackingNumber, scopeKey, nos) == want
		},
		gen.SliceOf(gen.Int64Range(0, 999999)),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
