package model

// QAReport 质检报告
// 持久化在本地 JSON 文件中，不走关系库
type QAReport struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Station   string `json:"station"`
	Inspector string `json:"inspector"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}
