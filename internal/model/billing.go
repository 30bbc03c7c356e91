package model

import "time"

// Invoice 发票
type Invoice struct {
	BaseModel
	InvoiceNo  string     `gorm:"type:varchar(50);index" json:"invoice_no"`
	OrderID    *uint      `gorm:"index" json:"order_id"`
	CustomerID *uint      `gorm:"index" json:"customer_id"`
	Amount     float64    `json:"amount"`
	TaxAmount  float64    `json:"tax_amount"`
	IssueDate  *time.Time `json:"issue_date"`
	Status     string     `gorm:"type:varchar(20);default:pending" json:"status"`
	Memo       string     `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (Invoice) TableName() string {
	return "invoices"
}

// TaxInvoice 税务发票
// 编号格式 TIV-<YYYYMMDD>-<4位序号>，按天重置
type TaxInvoice struct {
	BaseModel
	TaxNo        string     `gorm:"type:varchar(50);uniqueIndex" json:"tax_no"`
	InvoiceID    *uint      `gorm:"index" json:"invoice_id"`
	CustomerID   *uint      `gorm:"index" json:"customer_id"`
	SupplyAmount float64    `json:"supply_amount"`
	TaxAmount    float64    `json:"tax_amount"`
	TotalAmount  float64    `json:"total_amount"`
	IssueDate    *time.Time `json:"issue_date"`
	Status       string     `gorm:"type:varchar(20);default:pending" json:"status"`
}

// TableName 指定表名
func (TaxInvoice) TableName() string {
	return "tax_invoices"
}
