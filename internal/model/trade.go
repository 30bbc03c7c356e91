package model

import "time"

// PurchaseOrder 采购/销售订单
// 订单号由客户侧提供，不走编号分配器
type PurchaseOrder struct {
	BaseModel
	PoNo       string     `gorm:"type:varchar(50);index" json:"po_no"`
	CustomerID *uint      `gorm:"index" json:"customer_id"`
	SupplierID *uint      `gorm:"index" json:"supplier_id"`
	Subject    string     `gorm:"type:varchar(300)" json:"subject"`
	Amount     float64    `json:"amount"`
	Currency   string     `gorm:"type:varchar(10);default:KRW" json:"currency"`
	OrderDate  *time.Time `json:"order_date"`
	DueDate    *time.Time `json:"due_date"`
	Status     string     `gorm:"type:varchar(20);default:ordered" json:"status"`
	Memo       string     `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// Quotation 报价单
type Quotation struct {
	BaseModel
	QuoteNo    string     `gorm:"type:varchar(50);index" json:"quote_no"`
	CustomerID *uint      `gorm:"index" json:"customer_id"`
	Subject    string     `gorm:"type:varchar(300)" json:"subject"`
	Amount     float64    `json:"amount"`
	Currency   string     `gorm:"type:varchar(10);default:KRW" json:"currency"`
	ValidUntil *time.Time `json:"valid_until"`
	Status     string     `gorm:"type:varchar(20);default:pending" json:"status"`
	Memo       string     `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (Quotation) TableName() string {
	return "quotations"
}
