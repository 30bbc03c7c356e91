package model

import "time"

// Customer 客户
type Customer struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);index" json:"name"`
	ContactName string `gorm:"type:varchar(100)" json:"contact_name"`
	Phone       string `gorm:"type:varchar(50)" json:"phone"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	Address     string `gorm:"type:varchar(500)" json:"address"`
	Region      string `gorm:"type:varchar(100)" json:"region"`
	Memo        string `gorm:"type:text" json:"memo"`
	Status      string `gorm:"type:varchar(20);default:active" json:"status"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// Supplier 供应商
type Supplier struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);index" json:"name"`
	Category    string `gorm:"type:varchar(100);index" json:"category"`
	ContactName string `gorm:"type:varchar(100)" json:"contact_name"`
	Phone       string `gorm:"type:varchar(50)" json:"phone"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	Address     string `gorm:"type:varchar(500)" json:"address"`
	Status      string `gorm:"type:varchar(20);default:active" json:"status"`
}

// TableName 指定表名
func (Supplier) TableName() string {
	return "suppliers"
}

// FollowUp 客户跟进记录
// 仪表盘仅统计未关闭（status != closed）的记录
type FollowUp struct {
	BaseModel
	CustomerID *uint      `gorm:"index" json:"customer_id"`
	Title      string     `gorm:"type:varchar(200)" json:"title"`
	Content    string     `gorm:"type:text" json:"content"`
	DueDate    *time.Time `json:"due_date"`
	Status     string     `gorm:"type:varchar(20);default:pending" json:"status"`
}

// TableName 指定表名
func (FollowUp) TableName() string {
	return "follow_ups"
}
