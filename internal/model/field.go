package model

import "time"

// Tracking 物流跟踪记录
// 编号格式 KOT-<年>-<4位序号>，按年重置
type Tracking struct {
	BaseModel
	TrackNo     string     `gorm:"type:varchar(50);uniqueIndex" json:"track_no"`
	OrderID     *uint      `gorm:"index" json:"order_id"`
	CustomerID  *uint      `gorm:"index" json:"customer_id"`
	Carrier     string     `gorm:"type:varchar(100)" json:"carrier"`
	Destination string     `gorm:"type:varchar(300)" json:"destination"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `gorm:"type:varchar(20);default:pending" json:"status"`
	Memo        string     `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (Tracking) TableName() string {
	return "trackings"
}

// TestRecord 客户测试记录
// 编号格式 TST-<年>-<4位序号>，按年重置
type TestRecord struct {
	BaseModel
	TestNo     string     `gorm:"type:varchar(50);uniqueIndex" json:"test_no"`
	CustomerID *uint      `gorm:"index" json:"customer_id"`
	ProductID  *uint      `gorm:"index" json:"product_id"`
	Item       string     `gorm:"type:varchar(300)" json:"item"`
	Result     string     `gorm:"type:varchar(100)" json:"result"`
	TestedAt   *time.Time `json:"tested_at"`
	Status     string     `gorm:"type:varchar(20);default:pending" json:"status"`
	Memo       string     `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (TestRecord) TableName() string {
	return "test_records"
}
