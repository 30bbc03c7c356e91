package model

import "time"

// Product 产品
type Product struct {
	BaseModel
	Code     string  `gorm:"type:varchar(50);index" json:"code"`
	Name     string  `gorm:"type:varchar(200);index" json:"name"`
	Category string  `gorm:"type:varchar(100);index" json:"category"`
	Spec     string  `gorm:"type:varchar(200)" json:"spec"`
	Unit     string  `gorm:"type:varchar(20)" json:"unit"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Memo     string  `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// DeviceOnlineWindow 设备在线判定窗口
// 最后一次上报在窗口内视为在线
const DeviceOnlineWindow = 20 * time.Minute

// Device 监测设备
type Device struct {
	BaseModel
	SerialNo   string     `gorm:"type:varchar(100);uniqueIndex" json:"serial_no"`
	Name       string     `gorm:"type:varchar(200)" json:"name"`
	Station    string     `gorm:"type:varchar(100);index" json:"station"`
	Model      string     `gorm:"type:varchar(100)" json:"model"`
	LastSeenAt *time.Time `json:"last_seen_at"`
	Online     bool       `gorm:"-" json:"online"`
}

// TableName 指定表名
func (Device) TableName() string {
	return "devices"
}

// RefreshOnline 按在线窗口刷新在线标记
func (d *Device) RefreshOnline(now time.Time) {
	d.Online = d.LastSeenAt != nil && now.Sub(*d.LastSeenAt) <= DeviceOnlineWindow
}
