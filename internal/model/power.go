package model

import "time"

// PowerCalc 节电计算记录
// 编号格式 PWR-<6位序号>，全局递增不按期重置
type PowerCalc struct {
	BaseModel
	CalcNo        string  `gorm:"type:varchar(50);uniqueIndex" json:"calc_no"`
	Station       string  `gorm:"type:varchar(100);index" json:"station"`
	DeviceID      *uint   `gorm:"index" json:"device_id"`
	Period        string  `gorm:"type:varchar(50)" json:"period"`
	BeforeKwh     float64 `json:"before_kwh"`
	AfterKwh      float64 `json:"after_kwh"`
	SavingPercent float64 `json:"saving_percent"`
	Memo          string  `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (PowerCalc) TableName() string {
	return "power_calcs"
}

// ComputeSavingPercent 根据改造前后用电量计算节电率
// 改造前用电量为 0 时节电率记 0，避免除零
func (p *PowerCalc) ComputeSavingPercent() {
	if p.BeforeKwh == 0 {
		p.SavingPercent = 0
		return
	}
	p.SavingPercent = (p.BeforeKwh - p.AfterKwh) / p.BeforeKwh * 100
}

// PreInstallForm 安装前调查表
// 编号格式 PRE-<6位序号>，全局递增不按期重置
type PreInstallForm struct {
	BaseModel
	FormNo        string     `gorm:"type:varchar(50);uniqueIndex" json:"form_no"`
	CustomerID    *uint      `gorm:"index" json:"customer_id"`
	Site          string     `gorm:"type:varchar(300)" json:"site"`
	Surveyor      string     `gorm:"type:varchar(100)" json:"surveyor"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Status        string     `gorm:"type:varchar(20);default:pending" json:"status"`
	Memo          string     `gorm:"type:text" json:"memo"`
}

// TableName 指定表名
func (PreInstallForm) TableName() string {
	return "pre_install_forms"
}
