package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User 后台用户
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:varchar(255)" json:"-"`
	DisplayName  string `gorm:"type:varchar(100)" json:"display_name"`
	Department   string `gorm:"type:varchar(100)" json:"department"`
	Role         string `gorm:"type:varchar(20);default:staff" json:"role"`
	Status       string `gorm:"type:varchar(20);default:active" json:"status"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// SetPassword 设置密码（哈希存储）
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword 验证密码
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsActive 检查用户是否启用
func (u *User) IsActive() bool {
	return u.Status == "active"
}
