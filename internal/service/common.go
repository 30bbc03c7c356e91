// Package service 业务逻辑层
package service

import "errors"

var (
	ErrIDInvalid         = errors.New("ID 无效")
	ErrNoUpdatableFields = errors.New("没有可更新的字段")
)
