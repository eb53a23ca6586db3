package util

import "errors"

// 四类对外错误。授权失败刻意不区分“不存在/已停用/已过期”，
// 避免通过响应差异探测激活码。
var (
	ErrUnauthorized = errors.New("license key is not valid")
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("conflicting operation")
	ErrValidation   = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
