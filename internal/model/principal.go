package model

// Principal 一次请求的授权主体。本系统没有用户账号，
// 共享的激活码就是唯一身份，所有存储操作都显式携带它。
type Principal struct {
	LicenseKey string `json:"license_key"`
}
