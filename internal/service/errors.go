package service

import "errors"

// ==================== 服务层错误 ====================

var (
	// 登录失败统一一种提示，不区分"邮箱不存在"和"密码错误"，避免账号枚举
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserDisabled       = errors.New("账号已被停用")
	ErrInvalidToken       = errors.New("token 无效或已过期")

	ErrProductNotFound = errors.New("商品不存在")
	ErrOrderNotFound   = errors.New("订单不存在")
	ErrInvalidStatus   = errors.New("无效的订单状态")
)
