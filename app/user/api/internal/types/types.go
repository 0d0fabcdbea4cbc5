// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 认证相关 ====================

// RegisterReq 注册请求
type RegisterReq struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// RegisterResp 注册响应
type RegisterResp struct {
	UserId int64 `json:"user_id"`
}

// LoginReq 登录请求
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResp 登录响应
type LoginResp struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpireAt     int64    `json:"expire_at"`
	UserInfo     UserInfo `json:"user_info"`
}

// RefreshTokenReq 刷新Token请求
type RefreshTokenReq struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenResp 刷新Token响应
type RefreshTokenResp struct {
	AccessToken string `json:"access_token"`
	ExpireAt    int64  `json:"expire_at"`
}

// ==================== 用户相关 ====================

// UserInfo 用户信息
type UserInfo struct {
	UserId    int64  `json:"user_id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

// UpdateProfileReq 更新资料请求
type UpdateProfileReq struct {
	Nickname string `json:"nickname"`
}

// ChangePasswordReq 修改密码请求
type ChangePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
