package api

import (
	"incomebook/config"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// currentConfig 获取全局配置，未初始化时返回 nil（测试场景）
func currentConfig() *config.Config {
	return config.GlobalConfig
}
