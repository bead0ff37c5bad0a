package handler

import (
	"github.com/gin-gonic/gin"
)

// respondData 返回成功响应（带数据）
func respondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondMessage 返回成功响应（仅消息）
func respondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
	})
}
