package utils

import "github.com/gin-gonic/gin"

// JSONData and JSONError match the response envelope the mobile app
// expects: {"data": ...} on success, {"error": message} on failure.
func JSONData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
