package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the standard success envelope.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the standard structured error body.
func JSONError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// JSONErrorDetails is JSONError with the underlying error attached for the
// operator.
func JSONErrorDetails(c *gin.Context, status int, code string, message string, err error) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message, "details": err.Error()}})
}
