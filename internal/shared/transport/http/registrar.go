package http

import "github.com/gin-gonic/gin"

// Registrar 由业务模块实现，把自己的路由挂到 gin group。
type Registrar interface {
	HttpRegister(g *gin.RouterGroup)
}
