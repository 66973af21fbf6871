package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Process metrics (expvar); token-protected like the rest of /api
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
