package http

import (
	"werewolf-be/internal/gameerr"

	"github.com/kataras/iris/v12"
)

// 统一的错误出口：按错误类别映射状态码，消息原样透传给前端
func writeError(ctx iris.Context, err error) {
	kind := gameerr.KindOf(err)

	ctx.StatusCode(kind.HTTPStatus())
	ctx.JSON(iris.Map{
		"error": err.Error(),
		"kind":  string(kind),
	})
}

func writeBadRequest(ctx iris.Context) {
	ctx.StatusCode(iris.StatusBadRequest)
	ctx.JSON(iris.Map{
		"error": "请求参数无效",
		"kind":  string(gameerr.KindValidation),
	})
}
