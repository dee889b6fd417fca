package http

import (
	"fmt"

	"werewolf-be/internal/gameerr"
	"werewolf-be/internal/state"

	"github.com/kataras/iris/v12"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

func VillageState(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		resp, err := appState.RoomSvc.VillageState(ctx.URLParam("room_code"))
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

// JoinQR 生成入房链接的二维码，投到大屏上扫码加入
func JoinQR(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		code := ctx.URLParam("room_code")

		if !appState.RoomSvc.RoomExists(code) {
			writeError(ctx, gameerr.NotFound("房间不存在"))
			return
		}

		joinURL := fmt.Sprintf("%s/join?room_code=%s", appState.Cfg.PublicURL, code)

		png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
		if err != nil {
			zap.L().Error("二维码生成失败", zap.String("room_code", code), zap.Error(err))
			writeError(ctx, gameerr.New(gameerr.KindUnknown, "二维码生成失败"))
			return
		}

		ctx.ContentType("image/png")
		ctx.Write(png)
	}
}
