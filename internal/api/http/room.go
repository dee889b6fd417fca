package http

import (
	"werewolf-be/internal/service/dto"
	"werewolf-be/internal/state"

	"github.com/kataras/iris/v12"
)

func CreateRoom(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		ctx.JSON(appState.RoomSvc.CreateRoom())
	}
}

func JoinRoom(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.JoinRoomRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.JoinRoom(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}
