package http

import (
	"werewolf-be/internal/service/dto"
	"werewolf-be/internal/state"

	"github.com/kataras/iris/v12"
)

func SubmitAction(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.SubmitActionRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.SubmitAction(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func PlayerState(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		resp, err := appState.RoomSvc.PlayerState(
			ctx.URLParam("room_code"),
			ctx.URLParam("player_id"),
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func SeerResult(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.SeerResultRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.SeerResult(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func WitchInfo(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		resp, err := appState.RoomSvc.WitchInfo(
			ctx.URLParam("room_code"),
			ctx.URLParam("player_id"),
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}
