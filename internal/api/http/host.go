package http

import (
	"werewolf-be/internal/service/dto"
	"werewolf-be/internal/state"

	"github.com/kataras/iris/v12"
)

func StartGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.StartGameRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.StartGame(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func SetPhase(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.SetPhaseRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.SetPhase(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func CallRole(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.CallRoleRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.CallRole(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func ResolveNight(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.ResolveRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.ResolveNight(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func ResolveDay(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.ResolveRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.ResolveDay(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func StartVoting(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.StartVotingRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.StartVoting(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func VotePreview(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.ResolveRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeBadRequest(ctx)
			return
		}

		resp, err := appState.RoomSvc.VotePreview(req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func RoleProgress(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		resp, err := appState.RoomSvc.RoleProgress(
			ctx.URLParam("room_code"),
			ctx.URLParam("host_secret"),
			ctx.URLParam("role"),
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}

func HostState(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		resp, err := appState.RoomSvc.HostState(
			ctx.URLParam("room_code"),
			ctx.URLParam("host_secret"),
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(resp)
	}
}
