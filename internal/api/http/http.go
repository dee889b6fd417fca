package http

import (
	"fmt"

	"werewolf-be/internal/api/http/websocket"
	"werewolf-be/internal/state"

	"github.com/kataras/iris/v12"
)

func RunServer(appState *state.AppState) {
	app := iris.Default()

	app.HandleDir(
		"/",
		iris.Dir("./werewolf-fe"),
		iris.DirOptions{
			IndexName: "index.html",
			SPA:       true,
			Compress:  true,
		},
	)

	api := app.Party("/api/v1")

	room := api.Party("/room")

	// 房间生命周期
	room.Post("/create", CreateRoom(appState))
	room.Post("/join", JoinRoom(appState))

	// 主持人操作，需要 host_secret
	room.Post("/start", StartGame(appState))
	room.Post("/phase", SetPhase(appState))
	room.Post("/call_role", CallRole(appState))
	room.Post("/resolve_night", ResolveNight(appState))
	room.Post("/resolve_day", ResolveDay(appState))
	room.Post("/start_voting", StartVoting(appState))
	room.Post("/vote_preview", VotePreview(appState))
	room.Get("/role_progress", RoleProgress(appState))
	room.Get("/host_state", HostState(appState))

	// 玩家操作
	room.Post("/action", SubmitAction(appState))
	room.Post("/seer_result", SeerResult(appState))
	room.Get("/state", PlayerState(appState))
	room.Get("/witch_info", WitchInfo(appState))

	// 大屏和观众
	room.Get("/village_state", VillageState(appState))
	room.Get("/join_qr", JoinQR(appState))
	room.Get("/watch", websocket.WatchVillage(appState))

	addr := fmt.Sprintf(
		"%s:%d",
		appState.Cfg.Host,
		appState.Cfg.Port,
	)

	app.Listen(addr)
}
