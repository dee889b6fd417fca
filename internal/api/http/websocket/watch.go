package websocket

import (
	"net/http"
	"time"

	"werewolf-be/internal/service/dto"
	"werewolf-be/internal/state"

	"github.com/gorilla/websocket"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// NOTE: 暂时允许所有来源
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	// 心跳间隔
	HEARTBEAT_INTERVAL = 30 * time.Second
	// 心跳超时时间
	HEARTBEAT_TIMEOUT = 45 * time.Second
)

var heartbeatHandler = func(conn *websocket.Conn) func(string) error {
	return func(string) error {
		conn.SetReadDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
		return nil
	}
}

// WatchVillage 把一条 WebSocket 连接注册为村庄观众。
// 观众只收不发：服务端在每次状态变更后推送村庄快照
func WatchVillage(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		code := ctx.URLParam("room_code")

		watcherID, pushCh, err := appState.RoomSvc.WatchRoom(code)
		if err != nil {
			ctx.StatusCode(iris.StatusNotFound)
			ctx.JSON(iris.Map{"error": err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(
			ctx.ResponseWriter(),
			ctx.Request(),
			nil,
		)
		if err != nil {
			appState.RoomSvc.Unwatch(code, watcherID)
			zap.L().Error("升级到WebSocket失败", zap.Error(err))
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		defer conn.Close()
		defer appState.RoomSvc.Unwatch(code, watcherID)

		conn.SetReadDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
		conn.SetPongHandler(heartbeatHandler(conn))

		clientIP := ctx.RemoteAddr()

		zap.L().Info(
			"村庄观众已接入",
			zap.String("client_ip", clientIP),
			zap.String("room_code", code),
			zap.String("watcher_id", watcherID),
		)

		// 接入时先推一帧当前快照，不用等下一次变更
		if snapshot, err := appState.RoomSvc.VillageState(code); err == nil {
			initial := dto.WatchPush{
				ResponseType: dto.PUSH_VILLAGE_STATE,
				Data:         snapshot,
			}

			if err := conn.WriteJSON(initial); err != nil {
				zap.L().Error(
					"发送初始快照失败",
					zap.String("client_ip", clientIP),
					zap.Error(err),
				)

				return
			}
		}

		// 写协程的退出信号
		writeDoneCh := make(chan struct{})
		defer close(writeDoneCh)

		// 写入协程
		go func() {
			ticker := time.NewTicker(HEARTBEAT_INTERVAL)
			defer ticker.Stop()

			for {
				select {
				case <-writeDoneCh:
					zap.L().Info(
						"WebSocket写入协程退出",
						zap.String("client_ip", clientIP),
					)
					return

				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))

					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						zap.L().Error(
							"发送心跳失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}

					zap.L().Debug(
						"发送心跳",
						zap.String("client_ip", clientIP),
					)

				case push, ok := <-pushCh:
					// 通道关闭说明房间已被清理
					if !ok {
						zap.L().Info(
							"推送通道已关闭，退出写协程",
							zap.String("client_ip", clientIP),
						)

						conn.WriteControl(
							websocket.CloseMessage,
							websocket.FormatCloseMessage(websocket.CloseGoingAway, "房间已关闭"),
							time.Now().Add(time.Second),
						)

						return
					}

					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))

					if err := conn.WriteJSON(push); err != nil {
						zap.L().Error(
							"推送快照失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}
				}
			}
		}()

		// 读取协程（主协程）：观众不发业务消息，读循环只管心跳和断开检测
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(
					err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
				) {
					zap.L().Error(
						"读取消息失败",
						zap.String("client_ip", clientIP),
						zap.Error(err),
					)
				}

				break
			}
		}

		zap.L().Info(
			"村庄观众断开",
			zap.String("client_ip", clientIP),
			zap.String("room_code", code),
			zap.String("watcher_id", watcherID),
		)
	}
}
