package service

import (
	"sync"
	"time"

	"werewolf-be/internal/config"
	"werewolf-be/internal/gameerr"
	"werewolf-be/internal/service/dto"
	"werewolf-be/internal/service/game"

	"go.uber.org/zap"
)

// RoomService 持有全部房间的注册表。注册表本身由服务级读写锁保护，
// 每个房间再用自己的锁串行化内部变更，跨房间没有任何协调
type RoomService struct {
	cfg   *config.AppConfig
	state *roomServiceState
}

type roomServiceState struct {
	mu sync.RWMutex

	// 房间号到房间的映射
	rooms map[string]*game.Room
	// 房间号 -> 观众 ID -> 推送通道
	watchers map[string]map[string]chan dto.WatchPush

	cleanUpDone chan struct{}
}

func NewRoomService(cfg *config.AppConfig) *RoomService {
	state := &roomServiceState{
		rooms:       make(map[string]*game.Room),
		watchers:    make(map[string]map[string]chan dto.WatchPush),
		cleanUpDone: make(chan struct{}),
	}

	rs := &RoomService{
		cfg:   cfg,
		state: state,
	}

	// 启动一个 goroutine 定期清理闲置的房间
	go rs.startCleanupLoop()

	return rs
}

func (rs *RoomService) startCleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	ttl := time.Duration(rs.cfg.RoomTTLMin) * time.Minute

	for {
		select {
		case <-rs.state.cleanUpDone:
			return

		case <-ticker.C:
			rs.state.mu.Lock()

			for code, room := range rs.state.rooms {
				if !isRoomExpired(room, ttl) {
					continue
				}

				zap.S().Infof("房间 %s 闲置超过 %v，开始清理", code, ttl)

				delete(rs.state.rooms, code)

				for _, ch := range rs.state.watchers[code] {
					close(ch)
				}
				delete(rs.state.watchers, code)
			}

			rs.state.mu.Unlock()
		}
	}
}

func (rs *RoomService) Close() {
	close(rs.state.cleanUpDone)
}

func (rs *RoomService) getRoom(code string) (*game.Room, error) {
	rs.state.mu.RLock()
	defer rs.state.mu.RUnlock()

	room, ok := rs.state.rooms[code]
	if !ok {
		return nil, gameerr.NotFound("房间不存在")
	}

	return room, nil
}

func (rs *RoomService) RoomExists(code string) bool {
	rs.state.mu.RLock()
	defer rs.state.mu.RUnlock()

	_, ok := rs.state.rooms[code]

	return ok
}

// CreateRoom 开一个新房间，返回房间号和主持人口令。
// 房间号是短数字串，撞号就重新生成
func (rs *RoomService) CreateRoom() dto.CreateRoomResponse {
	rs.state.mu.Lock()
	defer rs.state.mu.Unlock()

	code := genRoomCode(rs.cfg.CodeLength)
	for {
		if _, exists := rs.state.rooms[code]; !exists {
			break
		}
		code = genRoomCode(rs.cfg.CodeLength)
	}

	secret := genID(rs.cfg.SecretLength)

	rs.state.rooms[code] = game.NewRoom(code, secret)

	zap.S().Infof("房间 %s 已创建", code)

	return dto.CreateRoomResponse{
		RoomCode:   code,
		HostSecret: secret,
	}
}

func (rs *RoomService) JoinRoom(req dto.JoinRoomRequest) (dto.JoinRoomResponse, error) {
	if req.RoomCode == "" {
		return dto.JoinRoomResponse{}, gameerr.Validation("房间号不能为空")
	}
	if req.Name == "" {
		return dto.JoinRoomResponse{}, gameerr.Validation("玩家名称不能为空")
	}

	room, err := rs.getRoom(req.RoomCode)
	if err != nil {
		return dto.JoinRoomResponse{}, err
	}

	playerID := genID(rs.cfg.SecretLength)

	room.Lock()
	player, err := room.AddPlayer(playerID, req.Name)
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		zap.S().Warnf("房间 %s 拒绝 %s 加入：%v", req.RoomCode, req.Name, err)
		return dto.JoinRoomResponse{}, err
	}

	zap.S().Infof("房间 %s 接纳玩家 %s(%s)", req.RoomCode, player.Name, player.ID)

	rs.broadcastVillageState(req.RoomCode)

	return dto.JoinRoomResponse{
		RoomCode: req.RoomCode,
		PlayerID: player.ID,
	}, nil
}

// WatchRoom 注册一个村庄视角的观众，返回推送通道
func (rs *RoomService) WatchRoom(code string) (string, <-chan dto.WatchPush, error) {
	rs.state.mu.Lock()
	defer rs.state.mu.Unlock()

	if _, ok := rs.state.rooms[code]; !ok {
		return "", nil, gameerr.NotFound("房间不存在")
	}

	watcherID := genID(8)
	ch := make(chan dto.WatchPush, 16)

	if rs.state.watchers[code] == nil {
		rs.state.watchers[code] = make(map[string]chan dto.WatchPush)
	}
	rs.state.watchers[code][watcherID] = ch

	zap.S().Debugf("房间 %s 新增观众 %s", code, watcherID)

	return watcherID, ch, nil
}

func (rs *RoomService) Unwatch(code, watcherID string) {
	rs.state.mu.Lock()
	defer rs.state.mu.Unlock()

	if ch, ok := rs.state.watchers[code][watcherID]; ok {
		close(ch)
		delete(rs.state.watchers[code], watcherID)
	}
}

// 每次状态变更后把村庄快照推给所有观众。
// 通道已满的观众直接丢帧，绝不阻塞房间；
// 发送全程持注册表读锁，保证不会撞上被关闭的通道
func (rs *RoomService) broadcastVillageState(code string) {
	rs.state.mu.RLock()
	defer rs.state.mu.RUnlock()

	room := rs.state.rooms[code]
	watchers := rs.state.watchers[code]
	if room == nil || len(watchers) == 0 {
		return
	}

	room.RLock()
	push := dto.WatchPush{
		ResponseType: dto.PUSH_VILLAGE_STATE,
		Data:         buildVillageState(room),
	}
	room.RUnlock()

	for watcherID, ch := range watchers {
		select {
		case ch <- push:
		default:
			zap.L().Warn(
				"村庄快照推送失败：观众通道已满",
				zap.String("room_code", code),
				zap.String("watcher_id", watcherID),
			)
		}
	}
}
