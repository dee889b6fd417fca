package service

import (
	"werewolf-be/internal/gameerr"
	"werewolf-be/internal/service/dto"
	"werewolf-be/internal/service/game"

	"go.uber.org/zap"
)

// 校验主持人口令并返回房间。口令建房后不变，读一次即可
func (rs *RoomService) authHostRoom(code, secret string) (*game.Room, error) {
	room, err := rs.getRoom(code)
	if err != nil {
		return nil, err
	}

	room.RLock()
	ok := room.HostSecret == secret
	room.RUnlock()

	if !ok {
		return nil, gameerr.Forbidden("主持人口令错误")
	}

	return room, nil
}

func (rs *RoomService) StartGame(req dto.StartGameRequest) (dto.StartGameResponse, error) {
	room, err := rs.authHostRoom(req.RoomCode, req.HostSecret)
	if err != nil {
		return dto.StartGameResponse{}, err
	}

	room.Lock()
	err = room.Start(rs.cfg.MinPlayers)
	playerCount := len(room.Players)
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		return dto.StartGameResponse{}, err
	}

	zap.L().Info(
		"游戏开始",
		zap.String("room_code", req.RoomCode),
		zap.Int("player_count", playerCount),
	)

	rs.broadcastVillageState(req.RoomCode)

	return dto.StartGameResponse{
		Ok:      true,
		Message: "游戏已开始，现在是第 1 夜。",
	}, nil
}

func (rs *RoomService) SetPhase(req dto.SetPhaseRequest) (dto.SetPhaseResponse, error) {
	phase, err := game.ParsePhase(req.Phase)
	if err != nil {
		return dto.SetPhaseResponse{}, err
	}

	room, err := rs.authHostRoom(req.RoomCode, req.HostSecret)
	if err != nil {
		return dto.SetPhaseResponse{}, err
	}

	room.Lock()
	err = room.SetPhase(phase)
	resp := dto.SetPhaseResponse{
		Ok:          err == nil,
		Phase:       string(room.Phase),
		NightNumber: room.NightNumber,
		DayNumber:   room.DayNumber,
	}
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		return dto.SetPhaseResponse{}, err
	}

	zap.L().Info(
		"阶段切换",
		zap.String("room_code", req.RoomCode),
		zap.String("phase", string(phase)),
		zap.Int("night_number", resp.NightNumber),
		zap.Int("day_number", resp.DayNumber),
	)

	rs.broadcastVillageState(req.RoomCode)

	return resp, nil
}

func (rs *RoomService) CallRole(req dto.CallRoleRequest) (dto.CallRoleResponse, error) {
	role, err := game.ParseRole(req.Role)
	if err != nil {
		return dto.CallRoleResponse{}, err
	}

	room, err := rs.authHostRoom(req.RoomCode, req.HostSecret)
	if err != nil {
		return dto.CallRoleResponse{}, err
	}

	room.Lock()
	err = room.SetActiveCall(role)
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		return dto.CallRoleResponse{}, err
	}

	zap.S().Infof("房间 %s 正在唤醒 %s", req.RoomCode, role)

	rs.broadcastVillageState(req.RoomCode)

	return dto.CallRoleResponse{
		Ok:         true,
		ActiveCall: string(role),
	}, nil
}

func (rs *RoomService) ResolveNight(req dto.ResolveRequest) (dto.ResolveNightResponse, error) {
	room, err := rs.authHostRoom(req.RoomCode, req.HostSecret)
	if err != nil {
		return dto.ResolveNightResponse{}, err
	}

	room.Lock()
	result, err := room.ResolveNight()
	night := room.NightNumber
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		zap.L().Warn("夜晚结算被拒绝", zap.String("room_code", req.RoomCode), zap.Error(err))
		return dto.ResolveNightResponse{}, err
	}

	zap.L().Info(
		"夜晚结算完成",
		zap.String("room_code", req.RoomCode),
		zap.Int("night_number", night),
		zap.Strings("deaths", result.Deaths),
		zap.String("winner", result.Winner),
	)

	rs.broadcastVillageState(req.RoomCode)

	return dto.ResolveNightResponse{
		Ok:            true,
		Deaths:        result.Deaths,
		MutedForToday: result.MutedForToday,
		Winner:        result.Winner,
	}, nil
}

func (rs *RoomService) ResolveDay(req dto.ResolveRequest) (dto.ResolveDayResponse, error) {
	room, err := rs.authHostRoom(req.RoomCode, req.HostSecret)
	if err != nil {
		return dto.ResolveDayResponse{}, err
	}

	room.Lock()
	result, err := room.ResolveDay()
	day := room.DayNumber
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		zap.L().Warn("白天结算被拒绝", zap.String("room_code", req.RoomCode), zap.Error(err))
		return dto.ResolveDayResponse{}, err
	}

	zap.L().Info(
		"白天结算完成",
		zap.String("room_code", req.RoomCode),
		zap.Int("day_number", day),
		zap.String("lynched", result.Lynched),
		zap.Bool("prince_revealed", result.PrinceRevealed),
		zap.String("winner", result.Winner),
	)

	rs.broadcastVillageState(req.RoomCode)

	return dto.ResolveDayResponse{
		Ok:             true,
		Lynched:        result.Lynched,
		PrinceRevealed: result.PrinceRevealed,
		Message:        result.Message,
		Winner:         result.Winner,
	}, nil
}

func (rs *RoomService) StartVoting(req dto.StartVotingRequest) (dto.StartVotingResponse, error) {
	room, err := rs.authHostRoom(req.RoomCode, req.HostSecret)
	if err != nil {
		return dto.StartVotingResponse{}, err
	}

	room.Lock()
	err = room.StartVoting(req.DurationSec)
	status := room.VotingStatus
	duration := room.VoteDurationSec
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		return dto.StartVotingResponse{}, err
	}

	zap.S().Infof("房间 %s 开始投票，时长 %d 秒", req.RoomCode, duration)

	rs.broadcastVillageState(req.RoomCode)

	return dto.StartVotingResponse{
		Ok:              true,
		VotingStatus:    status,
		VoteDurationSec: duration,
	}, nil
}

// VotePreview 给主持人看当前票型，不落任何状态
func (rs *RoomService) VotePreview(req dto.ResolveRequest) (dto.VotePreviewResponse, error) {
	room, err := rs.authHostRoom(req.RoomCode, req.HostSecret)
	if err != nil {
		return dto.VotePreviewResponse{}, err
	}

	room.RLock()
	candidate, votes := room.TallyVotes()
	room.RUnlock()

	return dto.VotePreviewResponse{
		CandidateName: candidate,
		Votes:         votes,
	}, nil
}

func (rs *RoomService) RoleProgress(code, secret, roleName string) (dto.RoleProgressResponse, error) {
	room, err := rs.authHostRoom(code, secret)
	if err != nil {
		return dto.RoleProgressResponse{}, err
	}

	room.RLock()
	progress, err := room.PendingForRole(game.Role(roleName))
	room.RUnlock()

	if err != nil {
		return dto.RoleProgressResponse{}, err
	}

	return dto.RoleProgressResponse{
		Pending: progress.Pending,
		Done:    progress.Done,
	}, nil
}

// HostState 返回上帝视角，包含全部身份
func (rs *RoomService) HostState(code, secret string) (dto.HostStateResponse, error) {
	room, err := rs.authHostRoom(code, secret)
	if err != nil {
		return dto.HostStateResponse{}, err
	}

	room.RLock()
	defer room.RUnlock()

	players := make([]dto.HostPlayerView, 0, len(room.JoinOrder))
	for _, id := range room.JoinOrder {
		p := room.Players[id]
		players = append(players, dto.HostPlayerView{
			Name:           p.Name,
			Alive:          p.Alive,
			Role:           p.Role,
			MutedToday:     p.MutedToday,
			PrinceRevealed: p.PrinceRevealed,
		})
	}

	return dto.HostStateResponse{
		RoomCode:        room.Code,
		Phase:           room.Phase,
		NightNumber:     room.NightNumber,
		DayNumber:       room.DayNumber,
		Players:         players,
		DeathsLastNight: room.DeathsLastNight,
		WitchHasHeal:    room.WitchHasHeal,
		WitchHasPoison:  room.WitchHasPoison,
		ActiveCall:      room.ActiveCall,
		VotingStatus:    room.VotingStatus,
		VoteDurationSec: room.VoteDurationSec,
		Winner:          room.Winner,
	}, nil
}
