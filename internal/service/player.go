package service

import (
	"werewolf-be/internal/gameerr"
	"werewolf-be/internal/service/dto"
	"werewolf-be/internal/service/game"

	"go.uber.org/zap"
)

// SubmitAction 记录一名玩家的行动。行动只进日志，
// 结算前不产生任何效果，所以这里不向观众推送
func (rs *RoomService) SubmitAction(req dto.SubmitActionRequest) (dto.SubmitActionResponse, error) {
	kind, err := game.ParseActionKind(req.ActionType)
	if err != nil {
		return dto.SubmitActionResponse{}, err
	}

	room, err := rs.getRoom(req.RoomCode)
	if err != nil {
		return dto.SubmitActionResponse{}, err
	}

	room.Lock()
	err = room.SubmitAction(req.PlayerID, kind, req.TargetName)
	if err == nil {
		room.Touch()
	}
	room.Unlock()

	if err != nil {
		return dto.SubmitActionResponse{}, err
	}

	zap.L().Debug(
		"收到行动",
		zap.String("room_code", req.RoomCode),
		zap.String("player_id", req.PlayerID),
		zap.String("action_type", req.ActionType),
	)

	return dto.SubmitActionResponse{Ok: true}, nil
}

// PlayerState 返回单个玩家的视角：自己的身份、公开名单，
// 狼人额外能看到队友
func (rs *RoomService) PlayerState(code, playerID string) (dto.PlayerStateResponse, error) {
	room, err := rs.getRoom(code)
	if err != nil {
		return dto.PlayerStateResponse{}, err
	}

	room.RLock()
	defer room.RUnlock()

	player, ok := room.Players[playerID]
	if !ok {
		return dto.PlayerStateResponse{}, gameerr.NotFound("玩家不在此房间")
	}

	wolfMates := make([]string, 0)
	if player.Role == game.ROLE_WEREWOLF {
		for _, id := range room.JoinOrder {
			if p := room.Players[id]; p.Role == game.ROLE_WEREWOLF && p.ID != playerID {
				wolfMates = append(wolfMates, p.Name)
			}
		}
	}

	return dto.PlayerStateResponse{
		RoomCode:        room.Code,
		Player:          *player,
		Players:         buildPlayerPublics(room),
		Phase:           room.Phase,
		NightNumber:     room.NightNumber,
		DayNumber:       room.DayNumber,
		DeathsLastNight: room.DeathsLastNight,
		ActiveCall:      room.ActiveCall,
		WolfMates:       wolfMates,
		Winner:          room.Winner,
	}, nil
}

// SeerResult 查验某个名字是否狼人
func (rs *RoomService) SeerResult(req dto.SeerResultRequest) (dto.SeerResultResponse, error) {
	if req.TargetName == "" {
		return dto.SeerResultResponse{}, gameerr.Validation("缺少查验目标")
	}

	room, err := rs.getRoom(req.RoomCode)
	if err != nil {
		return dto.SeerResultResponse{}, err
	}

	room.RLock()
	defer room.RUnlock()

	target := room.FindPlayerByName(req.TargetName)
	if target == nil {
		return dto.SeerResultResponse{}, gameerr.NotFound("找不到被查验的玩家")
	}

	return dto.SeerResultResponse{
		TargetName: target.Name,
		IsWerewolf: target.Role == game.ROLE_WEREWOLF,
	}, nil
}

// WitchInfo 告诉女巫今晚的刀口和她剩余的药。只有存活的女巫能看
func (rs *RoomService) WitchInfo(code, playerID string) (dto.WitchInfoResponse, error) {
	room, err := rs.getRoom(code)
	if err != nil {
		return dto.WitchInfoResponse{}, err
	}

	room.RLock()
	defer room.RUnlock()

	player, ok := room.Players[playerID]
	if !ok || player.Role != game.ROLE_WITCH || !player.Alive {
		return dto.WitchInfoResponse{}, gameerr.Forbidden("只有存活的女巫可以查看")
	}

	victim := room.CurrentWolfTarget()

	return dto.WitchInfoResponse{
		VictimName: victim,
		CanHeal:    victim != "" && room.WitchHasHeal,
		CanPoison:  room.WitchHasPoison,
	}, nil
}

// VillageState 返回大屏用的公开快照，不带任何身份信息
func (rs *RoomService) VillageState(code string) (dto.VillageStateResponse, error) {
	room, err := rs.getRoom(code)
	if err != nil {
		return dto.VillageStateResponse{}, err
	}

	room.RLock()
	defer room.RUnlock()

	return buildVillageState(room), nil
}

// 调用方需持有房间读锁
func buildVillageState(room *game.Room) dto.VillageStateResponse {
	return dto.VillageStateResponse{
		RoomCode:    room.Code,
		Phase:       room.Phase,
		NightNumber: room.NightNumber,
		DayNumber:   room.DayNumber,
		Players:     buildPlayerPublics(room),
		Winner:      room.Winner,
	}
}

func buildPlayerPublics(room *game.Room) []dto.PlayerPublic {
	publics := make([]dto.PlayerPublic, 0, len(room.JoinOrder))
	for _, id := range room.JoinOrder {
		p := room.Players[id]
		publics = append(publics, dto.PlayerPublic{
			Name:       p.Name,
			Alive:      p.Alive,
			MutedToday: p.MutedToday,
		})
	}

	return publics
}
