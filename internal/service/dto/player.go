package dto

import "werewolf-be/internal/service/game"

// 公共视角的玩家信息，对任何人都不暴露身份
type PlayerPublic struct {
	Name       string `json:"name"`
	Alive      bool   `json:"alive"`
	MutedToday bool   `json:"muted_today"`
}

// 主持人视角的玩家信息，带身份，只在口令校验通过后返回
type HostPlayerView struct {
	Name           string    `json:"name"`
	Alive          bool      `json:"alive"`
	Role           game.Role `json:"role"`
	MutedToday     bool      `json:"muted_today"`
	PrinceRevealed bool      `json:"prince_revealed"`
}

type HostStateResponse struct {
	RoomCode        string           `json:"room_code"`
	Phase           game.Phase       `json:"phase"`
	NightNumber     int              `json:"night_number"`
	DayNumber       int              `json:"day_number"`
	Players         []HostPlayerView `json:"players"`
	DeathsLastNight []string         `json:"deaths_last_night"`
	WitchHasHeal    bool             `json:"witch_has_heal"`
	WitchHasPoison  bool             `json:"witch_has_poison"`
	ActiveCall      game.Role        `json:"active_call,omitempty"`
	VotingStatus    string           `json:"voting_status"`
	VoteDurationSec int              `json:"vote_duration_sec,omitempty"`
	Winner          string           `json:"winner,omitempty"`
}

// 玩家视角：自己的完整信息 + 其他人的公共信息；
// 狼人还能看到狼队友名单（无论死活）
type PlayerStateResponse struct {
	RoomCode        string         `json:"room_code"`
	Player          game.Player    `json:"player"`
	Players         []PlayerPublic `json:"players"`
	Phase           game.Phase     `json:"phase"`
	NightNumber     int            `json:"night_number"`
	DayNumber       int            `json:"day_number"`
	DeathsLastNight []string       `json:"deaths_last_night"`
	ActiveCall      game.Role      `json:"active_call,omitempty"`
	WolfMates       []string       `json:"wolf_mates"`
	Winner          string         `json:"winner,omitempty"`
}

// 旁观视角，不需要任何凭证
type VillageStateResponse struct {
	RoomCode    string         `json:"room_code"`
	Phase       game.Phase     `json:"phase"`
	NightNumber int            `json:"night_number"`
	DayNumber   int            `json:"day_number"`
	Players     []PlayerPublic `json:"players"`
	Winner      string         `json:"winner,omitempty"`
}

// 服务器通过 WebSocket 推送的信封
const PUSH_VILLAGE_STATE = "village_state"

type WatchPush struct {
	ResponseType string               `json:"response_type"`
	Data         VillageStateResponse `json:"data"`
}
