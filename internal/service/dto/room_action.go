package dto

// 玩家提交行动，action_type 必须属于封闭的行动类型集合
type SubmitActionRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerID   string `json:"player_id"`
	ActionType string `json:"action_type"`
	TargetName string `json:"target_name,omitempty"`
}

type SubmitActionResponse struct {
	Ok bool `json:"ok"`
}

type SeerResultRequest struct {
	RoomCode   string `json:"room_code"`
	TargetName string `json:"target_name"`
}

type SeerResultResponse struct {
	TargetName string `json:"target_name"`
	IsWerewolf bool   `json:"is_werewolf"`
}

// 女巫视角：今晚的刀口与剩余药水
type WitchInfoResponse struct {
	VictimName string `json:"victim_name,omitempty"`
	CanHeal    bool   `json:"can_heal"`
	CanPoison  bool   `json:"can_poison"`
}
