package game

import "werewolf-be/internal/gameerr"

// 游戏阶段
type Phase string

const (
	PHASE_LOBBY Phase = "lobby" // 大厅：等待玩家加入
	PHASE_NIGHT Phase = "night" // 夜晚：技能身份行动
	PHASE_DAY   Phase = "day"   // 白天：讨论与放逐投票
	PHASE_ENDED Phase = "ended" // 结束：已分出胜负
)

// 玩家身份
type Role string

const (
	ROLE_WEREWOLF Role = "werewolf" // 狼人
	ROLE_SEER     Role = "seer"     // 预言家
	ROLE_WITCH    Role = "witch"    // 女巫
	ROLE_GUARD    Role = "guard"    // 守卫
	ROLE_GAMBLER  Role = "gambler"  // 赌徒
	ROLE_PRINCE   Role = "prince"   // 王子
	ROLE_MAGE     Role = "mage"     // 法师
	ROLE_VILLAGER Role = "villager" // 村民
)

// 行动类型是一个封闭集合，提交边界上解析失败会直接拒绝，
// 但结算器只按类型过滤，不校验提交者身份（与身份无关的提交静默无效）
type ActionKind string

const (
	ACTION_MAGE_MUTE       ActionKind = "mage_mute"       // 法师禁言
	ACTION_GUARD_PROTECT   ActionKind = "guard_protect"   // 守卫守护
	ACTION_WOLF_KILL       ActionKind = "wolf_kill"       // 狼人袭击
	ACTION_GAMBLER_BET     ActionKind = "gambler_bet"     // 赌徒下注
	ACTION_GAMBLER_SKIP    ActionKind = "gambler_skip"    // 赌徒过
	ACTION_WITCH_HEAL      ActionKind = "witch_heal"      // 女巫用解药
	ACTION_WITCH_NO_HEAL   ActionKind = "witch_no_heal"   // 女巫不用解药
	ACTION_WITCH_POISON    ActionKind = "witch_poison"    // 女巫用毒药
	ACTION_WITCH_NO_POISON ActionKind = "witch_no_poison" // 女巫不用毒药
	ACTION_SEER_INSPECT    ActionKind = "seer_inspect"    // 预言家查验
	ACTION_VOTE_LYNCH      ActionKind = "vote_lynch"      // 放逐投票
)

// 胜利阵营
const (
	WINNER_VILLAGE    = "village"
	WINNER_WEREWOLVES = "werewolves"
)

// 投票进程
const (
	VOTING_IDLE   = "idle"
	VOTING_VOTING = "voting"
)

var allRoles = map[Role]struct{}{
	ROLE_WEREWOLF: {},
	ROLE_SEER:     {},
	ROLE_WITCH:    {},
	ROLE_GUARD:    {},
	ROLE_GAMBLER:  {},
	ROLE_PRINCE:   {},
	ROLE_MAGE:     {},
	ROLE_VILLAGER: {},
}

var allActionKinds = map[ActionKind]struct{}{
	ACTION_MAGE_MUTE:       {},
	ACTION_GUARD_PROTECT:   {},
	ACTION_WOLF_KILL:       {},
	ACTION_GAMBLER_BET:     {},
	ACTION_GAMBLER_SKIP:    {},
	ACTION_WITCH_HEAL:      {},
	ACTION_WITCH_NO_HEAL:   {},
	ACTION_WITCH_POISON:    {},
	ACTION_WITCH_NO_POISON: {},
	ACTION_SEER_INSPECT:    {},
	ACTION_VOTE_LYNCH:      {},
}

// ParseRole 在边界上把字符串解析为身份
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := allRoles[role]; !ok {
		return "", gameerr.Newf(gameerr.KindValidation, "未知的身份：%s", s)
	}

	return role, nil
}

// ParseActionKind 在边界上把字符串解析为行动类型
func ParseActionKind(s string) (ActionKind, error) {
	kind := ActionKind(s)
	if _, ok := allActionKinds[kind]; !ok {
		return "", gameerr.Newf(gameerr.KindValidation, "未知的行动类型：%s", s)
	}

	return kind, nil
}

// ParsePhase 只接受主持人可以手动切换的阶段，ended 只能由结算器进入
func ParsePhase(s string) (Phase, error) {
	switch phase := Phase(s); phase {
	case PHASE_LOBBY, PHASE_NIGHT, PHASE_DAY:
		return phase, nil
	default:
		return "", gameerr.Newf(gameerr.KindValidation, "无效的阶段：%s", s)
	}
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
	// 出局后依然保留在名单里，用于展示和胜负统计
	Alive bool `json:"alive"`
	// 每晚进入时清除
	MutedToday bool `json:"muted_today"`
	// 王子身份最多公开一次，公开后永不回退
	PrinceRevealed bool `json:"prince_revealed"`
}

// Action 只追加、不修改、不删除；
// 阶段和轮次在提交时由房间计数器盖章，客户端无法伪造
type Action struct {
	PlayerID   string     `json:"player_id"`
	Kind       ActionKind `json:"action_type"`
	TargetName string     `json:"target_name,omitempty"`
	Phase      Phase      `json:"phase"`
	// 夜晚提交时盖当前夜数，白天提交时盖当前天数，大厅提交两者皆 0
	NightNumber int `json:"night_number,omitempty"`
	DayNumber   int `json:"day_number,omitempty"`
}

// NightResult 是一次夜晚结算的产物
type NightResult struct {
	Deaths        []string `json:"deaths"`
	MutedForToday []string `json:"muted_for_today"`
	Winner        string   `json:"winner,omitempty"`
}

// DayResult 是一次放逐结算的产物
type DayResult struct {
	// 被投出的玩家名，王子首次豁免时也会填上名字（但人没死）
	Lynched        string `json:"lynched,omitempty"`
	PrinceRevealed bool   `json:"prince_revealed"`
	Message        string `json:"message"`
	Winner         string `json:"winner,omitempty"`
}

// ProgressResult 报告某个身份当晚还有哪些存活玩家未完成决定
type ProgressResult struct {
	Pending []string `json:"pending"`
	Done    bool     `json:"done"`
}
