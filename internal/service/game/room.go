package game

import (
	"sync"
	"time"

	"werewolf-be/internal/gameerr"
)

// Room 是聚合根，所有游戏状态都只通过它的方法变更。
// 每个房间自带一把读写锁作为串行化边界：变更操作持写锁，
// 快照和进度查询持读锁，保证读不到结算到一半的状态。
type Room struct {
	mu sync.RWMutex

	Code       string `json:"code"`
	HostSecret string `json:"-"`

	// 名单以玩家 ID 为键；JoinOrder 记录加入顺序，
	// 让视图输出和重名解析有稳定的次序
	Players   map[string]*Player `json:"players"`
	JoinOrder []string           `json:"-"`

	Started bool  `json:"started"`
	Phase   Phase `json:"phase"`

	// 夜数与天数各自独立递增，只在进入对应阶段时 +1
	NightNumber int `json:"night_number"`
	DayNumber   int `json:"day_number"`

	Actions []Action `json:"-"`

	// 单次消耗品，只能 true -> false，用掉即永久失效
	WitchHasHeal   bool `json:"witch_has_heal"`
	WitchHasPoison bool `json:"witch_has_poison"`

	// 只记录不参与任何规则，为"不可连守同一人"之类的扩展保留
	LastGuardTarget string `json:"last_guard_target,omitempty"`

	// 当前被主持人唤醒的身份，仅用于主持端界面排程
	ActiveCall Role `json:"active_call,omitempty"`

	VotingStatus string `json:"voting_status"`
	// 主持人宣布的投票时长，服务端不计时，只是参考值
	VoteDurationSec int `json:"vote_duration_sec,omitempty"`

	DeathsLastNight []string `json:"deaths_last_night"`
	MutedForToday   []string `json:"muted_for_today"`

	// 为空表示尚未分出胜负；一旦填入即永久，Phase 同步进入 ended
	Winner string `json:"winner,omitempty"`

	LastActive time.Time `json:"-"`
}

func NewRoom(code, hostSecret string) *Room {
	return &Room{
		Code:            code,
		HostSecret:      hostSecret,
		Players:         make(map[string]*Player),
		JoinOrder:       make([]string, 0),
		Phase:           PHASE_LOBBY,
		Actions:         make([]Action, 0),
		WitchHasHeal:    true,
		WitchHasPoison:  true,
		VotingStatus:    VOTING_IDLE,
		DeathsLastNight: make([]string, 0),
		MutedForToday:   make([]string, 0),
		LastActive:      time.Now(),
	}
}

func (r *Room) Lock()    { r.mu.Lock() }
func (r *Room) Unlock()  { r.mu.Unlock() }
func (r *Room) RLock()   { r.mu.RLock() }
func (r *Room) RUnlock() { r.mu.RUnlock() }

// Touch 刷新活跃时间，调用方需持有写锁
func (r *Room) Touch() {
	r.LastActive = time.Now()
}

// AddPlayer 在游戏开始前接纳新玩家，开始后不再允许加入
func (r *Room) AddPlayer(id, name string) (*Player, error) {
	if r.Started {
		return nil, gameerr.InvalidPhase("游戏已开始，无法加入")
	}

	player := &Player{
		ID:    id,
		Name:  name,
		Alive: true,
	}

	r.Players[id] = player
	r.JoinOrder = append(r.JoinOrder, id)

	return player, nil
}

// FindPlayerByName 按加入顺序查找，重名时命中最早加入者
func (r *Room) FindPlayerByName(name string) *Player {
	for _, id := range r.JoinOrder {
		if p := r.Players[id]; p.Name == name {
			return p
		}
	}

	return nil
}

// SubmitAction 追加一条行动记录，阶段与轮次以房间当前计数为准，
// 过期客户端无法把行动塞进已经结算过的轮次。
// 行动类型是否匹配提交者身份在这里不校验，结算器会忽略无关类型
func (r *Room) SubmitAction(playerID string, kind ActionKind, targetName string) error {
	player, ok := r.Players[playerID]
	if !ok {
		return gameerr.NotFound("玩家不在此房间")
	}
	if !player.Alive {
		return gameerr.DeadPlayer("你已出局，无法行动")
	}
	if r.Winner != "" {
		return gameerr.GameEnded("游戏已经结束")
	}

	action := Action{
		PlayerID:   playerID,
		Kind:       kind,
		TargetName: targetName,
		Phase:      r.Phase,
	}

	switch r.Phase {
	case PHASE_NIGHT:
		action.NightNumber = r.NightNumber
	case PHASE_DAY:
		action.DayNumber = r.DayNumber
	}

	r.Actions = append(r.Actions, action)

	return nil
}

// SetPhase 由主持人驱动阶段轮转。进入夜晚开启新一夜并清除日间状态；
// 行动日志不清空，盖章的轮次会把旧行动排除在新结算之外
func (r *Room) SetPhase(target Phase) error {
	if r.Winner != "" {
		return gameerr.GameEnded("游戏已经结束")
	}

	r.Phase = target

	switch target {
	case PHASE_NIGHT:
		r.NightNumber++
		r.DeathsLastNight = make([]string, 0)
		r.MutedForToday = make([]string, 0)
		r.ActiveCall = ""
		r.resetVoting()

		for _, p := range r.Players {
			p.MutedToday = false
		}

	case PHASE_DAY:
		r.DayNumber++
		r.ActiveCall = ""
		r.resetVoting()
	}

	return nil
}

// SetActiveCall 标记当前被唤醒的身份
func (r *Room) SetActiveCall(role Role) error {
	if r.Winner != "" {
		return gameerr.GameEnded("游戏已经结束")
	}

	r.ActiveCall = role

	return nil
}

// StartVoting 开启白天的放逐投票
func (r *Room) StartVoting(durationSec int) error {
	if r.Phase != PHASE_DAY {
		return gameerr.InvalidPhase("只能在白天发起投票")
	}
	if r.Winner != "" {
		return gameerr.GameEnded("游戏已经结束")
	}

	r.VotingStatus = VOTING_VOTING
	r.VoteDurationSec = durationSec

	return nil
}

func (r *Room) resetVoting() {
	r.VotingStatus = VOTING_IDLE
	r.VoteDurationSec = 0
}

// 当前夜的行动窗口
func (r *Room) currentNightActions() []Action {
	acts := make([]Action, 0)

	for _, a := range r.Actions {
		if a.Phase == PHASE_NIGHT && a.NightNumber == r.NightNumber {
			acts = append(acts, a)
		}
	}

	return acts
}
