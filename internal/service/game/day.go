package game

import (
	"fmt"

	"werewolf-be/internal/gameerr"
)

// ResolveDay 每天只调用一次，统计放逐投票并执行结果。
// 王子首次被投出时公开身份免死，豁免永久用掉；
// 无人得票则没有放逐，胜负照常检查
func (r *Room) ResolveDay() (DayResult, error) {
	if r.Phase != PHASE_DAY {
		return DayResult{}, gameerr.InvalidPhase("只能在白天结算放逐投票")
	}
	if r.Winner != "" {
		return DayResult{}, gameerr.GameEnded("游戏已经结束")
	}

	candidate, _ := r.TallyVotes()
	if candidate == "" {
		r.resetVoting()

		// 本轮无人死亡，胜负只上报不落盘
		return DayResult{
			PrinceRevealed: false,
			Message:        "无人被放逐。",
			Winner:         r.ComputeWinner(),
		}, nil
	}

	target := r.FindPlayerByName(candidate)
	if target == nil {
		r.resetVoting()

		return DayResult{
			PrinceRevealed: false,
			Message:        "找不到被投票的玩家。",
			Winner:         r.ComputeWinner(),
		}, nil
	}

	// 王子：首次被投出时公开身份，本次不死
	if target.Role == ROLE_PRINCE && !target.PrinceRevealed {
		target.PrinceRevealed = true

		winner := r.ComputeWinner()
		r.ActiveCall = ""
		r.resetVoting()

		if winner != "" {
			r.Winner = winner
			r.Phase = PHASE_ENDED
		}

		return DayResult{
			Lynched:        target.Name,
			PrinceRevealed: true,
			Message:        fmt.Sprintf("%s 是王子，属于村民阵营！这一次不会死。", target.Name),
			Winner:         winner,
		}, nil
	}

	if target.Alive {
		target.Alive = false
	}

	winner := r.ComputeWinner()
	r.ActiveCall = ""
	r.resetVoting()

	if winner != "" {
		r.Winner = winner
		r.Phase = PHASE_ENDED
	}

	return DayResult{
		Lynched:        target.Name,
		PrinceRevealed: false,
		Message:        fmt.Sprintf("%s 被放逐出局。", target.Name),
		Winner:         winner,
	}, nil
}

// TallyVotes 统计当前白天的放逐票，返回领先者与各目标票数。
// 每个玩家以最后一票为准；目标按首位投它的人出现的顺序计票，
// 平票时先达到最高票的目标获胜。纯查询，可反复调用，
// 主持端的投票预览也走这里
func (r *Room) TallyVotes() (string, map[string]int) {
	voterOrder := make([]string, 0)
	lastVote := make(map[string]string)

	for _, a := range r.Actions {
		if a.Kind != ACTION_VOTE_LYNCH || a.TargetName == "" {
			continue
		}
		if a.Phase != PHASE_DAY || a.DayNumber != r.DayNumber {
			continue
		}

		if _, ok := lastVote[a.PlayerID]; !ok {
			voterOrder = append(voterOrder, a.PlayerID)
		}
		lastVote[a.PlayerID] = a.TargetName
	}

	targetOrder := make([]string, 0, len(voterOrder))
	counts := make(map[string]int, len(voterOrder))

	for _, pid := range voterOrder {
		target := lastVote[pid]

		if _, ok := counts[target]; !ok {
			targetOrder = append(targetOrder, target)
		}
		counts[target]++
	}

	candidate := ""
	bestCount := 0

	for _, target := range targetOrder {
		if counts[target] > bestCount {
			candidate = target
			bestCount = counts[target]
		}
	}

	return candidate, counts
}
