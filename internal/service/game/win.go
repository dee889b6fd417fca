package game

// ComputeWinner 对当前名单重新推导胜负：
// 狼人全灭且还有活人 -> 村民胜；狼人数量不少于其他存活者 -> 狼人胜。
// 纯函数，从不缓存，每次产生死亡后都重新计算
func (r *Room) ComputeWinner() string {
	aliveWolves := 0
	aliveOthers := 0

	for _, p := range r.Players {
		if !p.Alive {
			continue
		}

		if p.Role == ROLE_WEREWOLF {
			aliveWolves++
		} else {
			aliveOthers++
		}
	}

	if aliveWolves == 0 && aliveOthers > 0 {
		return WINNER_VILLAGE
	}
	if aliveWolves > 0 && aliveWolves >= aliveOthers {
		return WINNER_WEREWOLVES
	}

	return ""
}
