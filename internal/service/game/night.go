package game

import "werewolf-be/internal/gameerr"

// ResolveNight 每晚只调用一次，按固定优先级结算当晚行动：
// 禁言 -> 守卫 -> 狼人 -> 赌徒 -> 解药 -> 毒药。
// 狼人的目标被守护或被解药救下都会存活（两个条件独立判断），
// 赌徒下注和毒药不受任何保护影响。
// 只消费盖着当前夜数章的行动，更早的行动天然无效
func (r *Room) ResolveNight() (NightResult, error) {
	if r.Phase != PHASE_NIGHT {
		return NightResult{}, gameerr.InvalidPhase("只能在夜晚结算夜晚行动")
	}
	if r.Winner != "" {
		return NightResult{}, gameerr.GameEnded("游戏已经结束")
	}

	// 上一夜的产物整体丢弃
	r.DeathsLastNight = make([]string, 0)
	r.MutedForToday = make([]string, 0)
	for _, p := range r.Players {
		p.MutedToday = false
	}

	night := r.currentNightActions()

	// 1. 法师禁言：禁言死人或已被禁言者无害
	if mute := lastActionOfKinds(night, ACTION_MAGE_MUTE); mute != nil && mute.TargetName != "" {
		r.MutedForToday = append(r.MutedForToday, mute.TargetName)

		if target := r.FindPlayerByName(mute.TargetName); target != nil {
			target.MutedToday = true
		}
	}

	// 2. 守卫：记录今晚守护对象，没有行动则沿用上一夜的记录
	guardTarget := ""
	if guard := lastActionOfKinds(night, ACTION_GUARD_PROTECT); guard != nil {
		guardTarget = guard.TargetName
		r.LastGuardTarget = guardTarget
	}

	// 3. 狼人：按目标计票取最高
	wolfTarget := topWolfTarget(night)

	// 4. 赌徒：第二夜起才生效；只看下注，gambler_skip 不会取消更早的下注
	gamblerTarget := ""
	if r.NightNumber >= 2 {
		if bet := lastActionOfKinds(night, ACTION_GAMBLER_BET); bet != nil {
			gamblerTarget = bet.TargetName
		}
	}

	// 5. 解药：以最后一次决定为准
	useHeal := false
	if r.WitchHasHeal {
		if heal := lastActionOfKinds(night, ACTION_WITCH_HEAL, ACTION_WITCH_NO_HEAL); heal != nil {
			useHeal = heal.Kind == ACTION_WITCH_HEAL
		}
	}

	// 6. 毒药：以最后一次决定为准
	poisonTarget := ""
	if r.WitchHasPoison {
		if poison := lastActionOfKinds(night, ACTION_WITCH_POISON, ACTION_WITCH_NO_POISON); poison != nil &&
			poison.Kind == ACTION_WITCH_POISON {
			poisonTarget = poison.TargetName
		}
	}

	deaths := make([]string, 0, 3)

	// 狼人袭击：守护与解药独立判断；
	// 解药只在确实救下还站着的目标时才被消耗
	wolfVictim := wolfTarget
	if wolfVictim != "" && guardTarget != "" && wolfVictim == guardTarget {
		wolfVictim = ""
	}
	if wolfVictim != "" && useHeal {
		wolfVictim = ""
		r.WitchHasHeal = false
	}
	if wolfVictim != "" {
		deaths = append(deaths, wolfVictim)
	}

	// 赌徒下注：无条件生效
	if gamblerTarget != "" {
		deaths = append(deaths, gamblerTarget)
	}

	// 毒药：无条件生效，出手即消耗
	if poisonTarget != "" {
		deaths = append(deaths, poisonTarget)
		r.WitchHasPoison = false
	}

	// 去重并保留首次出现的顺序
	unique := dedupeNames(deaths)

	for _, name := range unique {
		if p := r.FindPlayerByName(name); p != nil && p.Alive {
			p.Alive = false
		}
	}

	r.DeathsLastNight = unique
	r.ActiveCall = ""

	winner := r.ComputeWinner()
	if winner != "" {
		r.Winner = winner
		r.Phase = PHASE_ENDED
		r.resetVoting()
	}

	return NightResult{
		Deaths:        unique,
		MutedForToday: r.MutedForToday,
		Winner:        winner,
	}, nil
}

// CurrentWolfTarget 返回当前夜狼人计票的领先目标，没有则为空。
// 女巫视图用它展示今晚的刀口
func (r *Room) CurrentWolfTarget() string {
	return topWolfTarget(r.currentNightActions())
}

// 最后一条属于给定类型集合的行动
func lastActionOfKinds(actions []Action, kinds ...ActionKind) *Action {
	for i := len(actions) - 1; i >= 0; i-- {
		for _, kind := range kinds {
			if actions[i].Kind == kind {
				return &actions[i]
			}
		}
	}

	return nil
}

// 狼人计票：按出现顺序统计每个目标的票数，取严格最高者，
// 平票时首票更早的目标获胜
func topWolfTarget(actions []Action) string {
	order := make([]string, 0)
	counts := make(map[string]int)

	for _, a := range actions {
		if a.Kind != ACTION_WOLF_KILL || a.TargetName == "" {
			continue
		}

		if _, ok := counts[a.TargetName]; !ok {
			order = append(order, a.TargetName)
		}
		counts[a.TargetName]++
	}

	best := ""
	bestCount := 0

	for _, name := range order {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}

	return best
}

func dedupeNames(names []string) []string {
	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	return unique
}
