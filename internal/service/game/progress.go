package game

import "werewolf-be/internal/gameerr"

// 每个可唤醒身份当晚合格的行动类型；女巫单独处理
var roleActionKinds = map[Role][]ActionKind{
	ROLE_MAGE:     {ACTION_MAGE_MUTE},
	ROLE_GUARD:    {ACTION_GUARD_PROTECT},
	ROLE_WEREWOLF: {ACTION_WOLF_KILL},
	ROLE_SEER:     {ACTION_SEER_INSPECT},
	ROLE_GAMBLER:  {ACTION_GAMBLER_BET, ACTION_GAMBLER_SKIP},
}

// PendingForRole 报告该身份当晚还没完成决定的存活玩家，
// 主持人靠它判断能否推进夜晚。纯查询，没有副作用。
// 女巫必须同时给出解药决定和毒药决定（各自可以反复改，最后一次为准）；
// 其余身份当晚有一条合格行动即算完成；
// 没有存活持有者的身份直接视为完成
func (r *Room) PendingForRole(role Role) (ProgressResult, error) {
	if _, ok := roleActionKinds[role]; !ok && role != ROLE_WITCH {
		return ProgressResult{}, gameerr.InvalidRole("该身份不支持进度查询")
	}

	holders := make([]*Player, 0)
	for _, id := range r.JoinOrder {
		if p := r.Players[id]; p.Alive && p.Role == role {
			holders = append(holders, p)
		}
	}

	if len(holders) == 0 {
		return ProgressResult{Pending: []string{}, Done: true}, nil
	}

	night := r.currentNightActions()
	pending := make([]string, 0)

	if role == ROLE_WITCH {
		for _, p := range holders {
			hasHealDecision := false
			hasPoisonDecision := false

			for _, a := range night {
				if a.PlayerID != p.ID {
					continue
				}

				switch a.Kind {
				case ACTION_WITCH_HEAL, ACTION_WITCH_NO_HEAL:
					hasHealDecision = true
				case ACTION_WITCH_POISON, ACTION_WITCH_NO_POISON:
					hasPoisonDecision = true
				}
			}

			if !(hasHealDecision && hasPoisonDecision) {
				pending = append(pending, p.Name)
			}
		}

		return ProgressResult{Pending: pending, Done: len(pending) == 0}, nil
	}

	allowed := roleActionKinds[role]

	for _, p := range holders {
		acted := false

		for _, a := range night {
			if a.PlayerID != p.ID {
				continue
			}

			for _, kind := range allowed {
				if a.Kind == kind {
					acted = true
					break
				}
			}
			if acted {
				break
			}
		}

		if !acted {
			pending = append(pending, p.Name)
		}
	}

	return ProgressResult{Pending: pending, Done: len(pending) == 0}, nil
}
