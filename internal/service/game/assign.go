package game

import (
	"math/rand/v2"

	"werewolf-be/internal/gameerr"
)

// 六个特殊身份的补位顺序，狼人之后依次分配
var specialRoles = []Role{
	ROLE_SEER,
	ROLE_WITCH,
	ROLE_GUARD,
	ROLE_GAMBLER,
	ROLE_PRINCE,
	ROLE_MAGE,
}

// Start 洗牌分配身份并进入第一夜。
// 狼人数量：不足 5 人给 1 只，否则 2 只；特殊身份依次补位，
// 多出的座位全是村民，人数不够时砍掉末尾的特殊身份。
// 允许主持人中途重开，一切游戏状态都会被重置
func (r *Room) Start(minPlayers int) error {
	n := len(r.Players)
	if n < minPlayers {
		return gameerr.Newf(gameerr.KindValidation, "至少需要 %d 名玩家", minPlayers)
	}

	r.Winner = ""

	numWolves := 1
	if n >= 5 {
		numWolves = 2
	}

	baseRoles := make([]Role, 0, numWolves+len(specialRoles))
	for i := 0; i < numWolves; i++ {
		baseRoles = append(baseRoles, ROLE_WEREWOLF)
	}
	baseRoles = append(baseRoles, specialRoles...)

	ids := append([]string(nil), r.JoinOrder...)
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	assigned := baseRoles
	if n <= len(baseRoles) {
		assigned = baseRoles[:n]
	} else {
		for i := len(baseRoles); i < n; i++ {
			assigned = append(assigned, ROLE_VILLAGER)
		}
	}

	for i, id := range ids {
		p := r.Players[id]
		p.Role = assigned[i]
		p.Alive = true
		p.MutedToday = false
		p.PrinceRevealed = false
	}

	r.Started = true
	r.Phase = PHASE_NIGHT
	r.NightNumber = 1
	r.DayNumber = 0
	r.Actions = make([]Action, 0)
	r.DeathsLastNight = make([]string, 0)
	r.MutedForToday = make([]string, 0)
	r.ActiveCall = ""
	r.WitchHasHeal = true
	r.WitchHasPoison = true
	r.resetVoting()

	return nil
}
