package game

import (
	"maps"
	"testing"

	"werewolf-be/internal/gameerr"
)

func newDayRoom(entries ...rosterEntry) *Room {
	room := newNightRoom(entries...)
	room.Phase = PHASE_DAY
	room.DayNumber = 1

	return room
}

func TestResolveDay_RejectsOutsideDay(t *testing.T) {
	room := newNightRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)

	_, err := room.ResolveDay()
	if !gameerr.IsKind(err, gameerr.KindInvalidPhase) {
		t.Fatalf("want INVALID_PHASE, got %v", err)
	}
}

func TestResolveDay_RejectsAfterGameEnded(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)
	room.Winner = WINNER_VILLAGE

	_, err := room.ResolveDay()
	if !gameerr.IsKind(err, gameerr.KindGameEnded) {
		t.Fatalf("want GAME_ENDED, got %v", err)
	}
}

func TestResolveDay_NoVotesReportsWinnerWithoutPersisting(t *testing.T) {
	// 狼人已经占优，但本轮没有产生死亡，胜负只上报不落盘
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"adam", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)
	room.VotingStatus = VOTING_VOTING

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if result.Lynched != "" || result.Message != "无人被放逐。" {
		t.Fatalf("want empty lynch, got %+v", result)
	}
	if result.Winner != WINNER_WEREWOLVES {
		t.Fatalf("standings should still be reported, got %q", result.Winner)
	}
	if room.Winner != "" || room.Phase != PHASE_DAY {
		t.Fatalf("room must stay open, got winner %q phase %q", room.Winner, room.Phase)
	}
	if room.VotingStatus != VOTING_IDLE {
		t.Fatalf("voting should reset, got %q", room.VotingStatus)
	}
}

func TestResolveDay_MajorityLynched(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"adam", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
		rosterEntry{"dave", ROLE_GUARD},
	)
	room.VotingStatus = VOTING_VOTING

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "alice")
	mustSubmit(t, room, "carol", ACTION_VOTE_LYNCH, "alice")
	mustSubmit(t, room, "adam", ACTION_VOTE_LYNCH, "bob")

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if result.Lynched != "alice" || result.Message != "alice 被放逐出局。" {
		t.Fatalf("want alice lynched, got %+v", result)
	}
	if room.Players["alice"].Alive {
		t.Fatalf("alice should be dead")
	}
	if result.Winner != "" || room.Winner != "" {
		t.Fatalf("one wolf remains, game goes on, got %q", result.Winner)
	}
	if room.VotingStatus != VOTING_IDLE {
		t.Fatalf("voting should reset after the verdict")
	}
}

func TestResolveDay_LastVoteWins(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
	)

	mustSubmit(t, room, "carol", ACTION_VOTE_LYNCH, "alice")
	mustSubmit(t, room, "carol", ACTION_VOTE_LYNCH, "bob")

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if result.Lynched != "bob" {
		t.Fatalf("revote should replace the earlier ballot, got %q", result.Lynched)
	}
}

func TestResolveDay_TieGoesToFirstCandidate(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
		rosterEntry{"dave", ROLE_GUARD},
	)

	mustSubmit(t, room, "carol", ACTION_VOTE_LYNCH, "alice")
	mustSubmit(t, room, "dave", ACTION_VOTE_LYNCH, "bob")

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if result.Lynched != "alice" {
		t.Fatalf("tie must go to the candidate reached first, got %q", result.Lynched)
	}
}

func TestResolveDay_PrinceSparedExactlyOnce(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"adam", ROLE_WEREWOLF},
		rosterEntry{"grace", ROLE_PRINCE},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
	)

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "grace")
	mustSubmit(t, room, "carol", ACTION_VOTE_LYNCH, "grace")

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	if !result.PrinceRevealed {
		t.Fatalf("prince should be revealed")
	}
	if result.Lynched != "grace" {
		t.Fatalf("report carries the prince's name, got %q", result.Lynched)
	}
	if result.Message != "grace 是王子，属于村民阵营！这一次不会死。" {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if !room.Players["grace"].Alive {
		t.Fatalf("prince survives the first verdict")
	}
	if !room.Players["grace"].PrinceRevealed {
		t.Fatalf("reveal flag should stick")
	}

	// 第二次被投出就没有豁免了
	if err := room.SetPhase(PHASE_NIGHT); err != nil {
		t.Fatalf("set night failed: %v", err)
	}
	if err := room.SetPhase(PHASE_DAY); err != nil {
		t.Fatalf("set day failed: %v", err)
	}

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "grace")

	result, err = room.ResolveDay()
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if result.PrinceRevealed {
		t.Fatalf("the immunity fires only once")
	}
	if room.Players["grace"].Alive {
		t.Fatalf("prince dies on the second verdict")
	}
}

func TestResolveDay_UnknownCandidateChangesNothing(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
	)

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "ghost")

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if result.Lynched != "" || result.Message != "找不到被投票的玩家。" {
		t.Fatalf("unresolvable candidate is ignored, got %+v", result)
	}

	for _, p := range room.Players {
		if !p.Alive {
			t.Fatalf("nobody should die, %s did", p.Name)
		}
	}
}

func TestResolveDay_VotesFromEarlierDaysIgnored(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
	)

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "alice")

	if err := room.SetPhase(PHASE_NIGHT); err != nil {
		t.Fatalf("set night failed: %v", err)
	}
	if err := room.SetPhase(PHASE_DAY); err != nil {
		t.Fatalf("set day failed: %v", err)
	}

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if result.Lynched != "" {
		t.Fatalf("yesterday's ballot must not count today, got %q", result.Lynched)
	}
	if !room.Players["alice"].Alive {
		t.Fatalf("alice should still be alive")
	}
}

func TestResolveDay_VillageWinPersisted(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
		rosterEntry{"dave", ROLE_GUARD},
	)

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "alice")
	mustSubmit(t, room, "carol", ACTION_VOTE_LYNCH, "alice")

	result, err := room.ResolveDay()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if result.Winner != WINNER_VILLAGE {
		t.Fatalf("lynching the last wolf ends the game, got %q", result.Winner)
	}
	if room.Winner != WINNER_VILLAGE || room.Phase != PHASE_ENDED {
		t.Fatalf("winner should persist, got %q %q", room.Winner, room.Phase)
	}
}

func TestTallyVotes_CountsRevotesAndOrder(t *testing.T) {
	room := newDayRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
		rosterEntry{"carol", ROLE_SEER},
		rosterEntry{"dave", ROLE_GUARD},
	)

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "alice")
	mustSubmit(t, room, "carol", ACTION_VOTE_LYNCH, "dave")
	mustSubmit(t, room, "dave", ACTION_VOTE_LYNCH, "alice")
	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "dave")

	candidate, votes := room.TallyVotes()

	want := map[string]int{"dave": 2, "alice": 1}
	if !maps.Equal(votes, want) {
		t.Fatalf("want votes %v, got %v", want, votes)
	}
	if candidate != "dave" {
		t.Fatalf("want candidate dave, got %q", candidate)
	}

	// 纯查询，重复调用结果一致
	again, _ := room.TallyVotes()
	if again != candidate {
		t.Fatalf("preview must be side-effect free, got %q then %q", candidate, again)
	}
}

func TestTallyVotes_IgnoresNightBallots(t *testing.T) {
	room := newNightRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)

	// 夜晚盖的章在白天计票时被过滤掉
	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "alice")

	room.Phase = PHASE_DAY
	room.DayNumber = 1

	candidate, votes := room.TallyVotes()
	if candidate != "" || len(votes) != 0 {
		t.Fatalf("night ballots must not count, got %q %v", candidate, votes)
	}
}
