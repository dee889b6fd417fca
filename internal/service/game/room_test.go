package game

import (
	"testing"

	"werewolf-be/internal/gameerr"
)

func TestAddPlayer_RejectedAfterStart(t *testing.T) {
	room := newLobbyRoom(4)

	if err := room.Start(4); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	_, err := room.AddPlayer("late", "late")
	if !gameerr.IsKind(err, gameerr.KindInvalidPhase) {
		t.Fatalf("want INVALID_PHASE, got %v", err)
	}
}

func TestFindPlayerByName_FirstJoinedWinsOnDuplicate(t *testing.T) {
	room := NewRoom("1234", "secret00")

	if _, err := room.AddPlayer("id1", "张三"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, err := room.AddPlayer("id2", "张三"); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	p := room.FindPlayerByName("张三")
	if p == nil || p.ID != "id1" {
		t.Fatalf("want the earliest joiner, got %+v", p)
	}

	if room.FindPlayerByName("李四") != nil {
		t.Fatalf("unknown name should resolve to nil")
	}
}

func TestSubmitAction_StampsPhaseAndCycle(t *testing.T) {
	room := newNightRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)
	room.NightNumber = 3

	mustSubmit(t, room, "alice", ACTION_WOLF_KILL, "bob")

	got := room.Actions[len(room.Actions)-1]
	if got.Phase != PHASE_NIGHT || got.NightNumber != 3 || got.DayNumber != 0 {
		t.Fatalf("night stamp wrong: %+v", got)
	}

	room.Phase = PHASE_DAY
	room.DayNumber = 2

	mustSubmit(t, room, "bob", ACTION_VOTE_LYNCH, "alice")

	got = room.Actions[len(room.Actions)-1]
	if got.Phase != PHASE_DAY || got.DayNumber != 2 || got.NightNumber != 0 {
		t.Fatalf("day stamp wrong: %+v", got)
	}
}

func TestSubmitAction_LegalInLobby(t *testing.T) {
	room := NewRoom("1234", "secret00")

	if _, err := room.AddPlayer("alice", "alice"); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	mustSubmit(t, room, "alice", ACTION_VOTE_LYNCH, "bob")

	got := room.Actions[0]
	if got.Phase != PHASE_LOBBY || got.NightNumber != 0 || got.DayNumber != 0 {
		t.Fatalf("lobby stamp wrong: %+v", got)
	}
}

func TestSubmitAction_Rejections(t *testing.T) {
	room := newNightRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)

	err := room.SubmitAction("ghost", ACTION_WOLF_KILL, "bob")
	if !gameerr.IsKind(err, gameerr.KindNotFound) {
		t.Fatalf("unknown player: want NOT_FOUND, got %v", err)
	}

	room.Players["bob"].Alive = false

	err = room.SubmitAction("bob", ACTION_VOTE_LYNCH, "alice")
	if !gameerr.IsKind(err, gameerr.KindDeadPlayer) {
		t.Fatalf("dead player: want DEAD_PLAYER, got %v", err)
	}

	room.Winner = WINNER_WEREWOLVES

	err = room.SubmitAction("alice", ACTION_WOLF_KILL, "bob")
	if !gameerr.IsKind(err, gameerr.KindGameEnded) {
		t.Fatalf("ended game: want GAME_ENDED, got %v", err)
	}
}

func TestSetPhase_CountersAndCleanup(t *testing.T) {
	room := newNightRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)
	room.Players["bob"].MutedToday = true
	room.DeathsLastNight = []string{"someone"}
	room.ActiveCall = ROLE_SEER
	room.VotingStatus = VOTING_VOTING

	if err := room.SetPhase(PHASE_DAY); err != nil {
		t.Fatalf("set day failed: %v", err)
	}
	if room.DayNumber != 1 || room.ActiveCall != "" || room.VotingStatus != VOTING_IDLE {
		t.Fatalf("day entry cleanup wrong: %+v", room)
	}

	if err := room.SetPhase(PHASE_NIGHT); err != nil {
		t.Fatalf("set night failed: %v", err)
	}
	if room.NightNumber != 2 {
		t.Fatalf("want night 2, got %d", room.NightNumber)
	}
	if len(room.DeathsLastNight) != 0 || len(room.MutedForToday) != 0 {
		t.Fatalf("night entry should clear last night's output")
	}
	if room.Players["bob"].MutedToday {
		t.Fatalf("mute flags reset when the night begins")
	}

	room.Winner = WINNER_VILLAGE

	if err := room.SetPhase(PHASE_DAY); !gameerr.IsKind(err, gameerr.KindGameEnded) {
		t.Fatalf("want GAME_ENDED, got %v", err)
	}
}

func TestStartVoting_OnlyDuringDay(t *testing.T) {
	room := newNightRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)

	if err := room.StartVoting(60); !gameerr.IsKind(err, gameerr.KindInvalidPhase) {
		t.Fatalf("night: want INVALID_PHASE, got %v", err)
	}

	room.Phase = PHASE_DAY
	room.DayNumber = 1

	if err := room.StartVoting(60); err != nil {
		t.Fatalf("day: start voting failed: %v", err)
	}
	if room.VotingStatus != VOTING_VOTING || room.VoteDurationSec != 60 {
		t.Fatalf("voting state wrong: %q %d", room.VotingStatus, room.VoteDurationSec)
	}
}

func TestSetActiveCall_RejectedAfterEnd(t *testing.T) {
	room := newNightRoom(
		rosterEntry{"alice", ROLE_WEREWOLF},
		rosterEntry{"bob", ROLE_VILLAGER},
	)

	if err := room.SetActiveCall(ROLE_SEER); err != nil {
		t.Fatalf("set call failed: %v", err)
	}
	if room.ActiveCall != ROLE_SEER {
		t.Fatalf("want seer, got %q", room.ActiveCall)
	}

	room.Winner = WINNER_WEREWOLVES

	if err := room.SetActiveCall(ROLE_WITCH); !gameerr.IsKind(err, gameerr.KindGameEnded) {
		t.Fatalf("want GAME_ENDED, got %v", err)
	}
}

func TestParseActionKind(t *testing.T) {
	if _, err := ParseActionKind("wolf_kill"); err != nil {
		t.Fatalf("wolf_kill should parse: %v", err)
	}

	if _, err := ParseActionKind("dance"); !gameerr.IsKind(err, gameerr.KindValidation) {
		t.Fatalf("want VALIDATION_ERROR, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("witch"); err != nil {
		t.Fatalf("witch should parse: %v", err)
	}

	if _, err := ParseRole("bard"); !gameerr.IsKind(err, gameerr.KindValidation) {
		t.Fatalf("want VALIDATION_ERROR, got %v", err)
	}
}

func TestParsePhase(t *testing.T) {
	for _, s := range []string{"lobby", "night", "day"} {
		if _, err := ParsePhase(s); err != nil {
			t.Fatalf("%s should parse: %v", s, err)
		}
	}

	// ended 只能由结算器进入，主持人不能手动切换
	for _, s := range []string{"ended", "dusk", ""} {
		if _, err := ParsePhase(s); !gameerr.IsKind(err, gameerr.KindValidation) {
			t.Fatalf("%q: want VALIDATION_ERROR, got %v", s, err)
		}
	}
}
