package dto

type CreateRoomResponse struct {
	RoomCode   string `json:"room_code"`
	HostSecret string `json:"host_secret"`
}

type JoinRoomRequest struct {
	RoomCode string `json:"room_code"`
	Name     string `json:"name"`
}

type JoinRoomResponse struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

type StartGameRequest struct {
	RoomCode   string `json:"room_code"`
	HostSecret string `json:"host_secret"`
}

type StartGameResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}

type SetPhaseRequest struct {
	RoomCode   string `json:"room_code"`
	HostSecret string `json:"host_secret"`
	Phase      string `json:"phase"`
}

type SetPhaseResponse struct {
	Ok          bool   `json:"ok"`
	Phase       string `json:"phase"`
	NightNumber int    `json:"night_number"`
	DayNumber   int    `json:"day_number"`
}

type CallRoleRequest struct {
	RoomCode   string `json:"room_code"`
	HostSecret string `json:"host_secret"`
	Role       string `json:"role"`
}

type CallRoleResponse struct {
	Ok         bool   `json:"ok"`
	ActiveCall string `json:"active_call"`
}

// resolve_night、resolve_day 和 vote_preview 共用的主持人请求体
type ResolveRequest struct {
	RoomCode   string `json:"room_code"`
	HostSecret string `json:"host_secret"`
}

type ResolveNightResponse struct {
	Ok            bool     `json:"ok"`
	Deaths        []string `json:"deaths"`
	MutedForToday []string `json:"muted_for_today"`
	Winner        string   `json:"winner,omitempty"`
}

type ResolveDayResponse struct {
	Ok             bool   `json:"ok"`
	Lynched        string `json:"lynched,omitempty"`
	PrinceRevealed bool   `json:"prince_revealed"`
	Message        string `json:"message"`
	Winner         string `json:"winner,omitempty"`
}

type StartVotingRequest struct {
	RoomCode    string `json:"room_code"`
	HostSecret  string `json:"host_secret"`
	DurationSec int    `json:"duration_sec"`
}

type StartVotingResponse struct {
	Ok              bool   `json:"ok"`
	VotingStatus    string `json:"voting_status"`
	VoteDurationSec int    `json:"vote_duration_sec"`
}

type VotePreviewResponse struct {
	CandidateName string `json:"candidate_name,omitempty"`
	// key 为被投者名字，value 为票数，0 票的不出现
	Votes map[string]int `json:"votes"`
}

type RoleProgressResponse struct {
	Pending []string `json:"pending"`
	Done    bool     `json:"done"`
}
