package service

import (
	"math/rand/v2"
	"strings"
	"time"

	"werewolf-be/internal/service/game"

	"github.com/google/uuid"
)

// 纯数字房间号，方便玩家在手机上输入
func genRoomCode(length int) string {
	digits := make([]byte, length)
	for i := range digits {
		digits[i] = byte('0' + rand.IntN(10))
	}

	return string(digits)
}

// 基于 UUID 的短 ID，用作玩家 ID 和主持人口令
func genID(length int) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if length > len(id) {
		length = len(id)
	}

	return id[:length]
}

func isRoomExpired(room *game.Room, ttl time.Duration) bool {
	room.RLock()
	defer room.RUnlock()

	return time.Since(room.LastActive) > ttl
}
