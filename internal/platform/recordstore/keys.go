package recordstore

import "strings"

// Prefix namespaces every key so the medium can be shared with unrelated data.
const Prefix = "ipmat_"

const (
	KeyUser       = Prefix + "user"
	KeyProgress   = Prefix + "progress"
	KeyMockScores = Prefix + "mock_scores"
	KeyDailyGoals = Prefix + "daily_goals"
	KeyDailyLogs  = Prefix + "daily_logs"
	KeyVocab      = Prefix + "vocab"
)

// Known lists the collection keys in a fixed order.
var Known = []string{KeyUser, KeyProgress, KeyMockScores, KeyDailyGoals, KeyDailyLogs, KeyVocab}

func IsKnown(key string) bool {
	for _, k := range Known {
		if k == key {
			return true
		}
	}
	return false
}

func namespaced(key string) bool {
	return strings.HasPrefix(key, Prefix)
}
