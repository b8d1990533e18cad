// Package stats persists practice session results and the aggregate
// statistics derived from them.
//
// The whole state is one JSON document under one key in a store.KV.
// Every save reads the document, mutates it in memory and writes it back
// in a single Set; there is no locking across operations, so only one
// writer at a time is supported.
package stats

// MaxResults is the retention cap for individual results.
const MaxResults = 1000

// DefaultKey is the storage key the statistics document lives under.
const DefaultKey = "mathiks-data"

// GameResult is one completed practice session. It is created once by
// SaveGameResult and never mutated afterwards.
type GameResult struct {
	ID             string `json:"id"`
	ChallengeType  string `json:"challengeType"`
	ChallengeName  string `json:"challengeName"`
	Difficulty     string `json:"difficulty,omitempty"`
	Operation      string `json:"operation,omitempty"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Accuracy       int    `json:"accuracy"`  // percent, 0-100
	TimeSpent      int    `json:"timeSpent"` // seconds
	Date           string `json:"date"`      // ISO-8601, display only
	Timestamp      int64  `json:"timestamp"` // unix ms
	Streak         int    `json:"streak,omitempty"`
}

// GameInput is the final tally a practice front end hands to
// SaveGameResult. ID, timestamp and accuracy are computed on save.
type GameInput struct {
	ChallengeType  string
	ChallengeName  string
	Difficulty     string
	Operation      string
	Score          int
	TotalQuestions int
	TimeSpent      int
	Date           string // filled with the save time when empty
	Streak         int
}

// ChallengeStat aggregates all sessions of one challenge type.
type ChallengeStat struct {
	Played                  int `json:"played"`
	Accuracy                int `json:"accuracy"`
	BestScore               int `json:"bestScore"`
	TotalTimeSpent          int `json:"totalTimeSpent"`
	TotalQuestionsAttempted int `json:"totalQuestionsAttempted"`
	AverageTimePerQuestion  int `json:"averageTimePerQuestion"`
}

// Statistics is the persisted document: running totals, per-type
// aggregates and the bounded result history, most recent first.
type Statistics struct {
	TotalGames                     int                       `json:"totalGames"`
	TotalCorrect                   int                       `json:"totalCorrect"`
	TotalQuestionsAttemptedOverall int                       `json:"totalQuestionsAttemptedOverall"`
	BestStreak                     int                       `json:"bestStreak"`
	TotalOverallTimeSpent          int                       `json:"totalOverallTimeSpent"`
	AverageTimePerQuestionOverall  int                       `json:"averageTimePerQuestionOverall"`
	ChallengeStats                 map[string]*ChallengeStat `json:"challengeStats"`
	Results                        []GameResult              `json:"results"`
}

// Empty returns the initial state of a store that was never written to.
func Empty() *Statistics {
	return &Statistics{
		ChallengeStats: make(map[string]*ChallengeStat),
		Results:        []GameResult{},
	}
}

// normalize back-fills fields that older documents may lack.
func (s *Statistics) normalize() {
	if s.ChallengeStats == nil {
		s.ChallengeStats = make(map[string]*ChallengeStat)
	}
	for t, cs := range s.ChallengeStats {
		if cs == nil {
			s.ChallengeStats[t] = &ChallengeStat{}
		}
	}
	if s.Results == nil {
		s.Results = []GameResult{}
	}
}
