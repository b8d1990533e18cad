package stats

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/abhisek/mathiks/internal/store"
	"github.com/google/uuid"
)

// Store reads and writes the statistics document through a store.KV.
type Store struct {
	kv    store.KV
	key   string
	log   *log.Logger
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key (default DefaultKey).
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the destination for storage warnings. A nil logger
// discards them.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		s.log = l
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides how result IDs are generated.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// New creates a Store on top of kv.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		key:   DefaultKey,
		log:   log.New(os.Stderr, "warning: ", 0),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key the document is kept under.
func (s *Store) Key() string {
	return s.key
}

// Statistics returns the persisted statistics. A missing, unreadable or
// malformed document yields Empty(); failures are logged, never returned.
func (s *Store) Statistics(ctx context.Context) *Statistics {
	st, err := s.load(ctx)
	if err != nil {
		s.log.Printf("read statistics: %v", err)
		return Empty()
	}
	return st
}

// load reads the document. Only backend failures are returned; a
// malformed document is logged and replaced by Empty().
func (s *Store) load(ctx context.Context) (*Statistics, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return Empty(), nil
	}

	st, err := decodeDocument(raw)
	if err != nil {
		s.log.Printf("failed to parse statistics: %v", err)
		return Empty(), nil
	}
	return st, nil
}

// SaveGameResult validates in, records it as a new GameResult and
// updates every aggregate. The document is written back with a single
// Set; on any error the persisted state is unchanged.
func (s *Store) SaveGameResult(ctx context.Context, in GameInput) (GameResult, error) {
	if err := validate(in); err != nil {
		s.log.Printf("%v", err)
		return GameResult{}, err
	}

	// A backend that cannot be read must not be overwritten with a fresh
	// document.
	data, err := s.load(ctx)
	if err != nil {
		s.log.Printf("saveGameResult failed: %v", err)
		return GameResult{}, &ErrStorage{Op: "read", Err: err}
	}

	now := s.now()
	date := in.Date
	if date == "" {
		date = now.UTC().Format(time.RFC3339)
	}
	result := GameResult{
		ID:             s.newID(),
		ChallengeType:  in.ChallengeType,
		ChallengeName:  in.ChallengeName,
		Difficulty:     in.Difficulty,
		Operation:      in.Operation,
		Score:          in.Score,
		TotalQuestions: in.TotalQuestions,
		Accuracy:       percent(in.Score, in.TotalQuestions),
		TimeSpent:      in.TimeSpent,
		Date:           date,
		Timestamp:      now.UnixMilli(),
		Streak:         in.Streak,
	}

	data.apply(result)

	b, err := json.Marshal(data)
	if err != nil {
		s.log.Printf("saveGameResult failed: %v", err)
		return GameResult{}, &ErrStorage{Op: "encode", Err: err}
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		s.log.Printf("saveGameResult failed: %v", err)
		return GameResult{}, &ErrStorage{Op: "write", Err: err}
	}
	return result, nil
}

// ClearAllData deletes the persisted document. Clearing an empty store
// succeeds.
func (s *Store) ClearAllData(ctx context.Context) error {
	if err := s.kv.Remove(ctx, s.key); err != nil {
		s.log.Printf("clearAllData failed: %v", err)
		return &ErrStorage{Op: "remove", Err: err}
	}
	return nil
}

// ResultsSortedBy returns a copy of the retained results sorted
// descending by key. Ties keep their stored order.
func (s *Store) ResultsSortedBy(ctx context.Context, key SortKey) []GameResult {
	return SortResults(s.Statistics(ctx).Results, key)
}

func validate(in GameInput) error {
	switch {
	case in.Score < 0:
		return &ErrInvalidResult{Reason: "score must not be negative"}
	case in.TotalQuestions <= 0:
		return &ErrInvalidResult{Reason: "total questions must be positive"}
	case in.Score > in.TotalQuestions:
		return &ErrInvalidResult{Reason: "score exceeds total questions"}
	}
	return nil
}

// apply folds r into the running totals and the per-type aggregate.
func (s *Statistics) apply(r GameResult) {
	s.Results = append([]GameResult{r}, s.Results...)
	if len(s.Results) > MaxResults {
		s.Results = s.Results[:MaxResults]
	}

	s.TotalGames++
	s.TotalCorrect += r.Score
	s.TotalQuestionsAttemptedOverall += r.TotalQuestions
	s.TotalOverallTimeSpent += r.TimeSpent
	if r.Streak > s.BestStreak {
		s.BestStreak = r.Streak
	}
	s.AverageTimePerQuestionOverall = ratio(s.TotalOverallTimeSpent, s.TotalQuestionsAttemptedOverall)

	cs, ok := s.ChallengeStats[r.ChallengeType]
	if !ok {
		cs = &ChallengeStat{}
		s.ChallengeStats[r.ChallengeType] = cs
	}
	cs.Played++
	cs.TotalTimeSpent += r.TimeSpent
	cs.TotalQuestionsAttempted += r.TotalQuestions
	if r.Score > cs.BestScore {
		cs.BestScore = r.Score
	}

	// Accuracy comes from the retained history only, so it drifts from the
	// running totals once the cap starts evicting entries of this type.
	var correct, total int
	for _, res := range s.Results {
		if res.ChallengeType == r.ChallengeType {
			correct += res.Score
			total += res.TotalQuestions
		}
	}
	cs.Accuracy = percent(correct, total)
	cs.AverageTimePerQuestion = ratio(cs.TotalTimeSpent, cs.TotalQuestionsAttempted)
}

// percent returns round(part/whole*100) clamped to [0,100], or 0 when
// whole is not positive.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	p := int(math.Round(float64(part) / float64(whole) * 100))
	return min(100, max(0, p))
}

// ratio returns round(a/b), or 0 when b is not positive.
func ratio(a, b int) int {
	if b <= 0 {
		return 0
	}
	return int(math.Round(float64(a) / float64(b)))
}
