package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []GameResult {
	return []GameResult{
		{ID: "1", ChallengeType: "arithmetic", Score: 8, TotalQuestions: 10, Accuracy: 80, TimeSpent: 40, Streak: 3},
		{ID: "2", ChallengeType: "speed-drill", Score: 15, TotalQuestions: 20, Accuracy: 75, TimeSpent: 60, Streak: 11},
		{ID: "3", ChallengeType: "arithmetic", Score: 3, TotalQuestions: 10, Accuracy: 30, TimeSpent: 50},
	}
}

func TestOverallAccuracy(t *testing.T) {
	assert.Equal(t, 0, Empty().OverallAccuracy())

	st := &Statistics{TotalCorrect: 26, TotalQuestionsAttemptedOverall: 40}
	assert.Equal(t, 65, st.OverallAccuracy())
}

func TestRecent(t *testing.T) {
	st := &Statistics{Results: sampleResults()}

	assert.Equal(t, []string{"1", "2"}, ids(st.Recent(2)))
	assert.Len(t, st.Recent(10), 3)
	assert.Empty(t, st.Recent(0))
	assert.Empty(t, st.Recent(-1))

	recent := st.Recent(1)
	recent[0].ID = "changed"
	assert.Equal(t, "1", st.Results[0].ID, "Recent must return a copy")

	assert.Empty(t, Empty().Recent(10))
}

func TestFilterByType(t *testing.T) {
	results := sampleResults()

	assert.Equal(t, []string{"1", "3"}, ids(FilterByType(results, "arithmetic")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterByType(results, "all")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterByType(results, "")))

	none := FilterByType(results, "estimation")
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestChallengeTypes(t *testing.T) {
	assert.Equal(t, []string{"arithmetic", "speed-drill"}, ChallengeTypes(sampleResults()))
	assert.Empty(t, ChallengeTypes(nil))
}

func TestSummarize(t *testing.T) {
	got := Summarize(sampleResults())
	assert.Equal(t, Summary{
		Sessions:               3,
		AverageAccuracy:        62, // round(185/3)
		BestStreak:             11,
		AverageTimePerQuestion: 4, // round(150/40)
	}, got)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSortResultsDoesNotMutateInput(t *testing.T) {
	results := sampleResults()
	sorted := SortResults(results, SortScore)

	assert.Equal(t, []string{"2", "1", "3"}, ids(sorted))
	assert.Equal(t, []string{"1", "2", "3"}, ids(results))
	assert.NotNil(t, SortResults(nil, SortDate))
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"", SortDate, false},
		{"date", SortDate, false},
		{"score", SortScore, false},
		{"accuracy", SortAccuracy, false},
		{"streak", "", true},
		{"Score", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortKey(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Mental Math", DisplayName("mental-math"))
	assert.Equal(t, "Mixed", DisplayName("mixed-challenge"))
	assert.Equal(t, "custom", DisplayName("custom"))
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{59, "59s"},
		{60, "1m 0s"},
		{125, "2m 5s"},
		{3600, "60m 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.in), "FormatSeconds(%d)", tt.in)
	}
}
