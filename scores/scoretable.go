// Package scores keeps a small persistent leaderboard of finished games.
//
// The table retains the top five results ranked by average score per
// round, persisted as plain text with one comma-separated record per
// line: name,averageScore,totalScore,roundsPlayed. Player names must not
// contain commas; the field is written verbatim.
package scores

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// MaxEntries is how many results the table retains.
const MaxEntries = 5

// DefaultFilename is the score file used when no path is configured.
const DefaultFilename = "highscores.txt"

// Entry is one persisted game result.
type Entry struct {
	PlayerName   string
	AverageScore int
	TotalScore   int
	Rounds       int
}

// Table is the capped, sorted leaderboard backed by a text file.
type Table struct {
	path    string
	entries []Entry
}

// Load reads the score file at path. A missing or unreadable file yields
// an empty table; malformed lines are skipped.
func Load(path string) *Table {
	t := &Table{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	for _, line := range strings.Split(string(data), "\n") {
		entry, ok := parseEntry(line)
		if !ok {
			continue
		}
		t.entries = append(t.entries, entry)
	}
	t.sortEntries()
	return t
}

func parseEntry(line string) (Entry, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r"), ",")
	if len(fields) != 4 {
		return Entry{}, false
	}
	avg, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, false
	}
	total, err := strconv.Atoi(fields[2])
	if err != nil {
		return Entry{}, false
	}
	rounds, err := strconv.Atoi(fields[3])
	if err != nil {
		return Entry{}, false
	}
	return Entry{
		PlayerName:   fields[0],
		AverageScore: avg,
		TotalScore:   total,
		Rounds:       rounds,
	}, true
}

// AddScore inserts a result with a truncating per-round average, re-sorts
// by average descending, keeps the top five and rewrites the whole file.
// The save error, if any, is returned after the in-memory table is
// already updated; the caller may treat it as non-fatal.
func (t *Table) AddScore(name string, totalScore, rounds int) error {
	if rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	t.entries = append(t.entries, Entry{
		PlayerName:   name,
		AverageScore: totalScore / rounds,
		TotalScore:   totalScore,
		Rounds:       rounds,
	})
	t.sortEntries()
	if len(t.entries) > MaxEntries {
		t.entries = t.entries[:MaxEntries]
	}
	return t.save()
}

func (t *Table) sortEntries() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].AverageScore > t.entries[j].AverageScore
	})
}

func (t *Table) save() error {
	var sb strings.Builder
	for _, e := range t.entries {
		fmt.Fprintf(&sb, "%s,%d,%d,%d\n", e.PlayerName, e.AverageScore, e.TotalScore, e.Rounds)
	}
	if err := os.WriteFile(t.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("saving scores to %s: %w", t.path, err)
	}
	return nil
}

// Entries returns the ranked results, best average first.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Render prints the ranked table, or an explicit message when no scores
// have been recorded yet.
func (t *Table) Render() {
	pterm.DefaultSection.Println("High Score Table")
	if len(t.entries) == 0 {
		pterm.Info.Println("No high scores yet!")
		return
	}
	rows := pterm.TableData{{"Rank", "Player", "Avg Score", "Total", "Rounds"}}
	for i, e := range t.entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.PlayerName,
			strconv.Itoa(e.AverageScore),
			strconv.Itoa(e.TotalScore),
			strconv.Itoa(e.Rounds),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
