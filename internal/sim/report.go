package sim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Report aggregates a batch of runs.
type Report struct {
	Runs []RunStats
}

// MeanScore returns the average final score.
func (r Report) MeanScore() float64 {
	if len(r.Runs) == 0 {
		return 0
	}
	total := 0
	for _, st := range r.Runs {
		total += st.Score
	}
	return float64(total) / float64(len(r.Runs))
}

// MaxScore returns the best final score.
func (r Report) MaxScore() int {
	best := 0
	for _, st := range r.Runs {
		best = max(best, st.Score)
	}
	return best
}

// Reached counts runs that hit the milestone at level.
func (r Report) Reached(level int) int {
	n := 0
	for _, st := range r.Runs {
		if st.Score >= level {
			n++
		}
	}
	return n
}

// Causes counts how runs ended.
func (r Report) Causes() map[Cause]int {
	out := make(map[Cause]int)
	for _, st := range r.Runs {
		out[st.Cause]++
	}
	return out
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render formats the report as a table followed by a summary.
func (r Report) Render() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("RUN", "SEED", "SCORE", "LEN", "TICKS", "@10", "@20", "END", "TIME")

	for _, st := range r.Runs {
		t.Row(
			strconv.Itoa(st.Run),
			strconv.FormatInt(st.Seed, 10),
			strconv.Itoa(st.Score),
			strconv.Itoa(st.Length),
			strconv.FormatUint(st.Ticks, 10),
			tickOrDash(st.Milestone10),
			tickOrDash(st.Milestone20),
			string(st.Cause),
			st.Elapsed.Round(time.Second).String(),
		)
	}

	causes := r.Causes()
	keys := make([]string, 0, len(causes))
	for c := range causes {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, causes[Cause(k)])
	}

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "runs=%d mean=%.1f max=%d kichta=%d pucci=%d ends: %s\n",
		len(r.Runs), r.MeanScore(), r.MaxScore(), r.Reached(10), r.Reached(20), strings.Join(parts, " "))
	return b.String()
}

func tickOrDash(t uint64) string {
	if t == 0 {
		return "-"
	}
	return strconv.FormatUint(t, 10)
}
