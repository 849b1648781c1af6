package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/lexmem/lexmem/internal/vocab"
)

// MarkdownExporter renders the vault as a human-readable study sheet,
// grouped by how urgently each word needs review.
type MarkdownExporter struct{}

// forgetProbability bands for the grouping, most urgent first.
var bands = []struct {
	heading string
	min     float64
}{
	{"Needs Review", 0.5},
	{"Getting Shaky", 0.2},
	{"Well Remembered", 0},
}

func (e *MarkdownExporter) Export(data ExportData) (string, error) {
	var b strings.Builder
	title := data.VaultName
	if title == "" {
		title = "Vocabulary"
	}
	fmt.Fprintf(&b, "# %s\n\n%d words\n\n", title, len(data.Words))

	ranked := vocab.Rank(data.Words, data.Now)

	for i, band := range bands {
		var rows []vocab.Scheduled
		for _, w := range ranked {
			// The top band is open-ended: severely overdue words carry a
			// log-overdue boost that pushes priority past 1.
			upper := math.Inf(1)
			if i > 0 {
				upper = bands[i-1].min
			}
			if w.Priority >= band.min && w.Priority < upper {
				rows = append(rows, w)
			}
		}
		b.WriteString(wordSection(band.heading, rows))
	}

	return b.String(), nil
}

// wordSection renders one priority band as a markdown table block.
func wordSection(heading string, rows []vocab.Scheduled) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", heading)
	b.WriteString("| Word | Meaning | Streak | Forget % |\n")
	b.WriteString("|------|---------|--------|----------|\n")
	for _, w := range rows {
		fmt.Fprintf(&b, "| %s | %s | %d | %.0f%% |\n",
			w.Word.Word, w.Meaning, w.Memory.Streak, math.Min(w.Priority, 1)*100)
	}
	b.WriteString("\n")
	return b.String()
}
