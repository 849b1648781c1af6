package export

import "encoding/json"

// JSONExporter renders the vault as structured JSON, memory state included,
// so a vault can be rebuilt from its export.
type JSONExporter struct{}

type jsonOutput struct {
	Vault string     `json:"vault,omitempty"`
	Words []jsonWord `json:"words"`
}

type jsonWord struct {
	Word         string  `json:"word"`
	Meaning      string  `json:"meaning"`
	Example      string  `json:"example,omitempty"`
	Related      string  `json:"related,omitempty"`
	Strength     float64 `json:"strength"`
	Difficulty   float64 `json:"difficulty"`
	Streak       int     `json:"streak"`
	LastReviewed string  `json:"last_reviewed,omitempty"`
}

func (e *JSONExporter) Export(data ExportData) (string, error) {
	out := jsonOutput{
		Vault: data.VaultName,
		Words: make([]jsonWord, 0, len(data.Words)),
	}
	for _, w := range data.Words {
		jw := jsonWord{
			Word:       w.Word,
			Meaning:    w.Meaning,
			Example:    w.Example,
			Related:    w.Related,
			Strength:   w.Memory.Strength,
			Difficulty: w.Memory.Difficulty,
			Streak:     w.Memory.Streak,
		}
		if !w.Memory.LastReviewed.IsZero() {
			jw.LastReviewed = w.Memory.LastReviewed.UTC().Format("2006-01-02T15:04:05Z")
		}
		out.Words = append(out.Words, jw)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
