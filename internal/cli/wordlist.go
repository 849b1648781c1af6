package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lexmem/lexmem/internal/vocab"
)

// parseWordList reads a tab-separated word list:
//
//	word<TAB>meaning[<TAB>example[<TAB>related]]
//
// Blank lines and lines starting with # are skipped. A line without a
// meaning is an error carrying its line number.
func parseWordList(r io.Reader) ([]vocab.Word, error) {
	var words []vocab.Word

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || strings.TrimSpace(fields[0]) == "" || strings.TrimSpace(fields[1]) == "" {
			return nil, fmt.Errorf("line %d: expected word<TAB>meaning, got %q", lineNo, line)
		}

		w := vocab.Word{
			Word:    strings.TrimSpace(fields[0]),
			Meaning: strings.TrimSpace(fields[1]),
		}
		if len(fields) > 2 {
			w.Example = strings.TrimSpace(fields[2])
		}
		if len(fields) > 3 {
			w.Related = strings.TrimSpace(fields[3])
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
