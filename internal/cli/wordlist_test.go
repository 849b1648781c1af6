package cli

import (
	"strings"
	"testing"
)

func TestParseWordList(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"",
		"ephemeral\tlasting a very short time",
		"laconic\tusing few words\tHis laconic reply suggested a lack of interest.",
		"garrulous\texcessively talkative\t\tloquacious, verbose",
		"   ",
	}, "\n")

	words, err := parseWordList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseWordList: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}

	if words[0].Word != "ephemeral" || words[0].Meaning != "lasting a very short time" {
		t.Errorf("unexpected first word: %+v", words[0])
	}
	if words[1].Example != "His laconic reply suggested a lack of interest." {
		t.Errorf("example not parsed: %+v", words[1])
	}
	if words[2].Example != "" || words[2].Related != "loquacious, verbose" {
		t.Errorf("related not parsed: %+v", words[2])
	}
}

func TestParseWordList_CRLF(t *testing.T) {
	words, err := parseWordList(strings.NewReader("terse\tbrief and to the point\r\n"))
	if err != nil {
		t.Fatalf("parseWordList: %v", err)
	}
	if len(words) != 1 || words[0].Meaning != "brief and to the point" {
		t.Fatalf("CRLF line not handled: %+v", words)
	}
}

func TestParseWordList_MissingMeaning(t *testing.T) {
	input := "good\tfine\nbad-line-no-tab\n"

	_, err := parseWordList(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected an error for a line without a meaning")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should carry the line number, got: %v", err)
	}
}

func TestParseWordList_Empty(t *testing.T) {
	words, err := parseWordList(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("parseWordList: %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected no words, got %d", len(words))
	}
}
