package session

import "github.com/lexmem/lexmem/internal/srs"

// Stats counts reviewed words by outcome category. Created at session
// start, bumped once per reviewed word, read-only afterwards.
type Stats struct {
	Perfect  int `json:"perfect"`
	Known    int `json:"known"`
	OneHint  int `json:"one_hint"`
	TwoHints int `json:"two_hints"`
	Unknown  int `json:"unknown"`
	Reviewed int `json:"reviewed"`
}

func (s *Stats) record(score srs.Score) {
	switch score {
	case srs.Perfect:
		s.Perfect++
	case srs.Know:
		s.Known++
	case srs.OneHint:
		s.OneHint++
	case srs.TwoHints:
		s.TwoHints++
	case srs.No:
		s.Unknown++
	}
	s.Reviewed++
}
