// Package report renders an analysis result as plain text.
package report

import (
	"fmt"
	"io"

	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/domain/advisory"
	"github.com/okian/lineup/internal/domain/model"
)

const (
	majorRule = "------------"
	minorRule = "------"
)

// printer remembers the first write error so rendering code can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Write renders res to w.
func Write(w io.Writer, res service.Result) error {
	p := &printer{w: w}

	p.linef(majorRule)
	p.linef("Helping out with week %d (season %d, %s scoring)", res.Week, res.Season, res.Scoring)
	p.linef(minorRule)
	p.linef("Do any lineup adjustments need to be made?")
	p.linef(minorRule)
	for _, pa := range res.Lineup {
		p.linef("--- %s", pa.Position)
		for _, a := range pa.Advisories {
			p.linef("%s", Line(a))
		}
	}

	p.linef(minorRule)
	p.linef("Any better available players out there?")
	p.linef(minorRule)
	for _, a := range res.Available {
		p.linef("%s", Line(a))
		for _, c := range a.Candidates {
			p.linef("- %s", withRank(c))
		}
	}

	if len(res.Skipped) > 0 {
		p.linef(minorRule)
		p.linef("Skipped players:")
		for _, s := range res.Skipped {
			p.linef("- %s (%s)", s.ID, s.Reason)
		}
	}
	p.linef(majorRule)
	return p.err
}

// Line returns the headline of one advisory.
func Line(a advisory.Advisory) string {
	switch a.Kind {
	case advisory.KindUnrankedPlayer, advisory.KindUnrankedStarter, advisory.KindUnrankedBenchPlayer:
		return fmt.Sprintf("%s has no matching data in FantasyPros!", a.Player.Label())
	case advisory.KindBenchOutranksStarter:
		starter := "unknown"
		if a.Starter != nil {
			starter = withRank(*a.Starter)
		}
		return fmt.Sprintf("Bench player %s is higher ranked than starter: %s", withRank(a.Player), starter)
	case advisory.KindAvailableOutranksRostered:
		noun := "players"
		if a.Position.IsTeamBased() {
			noun = "defenses"
		}
		return fmt.Sprintf("--- There are %d available %s ranked higher than %s", len(a.Candidates), noun, withRank(a.Player))
	default:
		return fmt.Sprintf("%s: %s", a.Kind, a.Player.Label())
	}
}

func withRank(p model.EnrichedPlayer) string {
	if r, ok := p.Rank(); ok {
		return fmt.Sprintf("%s(%d)", p.Label(), r)
	}
	return p.Label()
}
