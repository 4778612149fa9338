package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/poker/handanalyzer"

	"github.com/alecthomas/kong"
)

// CLI are the command line arguments
type CLI struct {
	Hands []string `arg:"" help:"Hands to evaluate, each a quoted list of five to seven cards (e.g. 'Ah,Kh,Qh,Jh,Th')"`
	Board string   `short:"b" help:"Community cards shared by every hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Description("Evaluates poker hands and reports the best five cards of each."))

	board, err := deck.ParseCards(cli.Board)
	ctx.FatalIfErrorf(err)

	seen := make(map[string]bool)
	for _, card := range board {
		seen[card.String()] = true
	}

	analyzers := make([]*handanalyzer.HandAnalyzer, len(cli.Hands))
	for i, h := range cli.Hands {
		cards, err := deck.ParseCards(h)
		ctx.FatalIfErrorf(err)

		for _, card := range cards {
			if seen[card.String()] {
				ctx.Fatalf("%s is used more than once", card)
			}
			seen[card.String()] = true
		}

		cards = append(cards, board...)
		if len(cards) < 5 || len(cards) > 7 {
			ctx.Fatalf("hand %d has %d cards, expected five to seven", i+1, len(cards))
		}

		analyzers[i] = handanalyzer.New(cards)
	}

	best := 0
	for i := range analyzers {
		if handanalyzer.Compare(analyzers[i], analyzers[best]) > 0 {
			best = i
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tHAND\tBEST FIVE\tRESULT")
	for i, ha := range analyzers {
		result := "lose"
		switch cmp := handanalyzer.Compare(ha, analyzers[best]); {
		case cmp == 0 && len(analyzers) > 1:
			result = "win"
			for j, other := range analyzers {
				if j != i && handanalyzer.Compare(ha, other) == 0 {
					result = "split"
					break
				}
			}
		case cmp == 0:
			result = "-"
		}

		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, ha.GetHand(), ha.GetCards(), result)
	}

	_ = w.Flush()
}
