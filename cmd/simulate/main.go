package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"holdemtable-server/internal/rng"
	"holdemtable-server/internal/util"
	"holdemtable-server/pkg/poker/action"
	"holdemtable-server/pkg/poker/holdem"
	"holdemtable-server/pkg/room"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// maxDecisions guards against a hand that never finishes
const maxDecisions = 1000

// CLI are the command line flags
type CLI struct {
	Tables     int    `default:"4" help:"Number of tables to run in parallel"`
	Hands      int    `default:"200" help:"Maximum number of hands per table"`
	Players    int    `default:"6" help:"Players seated at each table"`
	SmallBlind int    `default:"10" help:"Small blind"`
	BigBlind   int    `default:"20" help:"Big blind"`
	Chips      int    `default:"1000" help:"Starting chips per player"`
	Seed       int64  `default:"0" help:"RNG seed (0 for random)"`
	LogLevel   string `default:"warn" help:"Log level"`
}

type summary struct {
	lock      sync.Mutex
	hands     int
	showdowns int
	biggest   int
	finished  int
}

func (s *summary) hand(pot int, showdown bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.hands++
	if showdown {
		s.showdowns++
	}

	if pot > s.biggest {
		s.biggest = pot
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Description("Plays bot-driven hands of hold'em and checks that no chips are created or lost."))

	level, err := logrus.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)
	logrus.SetLevel(level)

	if cli.Players < 2 || cli.Players > holdem.MaxSeats {
		ctx.Fatalf("players must be between 2 and %d", holdem.MaxSeats)
	}

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), quartz.NewReal(), room.Options{
		Table: holdem.Options{
			SmallBlind:    cli.SmallBlind,
			BigBlind:      cli.BigBlind,
			StartingChips: cli.Chips,
			Seed:          cli.Seed,
		},
	})

	stats := &summary{}
	g, gctx := errgroup.WithContext(context.Background())
	for i := 0; i < cli.Tables; i++ {
		id := fmt.Sprintf("sim-%d", i+1)
		gen := rng.New(seedFor(cli.Seed, i))

		g.Go(func() error {
			return runTable(gctx, pitBoss, id, gen, cli, stats)
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		ctx.Exit(1)
	}

	fmt.Printf("tables:       %d (%d played to a single winner)\n", cli.Tables, stats.finished)
	fmt.Printf("hands:        %d\n", stats.hands)
	fmt.Printf("showdowns:    %d\n", stats.showdowns)
	fmt.Printf("biggest pot:  %d\n", stats.biggest)
}

func seedFor(seed int64, table int) int64 {
	if seed == 0 {
		return 0
	}

	return seed + int64(table)
}

func runTable(ctx context.Context, pitBoss *room.PitBoss, id string, gen rng.Generator, cli CLI, stats *summary) error {
	d, err := pitBoss.CreateTable(id)
	if err != nil {
		return err
	}
	defer func() { _ = pitBoss.DestroyTable(id) }()

	for seat, name := range util.RandomNames(gen, cli.Players) {
		if err := d.Join(name, seat); err != nil {
			return err
		}
	}

	total := cli.Players * cli.Chips
	for hand := 0; hand < cli.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.StartRound(); err != nil {
			if errors.Is(err, holdem.ErrInsufficientPlayers) {
				stats.lock.Lock()
				stats.finished++
				stats.lock.Unlock()
				return nil
			}

			return fmt.Errorf("%s: %w", id, err)
		}

		pot, showdown, err := playHand(d, gen)
		if err != nil {
			return fmt.Errorf("%s hand %d: %w", id, hand+1, err)
		}

		if chips := seatedChips(d.State("")); chips != total {
			return fmt.Errorf("%s hand %d: expected %d chips on the table, found %d", id, hand+1, total, chips)
		}

		stats.hand(pot, showdown)
	}

	return nil
}

// playHand drives the hand to completion and returns the largest pot seen
func playHand(d *room.Dealer, gen rng.Generator) (int, bool, error) {
	pot := 0
	for i := 0; i < maxDecisions; i++ {
		st := d.State("")
		if st.Pot > pot {
			pot = st.Pot
		}

		if !st.InProgress {
			return pot, st.Winner != nil && st.Winner.Hand != nil, nil
		}

		if st.CurrentPlayer == holdem.NoSeat {
			if _, err := d.DealNextStreet(); err != nil {
				return pot, false, err
			}
			continue
		}

		name := st.Seats[st.CurrentPlayer].Name
		if err := decide(d, st, name, gen); err != nil {
			return pot, false, err
		}
	}

	return pot, false, errors.New("hand did not finish")
}

// decide mostly calls, sometimes bets the minimum and occasionally folds
func decide(d *room.Dealer, st *holdem.TableState, name string, gen rng.Generator) error {
	legal := d.LegalActions(name)
	if len(legal) == 0 {
		return fmt.Errorf("%s has no legal actions", name)
	}

	passive := legal[0]
	roll := gen.Intn(100)
	for _, a := range legal {
		switch {
		case a == action.Fold && roll < 10 && passive == action.Call:
			return d.Act(name, a, 0)
		case a == action.Bet && roll >= 80:
			if err := d.Act(name, a, st.MinimumRaise); err == nil {
				return nil
			}
		case a == action.Raise && roll >= 85:
			if err := d.Act(name, a, st.CurrentBet+st.MinimumRaise); err == nil {
				return nil
			}
		}
	}

	return d.Act(name, passive, 0)
}

func seatedChips(st *holdem.TableState) int {
	chips := st.Pot
	for _, seat := range st.Seats {
		if seat != nil {
			chips += seat.Chips
		}
	}

	return chips
}
