package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/unkn0wn-root/memocache"
	memozap "github.com/unkn0wn-root/memocache/log/zap"
	"github.com/unkn0wn-root/memocache/pricing"
)

const dateLayout = time.DateOnly

func env(name string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(cli.EnvVar(name))
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "bintree",
		Usage: "price a vanilla option on binomial trees",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Value: "put", Usage: "option type: put or call", Sources: env("BINTREE_TYPE")},
			&cli.FloatFlag{Name: "underlying", Value: 36, Usage: "spot price", Sources: env("BINTREE_UNDERLYING")},
			&cli.FloatFlag{Name: "strike", Value: 40, Usage: "strike price", Sources: env("BINTREE_STRIKE")},
			&cli.FloatFlag{Name: "dividend", Value: 0, Usage: "continuous dividend yield", Sources: env("BINTREE_DIVIDEND")},
			&cli.FloatFlag{Name: "rate", Value: 0.06, Usage: "risk-free rate", Sources: env("BINTREE_RATE")},
			&cli.FloatFlag{Name: "volatility", Value: 0.20, Usage: "annual volatility", Sources: env("BINTREE_VOLATILITY")},
			&cli.StringFlag{Name: "settlement", Value: "1998-05-17", Usage: "settlement date (YYYY-MM-DD)", Sources: env("BINTREE_SETTLEMENT")},
			&cli.StringFlag{Name: "maturity", Value: "1999-05-17", Usage: "maturity date (YYYY-MM-DD)", Sources: env("BINTREE_MATURITY")},
			&cli.IntFlag{Name: "steps", Value: 5000, Usage: "tree time steps", Sources: env("BINTREE_STEPS")},
			&cli.IntFlag{Name: "repeat", Value: 1, Usage: "price the table this many times (later passes hit the cache)", Sources: env("BINTREE_REPEAT")},
			&cli.StringFlag{Name: "log-level", Value: "error", Usage: "debug, info, warn or error", Sources: env("BINTREE_LOG")},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd.String("log-level"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	base, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}

	prices := memocache.NewSync(memocache.SyncOptions[pricing.Params, float64]{
		Generator: pricing.Binomial,
		Logger:    memozap.ZapLogger{L: logger},
	})
	defer func() { _ = prices.Close() }()

	w := cmd.Root().Writer
	printSummary(w, base)

	start := time.Now()
	var rows []row
	for pass := 0; pass < max(cmd.Int("repeat"), 1); pass++ {
		passStart := time.Now()
		rows, err = priceTable(ctx, prices, base)
		if err != nil {
			return err
		}
		logger.Info("priced table", zap.Int("pass", pass+1),
			zap.Duration("took", time.Since(passStart)), zap.Int("cached", prices.Len()))
	}

	printTable(w, rows)
	fmt.Fprintf(w, " \nRun completed in %s\n\n", formatElapsed(time.Since(start)))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func paramsFromFlags(cmd *cli.Command) (pricing.Params, error) {
	typ, err := pricing.ParseOptionType(cmd.String("type"))
	if err != nil {
		return pricing.Params{}, err
	}
	settlement, err := time.Parse(dateLayout, cmd.String("settlement"))
	if err != nil {
		return pricing.Params{}, fmt.Errorf("settlement: %w", err)
	}
	maturity, err := time.Parse(dateLayout, cmd.String("maturity"))
	if err != nil {
		return pricing.Params{}, fmt.Errorf("maturity: %w", err)
	}

	p := pricing.Params{
		Type:       typ,
		Spot:       cmd.Float("underlying"),
		Strike:     cmd.Float("strike"),
		Dividend:   cmd.Float("dividend"),
		Rate:       cmd.Float("rate"),
		Volatility: cmd.Float("volatility"),
		Settlement: settlement,
		Maturity:   maturity,
		Steps:      cmd.Int("steps"),
	}
	if err := p.Validate(); err != nil {
		return pricing.Params{}, err
	}
	return p, nil
}

type row struct {
	method string
	values [3]string // European, Bermudan, American
}

var exercises = [3]pricing.ExerciseKind{pricing.European, pricing.Bermudan, pricing.American}

// priceTable fills one row per tree. Cells are priced concurrently; cells
// already in the cache return immediately.
func priceTable(ctx context.Context, prices *memocache.SyncCache[pricing.Params, float64], base pricing.Params) ([]row, error) {
	trees := pricing.Trees()
	rows := make([]row, len(trees)+1)

	bs, err := pricing.BlackScholes(base)
	if err != nil {
		return nil, err
	}
	rows[0] = row{method: "Black-Scholes", values: [3]string{fmtPrice(bs), "N/A", "N/A"}}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, tree := range trees {
		rows[i+1].method = "Binomial " + tree.String()
		for e, ex := range exercises {
			p := base
			p.Tree = tree
			p.Exercise = ex
			cell := &rows[i+1].values[e]
			g.Go(func() error {
				v, err := prices.Lookup(gctx, p)
				if err != nil {
					return fmt.Errorf("%s %v: %w", tree, ex, err)
				}
				*cell = fmtPrice(v)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func fmtPrice(v float64) string { return fmt.Sprintf("%.6f", v) }

var widths = [4]int{45, 14, 14, 14}

func printSummary(w io.Writer, p pricing.Params) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Option type = %v\n", p.Type)
	fmt.Fprintf(w, "Maturity = %s\n", p.Maturity.Format(dateLayout))
	fmt.Fprintf(w, "Underlying price = %g\n", p.Spot)
	fmt.Fprintf(w, "Strike = %g\n", p.Strike)
	fmt.Fprintf(w, "Risk-free interest rate = %.6f %%\n", p.Rate*100)
	fmt.Fprintf(w, "Dividend yield = %.6f %%\n", p.Dividend*100)
	fmt.Fprintf(w, "Volatility = %.6f %%\n", p.Volatility*100)
	fmt.Fprintln(w)
}

func printTable(w io.Writer, rows []row) {
	fmt.Fprintf(w, "%-*s%-*s%-*s%-*s\n",
		widths[0], "Method", widths[1], "European", widths[2], "Bermudan", widths[3], "American")
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s%-*s%-*s%-*s\n",
			widths[0], r.method, widths[1], r.values[0], widths[2], r.values[1], widths[3], r.values[2])
	}
}

// formatElapsed renders d as "[H h ][M m ]S s", dropping leading zero units.
func formatElapsed(d time.Duration) string {
	secs := d.Seconds()
	hours := int(secs / 3600)
	secs -= float64(hours) * 3600
	minutes := int(secs / 60)
	secs -= float64(minutes) * 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%d h ", hours)
	}
	if hours > 0 || minutes > 0 {
		fmt.Fprintf(&b, "%d m ", minutes)
	}
	fmt.Fprintf(&b, "%.0f s", secs)
	return b.String()
}
