// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/lvlbits/bitlength"
	"github.com/katalvlaran/lvlbits/config"
	"github.com/katalvlaran/lvlbits/layout"
	"github.com/katalvlaran/lvlbits/operator"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	configPath string
	logLevel   string
	divisors   []uint64
	types      bool
	expand     bool
	metrics    bool
	noColor    bool
	layoutPath string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	app := kingpin.New("bitlen", "Print the bit length properties of a layout file.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	o := &options{}
	app.Flag("config", "TOML settings file.").Short('c').Envar("LVLBITS_CONFIG").StringVar(&o.configPath)
	app.Flag("log-level", "Log level; overrides the settings file.").StringVar(&o.logLevel)
	app.Flag("divisor", "Divisor to report alignment and residues for (repeatable).").Short('d').Default("8").Uint64ListVar(&o.divisors)
	app.Flag("types", "Report every named type, not just the root.").Short('t').BoolVar(&o.types)
	app.Flag("expand", "Also print the exact set of lengths (slow).").BoolVar(&o.expand)
	app.Flag("metrics", "Print cache and expansion counters on exit.").BoolVar(&o.metrics)
	app.Flag("no-color", "Disable colored output.").BoolVar(&o.noColor)
	app.Arg("layout", "YAML layout file.").Required().StringVar(&o.layoutPath)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	for _, d := range o.divisors {
		if d < 1 {
			return nil, fmt.Errorf("--divisor: %w", bitlength.ErrBadDivisor)
		}
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "bitlen:", err)
		return exitUsage
	}

	settings, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "bitlen:", err)
		return exitUsage
	}
	logger, err := settings.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "bitlen:", err)
		return exitUsage
	}
	if o.logLevel != "" {
		lvl, err := logrus.ParseLevel(o.logLevel)
		if err != nil {
			fmt.Fprintf(stderr, "bitlen: %v: %q\n", config.ErrBadLevel, o.logLevel)
			return exitUsage
		}
		logger.SetLevel(lvl)
	}

	opts, err := settings.Options()
	if err != nil {
		fmt.Fprintln(stderr, "bitlen:", err)
		return exitUsage
	}
	opts = append(opts, operator.WithLogger(logger))

	reg := prometheus.NewRegistry()
	if o.metrics {
		opts = append(opts, operator.WithMetrics(operator.NewMetrics(reg)))
	}

	l, err := layout.Load(o.layoutPath, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "bitlen:", err)
		return exitError
	}
	logger.WithFields(logrus.Fields{
		"layout": o.layoutPath,
		"types":  len(l.Names()),
	}).Debug("layout built")

	p := newPrinter(stdout, !o.noColor && isTerminal(stdout))
	rows := []row{{name: "root", set: l.Root}}
	if o.types {
		for _, name := range l.Names() {
			s, _ := l.Type(name)
			rows = append(rows, row{name: name, set: s})
		}
	}
	p.table(rows, o.divisors)

	code := exitOK
	if o.expand {
		if err := p.expansion(l.Root); err != nil {
			fmt.Fprintln(stderr, "bitlen:", err)
			code = exitError
		}
	}
	if o.metrics {
		if err := p.metrics(reg); err != nil {
			fmt.Fprintln(stderr, "bitlen:", err)
			code = exitError
		}
	}

	return code
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

type row struct {
	name string
	set  *bitlength.Set
}

type printer struct {
	out    io.Writer
	header *color.Color
	yes    *color.Color
	no     *color.Color
}

func newPrinter(out io.Writer, colored bool) *printer {
	p := &printer{
		out:    out,
		header: color.New(color.Bold),
		yes:    color.New(color.FgGreen),
		no:     color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.header, p.yes, p.no} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// cell is one table entry; style applies after padding so escape codes do
// not count toward the column width.
type cell struct {
	text  string
	style *color.Color
}

func (p *printer) table(rows []row, divisors []uint64) {
	head := []string{"type", "min", "max", "fixed"}
	for _, d := range divisors {
		head = append(head, fmt.Sprintf("aligned@%d", d), fmt.Sprintf("mod %d", d))
	}

	grid := [][]cell{make([]cell, len(head))}
	for i, h := range head {
		grid[0][i] = cell{text: h, style: p.header}
	}
	for _, r := range rows {
		line := []cell{
			{text: r.name},
			{text: comma(r.set.Min())},
			{text: comma(r.set.Max())},
			p.flag(r.set.FixedLength()),
		}
		for _, d := range divisors {
			residues, _ := r.set.Residues(d) // divisors are validated at parse time
			line = append(line, p.flag(r.set.IsAlignedAt(d)), cell{text: residues.String()})
		}
		grid = append(grid, line)
	}

	widths := make([]int, len(head))
	for _, line := range grid {
		for i, c := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(c.text))
		}
	}
	for _, line := range grid {
		var b strings.Builder
		for i, c := range line {
			text := c.text
			if i < len(line)-1 {
				text = runewidth.FillRight(text, widths[i]+2)
			}
			if c.style != nil {
				text = c.style.Sprint(text)
			}
			b.WriteString(text)
		}
		fmt.Fprintln(p.out, strings.TrimRight(b.String(), " "))
	}
}

// comma groups the digits of v; lengths may exceed MaxInt64.
func comma(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

func (p *printer) flag(v bool) cell {
	if v {
		return cell{text: "yes", style: p.yes}
	}

	return cell{text: "no", style: p.no}
}

func (p *printer) expansion(s *bitlength.Set) error {
	e, err := s.Expand()
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "\n%s %s lengths\n", p.header.Sprint("exact:"), comma(uint64(e.Len())))
	fmt.Fprintln(p.out, e)

	return nil
}

func (p *printer) metrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })

	fmt.Fprintf(p.out, "\n%s\n", p.header.Sprint("metrics:"))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(p.out, "%s %g\n", mf.GetName(), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(p.out, "%s count=%d sum=%gs\n", mf.GetName(), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}

	return nil
}
