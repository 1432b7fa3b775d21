package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"awsranges/internal/config"
	"awsranges/internal/filter"
	"awsranges/internal/log"
	"awsranges/internal/ranges"
)

func CreateFilterCommand() *FilterCommand {
	fc := &FilterCommand{
		fs: flag.NewFlagSet("filter", flag.ExitOnError),
	}

	fc.fs.StringVar(&fc.url, "url", "", "Fetch the ranges document from this URL (default: configured URL)")
	fc.fs.StringVar(&fc.file, "file", "", "Read the ranges document from a local file instead of fetching it")
	fc.fs.Int64Var(&fc.minSerial, "min-serial", -1, "Skip processing unless the document serial exceeds this value")
	fc.fs.BoolVar(&fc.noPrintSerial, "no-print-serial", false, "Suppress the # SERIAL comment line")
	fc.fs.StringVar(&fc.format, "format", "", "Render entries through a template with {{network}}, {{region}} and {{services}}")

	return fc
}

// FilterCommand loads the ranges document, consolidates and orders its
// prefixes, applies the filter terms given as positional arguments and
// prints the matching entries.
type FilterCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	url           string
	file          string
	minSerial     int64
	noPrintSerial bool
	format        string

	verbose bool
	quiet   bool
	terms   []string
}

func (f *FilterCommand) Name() string {
	return f.fs.Name()
}

func (f *FilterCommand) Init(args []string, ctx *AppContext) error {
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	f.terms = f.fs.Args()
	f.verbose = ctx.Verbose
	f.quiet = ctx.Quiet

	if cfg, err := loadConfigOrDefault(ctx.ConfigPath); err != nil {
		return err
	} else {
		f.cfg = cfg
	}

	if f.url == "" {
		f.url = f.cfg.General.RangesURL
	}
	if f.format == "" {
		f.format = f.cfg.General.Format
	}

	return nil
}

func (f *FilterCommand) Run() error {
	doc, err := f.loadDocument()
	if err != nil {
		return err
	}

	if f.minSerial >= 0 {
		serial, err := doc.SerialInt()
		if err != nil {
			return err
		}
		if serial <= f.minSerial {
			log.Debugf("Document serial %d does not exceed %d, skipping", serial, f.minSerial)
			return nil
		}
	}

	consolidated, err := doc.Consolidate()
	if err != nil {
		return err
	}
	ranges.SortByNetwork(consolidated)

	keywords, addresses := filter.ParseTerms(f.terms)

	entries := consolidated
	for _, term := range keywords {
		entries = filter.Apply(entries, term)
	}
	if len(addresses) > 0 {
		entries = filter.MatchAddresses(entries, addresses)
	}

	var out strings.Builder
	if !f.noPrintSerial && !f.quiet {
		fmt.Fprintf(&out, "# SERIAL=%s\n", doc.SyncToken)
	}
	if f.verbose && !f.quiet {
		fmt.Fprintln(&out, ranges.Summary(len(doc.Prefixes), len(consolidated), len(entries)))
	}

	var lines []string
	if f.format != "" {
		lines = ranges.RenderTemplate(entries, f.format)
	} else {
		lines = ranges.Render(entries, f.verbose)
	}
	for _, line := range lines {
		fmt.Fprintln(&out, line)
	}

	_, err = os.Stdout.WriteString(out.String())
	return err
}

func (f *FilterCommand) loadDocument() (*ranges.Document, error) {
	if f.file != "" {
		return ranges.LoadFile(f.file)
	}
	return ranges.Fetch(f.url)
}
