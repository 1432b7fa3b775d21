package commands

import (
	"flag"

	"awsranges/internal/config"
	"awsranges/internal/ranges"
)

func CreateDownloadCommand() *DownloadCommand {
	dc := &DownloadCommand{
		fs: flag.NewFlagSet("download", flag.ExitOnError),
	}

	dc.fs.StringVar(&dc.url, "url", "", "Fetch the ranges document from this URL (default: configured URL)")

	return dc
}

// DownloadCommand fetches the ranges document into the configured output
// directory, skipping the write when the document is unchanged.
type DownloadCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	url string
}

func (d *DownloadCommand) Name() string {
	return d.fs.Name()
}

func (d *DownloadCommand) Init(args []string, ctx *AppContext) error {
	if err := d.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrDefault(ctx.ConfigPath); err != nil {
		return err
	} else {
		d.cfg = cfg
	}

	if d.url == "" {
		d.url = d.cfg.General.RangesURL
	}

	return nil
}

func (d *DownloadCommand) Run() error {
	_, err := ranges.Download(d.url, d.cfg.GetAbsRangesOutputDir())
	return err
}
