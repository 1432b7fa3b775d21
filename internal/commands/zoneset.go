package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/miekg/dns"

	"awsranges/internal/config"
	apperrors "awsranges/internal/errors"
	"awsranges/internal/zone"
)

func CreateZoneSetCommand() *ZoneSetCommand {
	zc := &ZoneSetCommand{
		fs: flag.NewFlagSet("zoneset", flag.ExitOnError),
	}

	zc.fs.StringVar(&zc.zone, "zone", "", "Zone to build a change-set for (required)")
	zc.fs.StringVar(&zc.server, "server", "", "DNS server to request the zone transfer from (default: configured server)")
	zc.fs.StringVar(&zc.file, "file", "", "Read the zone from a file instead of performing a transfer")
	zc.fs.UintVar(&zc.ttl, "ttl", 0, "TTL for emitted records (default: configured TTL)")

	return zc
}

// ZoneSetCommand converts the records of a zone into an nsupdate-style
// change-set on stdout.
type ZoneSetCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	zone   string
	server string
	file   string
	ttl    uint
}

func (z *ZoneSetCommand) Name() string {
	return z.fs.Name()
}

func (z *ZoneSetCommand) Init(args []string, ctx *AppContext) error {
	if err := z.fs.Parse(args); err != nil {
		return err
	}

	if z.zone == "" {
		return fmt.Errorf("the -zone flag is required")
	}

	if cfg, err := loadConfigOrDefault(ctx.ConfigPath); err != nil {
		return err
	} else {
		z.cfg = cfg
	}

	if z.server == "" {
		z.server = z.cfg.Zone.Server
	}
	if z.ttl == 0 {
		z.ttl = uint(z.cfg.Zone.TTL)
	}
	if z.file == "" && z.server == "" {
		return fmt.Errorf("either -server or -file is required")
	}

	return nil
}

func (z *ZoneSetCommand) Run() error {
	records, err := z.loadRecords()
	if err != nil {
		return err
	}

	lines := zone.Build(z.zone, records, uint32(z.ttl)).Render()

	var out strings.Builder
	for _, line := range lines {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	_, err = os.Stdout.WriteString(out.String())
	return err
}

func (z *ZoneSetCommand) loadRecords() ([]dns.RR, error) {
	if z.file != "" {
		data, err := os.ReadFile(z.file)
		if err != nil {
			return nil, apperrors.NewZoneError(fmt.Sprintf("failed to read zone file %s", z.file), err)
		}
		return zone.ParseZoneData(z.zone, string(data))
	}
	return zone.Transfer(z.zone, z.server)
}
