package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"awsranges/internal/api"
	"awsranges/internal/config"
	"awsranges/internal/log"
	"awsranges/internal/ranges"
)

func CreateServeCommand() *ServeCommand {
	sc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}

	sc.fs.StringVar(&sc.listen, "listen", "", "Listen address (default: configured address)")

	return sc
}

// ServeCommand runs the HTTP API server. The ranges document is fetched at
// startup and refreshed in the background at the configured interval.
type ServeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	listen string
}

func (s *ServeCommand) Name() string {
	return s.fs.Name()
}

func (s *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := s.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrDefault(ctx.ConfigPath); err != nil {
		return err
	} else {
		s.cfg = cfg
	}

	if s.listen == "" {
		s.listen = s.cfg.Server.Listen
	}

	return nil
}

func (s *ServeCommand) Run() error {
	store := api.NewDocumentStore()

	doc, err := ranges.Fetch(s.cfg.General.RangesURL)
	if err != nil {
		return fmt.Errorf("initial document fetch failed: %w", err)
	}
	store.Set(doc)
	log.Infof("Loaded ranges document, serial %s, %d prefixes", doc.SyncToken, len(doc.Prefixes))

	handler := api.NewHandler(store, s.cfg.General.RangesURL)
	server := api.NewServer(s.listen, api.NewRouter(handler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var refresher *RestartableRunner
	if s.cfg.Server.RefreshIntervalMinutes > 0 {
		interval := time.Duration(s.cfg.Server.RefreshIntervalMinutes) * time.Minute
		refresher = NewRestartableRunner("document-refresher", func(ctx context.Context) error {
			return refreshLoop(ctx, store, s.cfg.General.RangesURL, interval)
		})
		if err := refresher.Start(ctx); err != nil {
			return err
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-signals:
		log.Infof("Received signal %v, shutting down", sig)
	}

	if refresher != nil {
		if err := refresher.Stop(); err != nil {
			log.Warnf("Failed to stop document refresher: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	return server.Stop(shutdownCtx)
}

// refreshLoop periodically re-fetches the document. Fetch failures are
// logged and the previous document stays in place until the next tick.
func refreshLoop(ctx context.Context, store *api.DocumentStore, url string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			doc, err := ranges.Fetch(url)
			if err != nil {
				log.Errorf("Background refresh failed: %v", err)
				continue
			}
			store.Set(doc)
			log.Infof("Ranges document refreshed, serial %s, %d prefixes", doc.SyncToken, len(doc.Prefixes))
		}
	}
}
