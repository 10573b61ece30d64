package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/digimart/storefront/config"
	"github.com/digimart/storefront/internal/app"
	"github.com/digimart/storefront/internal/pages"
	"github.com/digimart/storefront/internal/shopapi"
	"github.com/digimart/storefront/internal/webserver"
)

var (
	configFile = flag.String("c", "storefront.yml", "config file path")
	showVer    = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("storefront", version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		log.Fatalf("init application: %v", err)
	}
	defer application.Release()

	webserver.Init(application)
	shopapi.InitRouter()
	if err := pages.InitRouter(); err != nil {
		log.Fatalf("init pages: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	application.StartBackgroundJobs(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := webserver.Listen(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s := <-sig:
			log.Printf("received signal %s, shutting down", s)
			shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
			defer stop()
			return webserver.Shutdown(shutdownCtx)
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatalf("server error: %v", err)
	}
}
