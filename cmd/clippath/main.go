// Command clippath replays polygon editing scripts and serves the live
// editor.
//
//	clippath replay -script triangle.yaml -png triangle.png
//	clippath serve -addr :8080
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/clippath"
	"github.com/gogpu/clippath/canvas"
	"github.com/gogpu/clippath/display"
	"github.com/gogpu/clippath/internal/config"
	"github.com/gogpu/clippath/live"
	"github.com/gogpu/clippath/script"
	"github.com/muesli/termenv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "replay":
		err = runReplay(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "clippath: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "clippath: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage:
  clippath replay -script FILE [-config FILE] [-png FILE] [-v]
  clippath serve [-addr ADDR] [-config FILE] [-v]
`)
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	clippath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	var (
		scriptPath = fs.String("script", "", "session script (YAML)")
		configPath = fs.String("config", "", "configuration file (TOML)")
		pngPath    = fs.String("png", "", "write a labelled PNG snapshot to this file")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	_ = fs.Parse(args)
	setupLogging(*verbose)

	if *scriptPath == "" {
		return errors.New("replay: -script is required")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	sc, err := script.Load(*scriptPath)
	if err != nil {
		return err
	}

	opts := cfg.SessionOptions()
	var cv *canvas.Canvas
	if *pngPath != "" {
		cv, err = canvas.New(sc.Canvas.Width, sc.Canvas.Height, cfg.CanvasOptions()...)
		if err != nil {
			return err
		}
		opts = append(opts, clippath.WithRenderer(cv))
	}

	s := sc.NewSession(opts...)
	if err := sc.Run(s); err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout)
	if err := display.Write(os.Stdout, s.Tokens(), out.EnvColorProfile()); err != nil {
		return err
	}

	if cv != nil {
		s.Redraw()
		cv.DrawLabels(s.Tokens(), s.Vertices())
		if err := cv.SavePNG(*pngPath); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		clippath.Logger().Info("snapshot saved", "path", *pngPath, "width", cv.Width(), "height", cv.Height())
	}
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		addr       = fs.String("addr", "", "listen address (overrides config)")
		configPath = fs.String("config", "", "configuration file (TOML)")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	_ = fs.Parse(args)
	setupLogging(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           live.NewServer(cfg.Canvas.Width, cfg.Canvas.Height, cfg.SessionOptions()...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		clippath.Logger().Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		clippath.Logger().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
