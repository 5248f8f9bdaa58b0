package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"widgetconfig/internal/config"
	"widgetconfig/internal/errs"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/output"
	"widgetconfig/internal/server"
	"widgetconfig/internal/status"
	"widgetconfig/internal/widget"
)

var (
	Version   = "unknown"
	BuildTime = "unknown"
)

const ShutdownTimeout = 5 * time.Second

func main() {
	configFlag := flag.String("config", "", "Configuration file name (without .json extension)")
	configDirFlag := flag.String("config-dir", "./config", "Configuration directory")
	listConfigsFlag := flag.Bool("list-configs", false, "List available configuration files")
	listWidgetsFlag := flag.Bool("list-widgets", false, "List widget variants, their controls and saved instances")
	renderFlag := flag.String("render", "", "Render a preview of the given widget variant and exit")
	outFlag := flag.String("out", "preview.png", "Output file for -render")
	widgetFlag := flag.String("widget", "preview", "Widget instance id whose saved settings -render uses")
	locationFlag := flag.String("location", "", "Location id for the preview (default: first configured)")
	serveFlag := flag.Bool("serve", false, "Run the configuration screen HTTP server")

	flag.Parse()

	configManager := config.NewConfigManager(*configDirFlag)

	if *listConfigsFlag {
		configs, err := configManager.ListConfigs()
		if err != nil {
			logging.Fatal("Config enumeration failed: %v", err)
		}
		fmt.Println("Available configurations:")
		for _, name := range configs {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := configManager.LoadConfig(*configFlag)
		if err != nil {
			logging.Fatal("Config load failed '%s': %v", *configFlag, err)
		}
		cfg = loaded
	}

	logging.Init(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	logging.Info("Widget configurator v%s (built %s)", Version, BuildTime)

	ctx := context.Background()
	a, err := newApp(ctx, cfg)
	if err != nil {
		if errs.IsIntegrity(err) {
			logging.Fatal("Resource integrity check failed: %v", err)
		}
		logging.Fatal("Startup failed: %v", err)
	}
	defer a.Close()

	logging.Info("Config: %s | Store: %s | Locale: %s | Lunar: %v",
		cfg.Name, cfg.GetStore(), cfg.GetLocale(), a.lunar())

	switch {
	case *listWidgetsFlag:
		listWidgets(ctx, a)
	case *renderFlag != "":
		if err := renderOnce(ctx, a, *renderFlag, *widgetFlag, *locationFlag, *outFlag); err != nil {
			logging.Fatal("Render failed: %v", err)
		}
	case *serveFlag:
		if err := serve(a); err != nil {
			logging.Fatal("Server failed: %v", err)
		}
	default:
		fmt.Println("Usage: widgetconfig [-config <name>] -serve | -render <variant> | -list-widgets")
		fmt.Println("Use -list-configs to enumerate available configurations")
	}
}

func listWidgets(ctx context.Context, a *app) {
	fmt.Printf("%-20s %-38s %s\n", "Variant", "Store key", "Controls")
	fmt.Printf("%-20s %-38s %s\n", "-------", "---------", "--------")
	for _, name := range a.registry.Names() {
		w, _ := a.registry.Get(name)
		controls := w.SetupView(widget.Capabilities{Lunar: a.lunar()})
		var visible []string
		for _, ctl := range widget.AllControls {
			if controls.Visible(ctl) {
				visible = append(visible, string(ctl))
			}
		}
		fmt.Printf("%-20s %-38s %s\n", name, w.ConfigStoreKey(), strings.Join(visible, ","))

		ids, err := a.store.List(ctx, w.ConfigStoreKey())
		if err != nil {
			logging.WarnModule("store", "list %s failed: %v", w.ConfigStoreKey(), err)
			continue
		}
		for _, id := range ids {
			fmt.Printf("  %s\n", id)
		}
	}
}

func renderOnce(ctx context.Context, a *app, variant, widgetID, locationID, out string) error {
	w, ok := a.registry.Get(variant)
	if !ok {
		return fmt.Errorf("unknown widget variant %q (have %s)", variant, strings.Join(a.registry.Names(), ", "))
	}
	loc, err := a.location(locationID)
	if err != nil {
		return err
	}

	controller := widget.NewController(w, a.store, a.lunar)
	if err := controller.Open(ctx, widgetID); err != nil {
		return err
	}

	start := time.Now()
	img, err := controller.Preview(ctx, loc, start)
	if err != nil {
		return err
	}
	logging.DebugModule("render", "Render time: %v", time.Since(start))

	outputManager := output.NewOutputManager(output.NewFileOutputHandler(out))
	defer outputManager.Close()
	if a.config.PreviewDir != "" {
		dirOutput, err := output.NewDirOutputHandler(a.config.PreviewDir)
		if err != nil {
			return err
		}
		outputManager.AddHandler(dirOutput)
	}
	if _, err := outputManager.Output(variant+"/"+widgetID, img); err != nil {
		return err
	}
	logging.Info("Preview of %s/%s written to %s", variant, widgetID, out)
	return nil
}

func serve(a *app) error {
	var outputs []output.OutputHandler
	if a.config.PreviewDir != "" {
		dirOutput, err := output.NewDirOutputHandler(a.config.PreviewDir)
		if err != nil {
			return err
		}
		outputs = append(outputs, dirOutput)
		logging.InfoModule("output", "Writing pushed previews to %s", a.config.PreviewDir)
	}

	previews := &status.Counter{}
	srv := server.New(server.Deps{
		Registry:    a.registry,
		Store:       a.store,
		Lunar:       a.lunar,
		Locations:   a.locations,
		Status:      status.DefaultRegistry(previews),
		Previews:    previews,
		Outputs:     outputs,
		MaxSessions: a.config.Sessions.Max,
		SessionTTL:  a.config.GetSessionTTL(),
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(a.config.GetListen())
	}()

	logging.Info("started, pid is %d", os.Getpid())

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-signalChan:
		logging.Info("Shutdown initiated")
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
