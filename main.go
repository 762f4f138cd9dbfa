package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/config"
	"github.com/catatumbo/nube-catatumbo/internal/connectivity"
	"github.com/catatumbo/nube-catatumbo/internal/schedule"
	"github.com/catatumbo/nube-catatumbo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.catatumbo.nube"
	AppName = "Nube Catatumbo"
)

func main() {
	configPath := flag.String("config", "", "path to a catatumbo.yaml config file")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Error("failed to load config")
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel())
	logger.WithField("version", version).Infof("%s starting", AppName)

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", fmt.Sprint(r)).Error("fatal error")
			os.Exit(1)
		}
	}()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCatatumboTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Timer callbacks run on the UI goroutine
	scheduler := schedule.NewClock(fyne.Do)

	root := ui.NewRootUI(myWindow, myApp, cfg, scheduler, logger)

	// Checks dial off the UI goroutine; results come back through fyne.Do
	monitor := connectivity.NewMonitor(connectivity.Config{
		Interval: cfg.Connection.CheckInterval,
		Timeout:  cfg.Connection.Timeout,
	}, connectivity.NewDialChecker(cfg.Connection.Address), root.Shell().Scheduler(), logger)
	monitor.SetDispatchers(schedule.Background, fyne.Do)
	defer monitor.Stop()
	myApp.Lifecycle().SetOnEnteredForeground(monitor.Check)

	root.SetConnectivity(monitor)
	root.Start()

	myWindow.ShowAndRun()
}
