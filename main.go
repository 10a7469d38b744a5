package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/roffe/txgauges/pkg/config"
	"github.com/roffe/txgauges/pkg/theme"
	"github.com/roffe/txgauges/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a := app.NewWithID("com.roffe.txgauges")
	a.Settings().SetTheme(&theme.GaugeTheme{})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mw := windows.NewMainWindow(a, cfg, nil)
	mw.SetMaster()
	mw.CenterOnScreen()
	if err := mw.Start(ctx); err != nil {
		log.Fatal(err)
	}
	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		fyne.Do(a.Quit)
	}()

	mw.ShowAndRun()
	mw.Stop()
}
