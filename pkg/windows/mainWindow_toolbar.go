package windows

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/snapshot"
)

func (mw *MainWindow) newToolbar() *fyne.Container {
	return container.NewHBox(
		widget.NewButtonWithIcon("Save snapshot", theme.DocumentSaveIcon(), mw.saveSnapshot),
		widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), mw.copySnapshot),
	)
}

// current returns the selected tab's gauge and its on-screen size.
func (mw *MainWindow) current() (string, gauge.Painter, snapshot.Options) {
	name := tabClock
	if item := mw.tabs.Selected(); item != nil {
		name = item.Text
	}
	d := mw.dials[name]
	size := d.Size()
	opts := snapshot.Options{
		Width:       max(int(size.Width), 64),
		Height:      max(int(size.Height), 64),
		Supersample: 2,
	}
	return name, d.Painter(), opts
}

func (mw *MainWindow) saveSnapshot() {
	name, p, opts := mw.current()
	filename, err := snapshot.Save(p, opts, "Save "+name+" snapshot")
	if err != nil {
		if errors.Is(err, snapshot.ErrCancelled) {
			return
		}
		mw.Error(err)
		return
	}
	mw.Log("Saved " + filename)
	if err := snapshot.Open(filename); err != nil {
		mw.Error(err)
	}
}

func (mw *MainWindow) copySnapshot() {
	name, p, opts := mw.current()
	if err := snapshot.Copy(p, opts); err != nil {
		mw.Error(err)
		return
	}
	mw.Log("Copied " + name + " to clipboard")
}
