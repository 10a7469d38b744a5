package windows

import (
	"slices"

	xwidget "fyne.io/x/fyne/widget"

	"github.com/roffe/txgauges/pkg/timesource"
)

func (mw *MainWindow) newLocationTypeahead() *xwidget.CompletionEntry {
	entry := xwidget.NewCompletionEntry([]string{})
	entry.PlaceHolder = "Type to search for a time zone"

	entry.OnChanged = func(s string) {
		if slices.Contains(timesource.Zones, s) {
			entry.HideCompletion()
			mw.setLocation(s)
			return
		}
		if len(s) < 2 {
			entry.HideCompletion()
			return
		}
		results := timesource.Complete(s)
		if len(results) == 0 {
			entry.HideCompletion()
			return
		}
		entry.SetOptions(results)
		entry.ShowCompletion()
	}
	entry.OnSubmitted = mw.setLocation
	return entry
}

// setLocation points the analog clock at the named zone.
func (mw *MainWindow) setLocation(name string) {
	loc, err := timesource.LoadLocation(name)
	if err != nil {
		mw.Error(err)
		return
	}
	mw.analog.SetLocation(loc)
	mw.Log("Clock location " + loc.String())
}
