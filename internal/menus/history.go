package menus

import (
	"io"
	"time"

	"go.uber.org/zap"

	"kmaint/internal/menu"
	"kmaint/internal/ui"
)

// historyWindow is how many ledger entries the history view shows.
const historyWindow = 10

// History renders the most recent ledger entries. The body reads the
// store on every display, so ENTER (the refresh default) is enough to
// pick up actions journaled since the last look.
type History struct {
	menu.Crumb
	d *Deps
}

func NewHistory(d *Deps) *History {
	return &History{d: d}
}

func (h *History) Name() string { return "history" }

func (h *History) Footer() menu.FooterKind { return menu.FooterBack }

func (h *History) InputLabel() string { return "Press ENTER to refresh" }

func (h *History) Body(w io.Writer) {
	b := ui.NewBox(w, h.d.Palette)
	b.Top()
	b.Title(" [ History ] ", h.d.Palette.Cyan)
	b.Divider()

	actions, err := h.d.Store.RecentActions(historyWindow)
	switch {
	case err != nil:
		b.Row("History unavailable.")
		h.d.Logger.Error("read history", zap.Error(err))
	case len(actions) == 0:
		b.Row("No actions recorded yet.")
	default:
		for _, a := range actions {
			ts := time.UnixMilli(a.StartedAt).Format("2006-01-02 15:04")
			b.Rowf("%s  %-14.14s %-10.10s %s", ts, a.Kind, a.Target, a.Status)
		}
	}
	b.Blank()
	b.Row("ENTER to refresh")
}

func (h *History) Options() menu.Table { return menu.Table{} }

// Default redisplays; the body re-reads the ledger by itself.
func (h *History) Default() menu.Option {
	return menu.Call(func() error { return nil })
}
