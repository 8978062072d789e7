package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"nickandperla.net/aurascript/internal/console"
	"nickandperla.net/aurascript/pkg/aura"
)

const historyWidth = 72

func printHistory(rt *aura.Runtime, limit int, con *console.Console) error {
	entries, err := rt.History(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		con.Infof("No generations recorded.")
		return nil
	}
	writeHistory(con, entries, time.Now())
	return nil
}

func writeHistory(con *console.Console, entries []aura.Generation, now time.Time) {
	for _, g := range entries {
		con.Infof("#%d %s, %s", g.ID, g.Provider, humanize.RelTime(g.CreatedAt, now, "ago", "from now"))
		fmt.Fprintf(con.Out, "  you> %s\n", oneLine(g.Prompt, historyWidth))
		if g.Failed() {
			fmt.Fprintf(con.Out, "  error: %s\n", oneLine(g.Error, historyWidth))
		} else {
			fmt.Fprintf(con.Out, "  AI: %s\n", oneLine(g.Response, historyWidth))
		}
	}
}

// oneLine collapses whitespace runs and cuts s to width runes.
func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
