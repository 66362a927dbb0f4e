package console

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/udisondev/battlego/internal/game/event"
)

// HPBarWidth is the number of cells in an HP bar.
const HPBarWidth = 20

// Renderer prints narration events as text. It implements event.Notifier.
type Renderer struct {
	out  io.Writer
	bell bool
}

// NewRenderer creates a renderer. The terminal bell is enabled only when
// out is a terminal.
func NewRenderer(out io.Writer) *Renderer {
	r := &Renderer{out: out}
	if f, ok := out.(*os.File); ok {
		r.bell = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// SetBell overrides terminal detection.
func (r *Renderer) SetBell(on bool) { r.bell = on }

func (r *Renderer) Notify(e event.Event) {
	switch e.Kind {
	case event.KindRoundStart:
		fmt.Fprintf(r.out, "\n%s\n", e.Text)
		r.status(e.Status)
	case event.KindAttack, event.KindItem:
		fmt.Fprintln(r.out, e.Text)
		r.ring()
	case event.KindFaint, event.KindMatchEnd, event.KindLevelUp:
		fmt.Fprintf(r.out, "\n%s\n", e.Text)
	default:
		fmt.Fprintln(r.out, e.Text)
	}
}

func (r *Renderer) status(status []event.Status) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(r.out, rule)
	for _, s := range status {
		fmt.Fprintf(r.out, "%s's %s  HP: %s   Level: %d  XP: %d\n", s.Owner, s.Name, HPBar(s.HP, s.MaxHP), s.Level, s.XP)
	}
	fmt.Fprintln(r.out, rule)
}

func (r *Renderer) ring() {
	if r.bell {
		fmt.Fprint(r.out, "\a")
	}
}

// HPBar renders "[████      ] cur/max" with HPBarWidth cells.
// Negative HP is shown as 0.
func HPBar(cur, maxHP int) string {
	cur = max(cur, 0)
	filled := 0
	if maxHP > 0 {
		filled = int(math.Round(float64(cur) / float64(maxHP) * HPBarWidth))
	}
	filled = min(filled, HPBarWidth)
	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("█", filled), strings.Repeat(" ", HPBarWidth-filled), cur, maxHP)
}
