// Sequencer plays a YAML-scripted animation timeline in the terminal. Each
// step tweens a bar from its current position to a new one with a named
// easing curve; steps are chained into a single composite handle and the
// whole sequence takes an optional loop policy.
//
// Run from the repository root:
//
//	go run ./demos/sequencer
//
// Press q, Esc, or Ctrl+C to quit.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	fease "github.com/fogleman/ease"
	"github.com/gdamore/tcell/v2"
	gease "github.com/tanema/gween/ease"
	"gopkg.in/yaml.v2"

	"github.com/phanxgames/sway"
)

const tickRate = 30

type step struct {
	To       float64 `yaml:"to"`
	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing"`
}

type timeline struct {
	Loop  string `yaml:"loop"`
	Steps []step `yaml:"steps"`
}

// curves mixes the built-ins, fogleman/ease curves (same signature), and
// gween/ease curves through the adapter.
var curves = map[string]sway.Easing{
	"linear":      sway.Linear,
	"in-out":      sway.EaseInOut,
	"in-quad":     fease.InQuad,
	"out-quad":    fease.OutQuad,
	"in-out-quad": fease.InOutQuad,
	"out-bounce":  fease.OutBounce,
	"out-elastic": sway.GweenEasing(gease.OutElastic),
	"in-back":     sway.GweenEasing(gease.InBack),
}

var loops = map[string]sway.LoopType{
	"":          sway.LoopNone,
	"none":      sway.LoopNone,
	"repeat":    sway.LoopRepeat,
	"reflect":   sway.LoopReflect,
	"ping-pong": sway.LoopPingPong,
}

func loadTimeline(path string) (*timeline, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tl timeline
	if err := yaml.Unmarshal(raw, &tl); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(tl.Steps) == 0 {
		return nil, fmt.Errorf("%s: timeline has no steps", path)
	}
	for i, s := range tl.Steps {
		if _, ok := curves[s.Easing]; !ok {
			return nil, fmt.Errorf("%s: step %d: unknown easing %q", path, i+1, s.Easing)
		}
	}
	if _, ok := loops[tl.Loop]; !ok {
		return nil, fmt.Errorf("%s: unknown loop policy %q", path, tl.Loop)
	}
	return &tl, nil
}

// build turns the timeline into one composite handle animating value. Each
// step starts from the previous step's target as a literal, not a getter,
// so the sequence replays identically under loop policies that traverse it
// backwards.
func build(d *sway.Driver, tl *timeline, value *float64) *sway.Handle {
	set := sway.Set(func(v float64) { *value = v })

	from := *value
	h := d.Tween(set, from, tl.Steps[0].To, tl.Steps[0].Duration, curves[tl.Steps[0].Easing])
	from = tl.Steps[0].To
	for _, s := range tl.Steps[1:] {
		h = h.Then(d.Tween(set, from, s.To, s.Duration, curves[s.Easing]))
		from = s.To
	}
	return h.Loop(loops[tl.Loop])
}

func main() {
	path := "demos/sequencer/timeline.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	tl, err := loadTimeline(path)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("new screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	driver := sway.NewDriver()
	value := 0.0
	handle := build(driver, tl, &value)
	if handle.Err() != nil {
		screen.Fini()
		log.Fatalf("timeline: %v", handle.Err())
	}

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	last := time.Now()
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			driver.Advance(now.Sub(last).Seconds())
			last = now

			width, _ := screen.Size()
			usable := width - 4
			if usable < 10 {
				usable = 10
			}
			cells := int(value / 100 * float64(usable))
			if cells > usable {
				cells = usable // elastic overshoot
			}

			screen.Clear()
			for x := 0; x < cells; x++ {
				screen.SetContent(2+x, 2, '█', nil, barStyle)
			}
			status := fmt.Sprintf("%5.1f%%  (q to quit)", value)
			if !handle.Active() {
				status = "done — q to quit"
			}
			for i, r := range status {
				screen.SetContent(2+i, 4, r, nil, tcell.StyleDefault)
			}
			screen.Show()
		}
	}
}
