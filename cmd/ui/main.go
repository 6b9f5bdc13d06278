package main

import (
	"image/color"
	"os"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"log-manager/internal/api"
	logapp "log-manager/internal/app"
	"log-manager/pkg/appstate"
)

var theme *material.Theme

// Pages
const (
	pageTasks = iota
	pageSchedules
	pageTimers
)

type UI struct {
	svc    *api.Service
	logger zerolog.Logger
	win    *app.Window

	mu     sync.Mutex
	state  appstate.State
	status string

	currentPage int

	// Nav buttons
	navTasks     widget.Clickable
	navSchedules widget.Clickable
	navTimers    widget.Clickable

	// Tasks
	taskList      widget.List
	taskTitle     widget.Editor
	taskDesc      widget.Editor
	taskDue       widget.Editor
	createTaskBtn widget.Clickable
	taskRows      map[string]*taskRow

	// Schedules
	scheduleList      widget.List
	scheduleTitle     widget.Editor
	scheduleDesc      widget.Editor
	scheduleStart     widget.Editor
	scheduleEnd       widget.Editor
	scheduleReminder  widget.Bool
	createScheduleBtn widget.Clickable
	scheduleRows      map[string]*scheduleRow

	// Timers
	timerList      widget.List
	timerName      widget.Editor
	timerMinutes   widget.Editor
	timerPomodoro  widget.Bool
	createTimerBtn widget.Clickable
	timerRows      map[string]*timerRow
}

type taskRow struct {
	done   widget.Bool
	delete widget.Clickable
}

type scheduleRow struct {
	delete widget.Clickable
}

type timerRow struct {
	startStop widget.Clickable
	reset     widget.Clickable
	delete    widget.Clickable
}

func main() {
	svc, logger, err := logapp.Open(logapp.Options{})
	if err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Fatal().Err(err).Msg("failed to start")
	}

	theme = material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	theme.Palette.Bg = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}
	theme.Palette.Fg = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	theme.Palette.ContrastBg = color.NRGBA{R: 0x30, G: 0x60, B: 0xA0, A: 0xFF}
	theme.Palette.ContrastFg = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	w := new(app.Window)
	w.Option(app.Title("Log Manager"))
	w.Option(app.Size(unit.Dp(1000), unit.Dp(720)))

	ui := newUI(svc, logger, w)
	ui.refresh()

	changes := svc.Subscribe()
	go ui.watch(changes)
	go ui.tickTimers()

	go func() {
		err := ui.run(w)
		svc.Unsubscribe(changes)
		if err != nil {
			logger.Fatal().Err(err).Msg("window closed")
		}
		os.Exit(0)
	}()
	app.Main()
}

func newUI(svc *api.Service, logger zerolog.Logger, w *app.Window) *UI {
	ui := &UI{
		svc:          svc,
		logger:       logger,
		win:          w,
		taskRows:     make(map[string]*taskRow),
		scheduleRows: make(map[string]*scheduleRow),
		timerRows:    make(map[string]*timerRow),
	}
	ui.taskList.Axis = layout.Vertical
	ui.scheduleList.Axis = layout.Vertical
	ui.timerList.Axis = layout.Vertical
	for _, ed := range []*widget.Editor{
		&ui.taskTitle, &ui.taskDesc, &ui.taskDue,
		&ui.scheduleTitle, &ui.scheduleDesc, &ui.scheduleStart, &ui.scheduleEnd,
		&ui.timerName, &ui.timerMinutes,
	} {
		ed.SingleLine = true
	}
	return ui
}

func (ui *UI) run(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.handleClicks(gtx)
			ui.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (ui *UI) handleClicks(gtx layout.Context) {
	if ui.navTasks.Clicked(gtx) {
		ui.currentPage = pageTasks
	}
	if ui.navSchedules.Clicked(gtx) {
		ui.currentPage = pageSchedules
	}
	if ui.navTimers.Clicked(gtx) {
		ui.currentPage = pageTimers
	}
	ui.handleTaskClicks(gtx)
	ui.handleScheduleClicks(gtx)
	ui.handleTimerClicks(gtx)
}

func (ui *UI) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.layoutNav(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(16), Right: unit.Dp(16), Bottom: unit.Dp(16), Left: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						switch ui.currentPage {
						case pageSchedules:
							return ui.layoutSchedules(gtx)
						case pageTimers:
							return ui.layoutTimers(gtx)
						default:
							return ui.layoutTasks(gtx)
						}
					}),
					layout.Rigid(ui.layoutStatus),
				)
			})
		}),
	)
}

func (ui *UI) layoutNav(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Dp(unit.Dp(180))
	gtx.Constraints.Max.X = gtx.Dp(unit.Dp(180))
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(16), Bottom: unit.Dp(16), Left: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.H6(theme, "Log Manager")
				label.Color = theme.Palette.ContrastFg
				return label.Layout(gtx)
			})
		}),
		layout.Rigid(navBtn(theme, &ui.navTasks, "Tasks", ui.currentPage == pageTasks)),
		layout.Rigid(navBtn(theme, &ui.navSchedules, "Schedules", ui.currentPage == pageSchedules)),
		layout.Rigid(navBtn(theme, &ui.navTimers, "Timers", ui.currentPage == pageTimers)),
	)
}

func navBtn(th *material.Theme, btn *widget.Clickable, label string, active bool) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(2), Bottom: unit.Dp(2), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			b := material.Button(th, btn, label)
			if active {
				b.Background = th.Palette.ContrastBg
			} else {
				b.Background = color.NRGBA{A: 0}
			}
			b.Color = th.Palette.Fg
			return b.Layout(gtx)
		})
	}
}

func (ui *UI) layoutStatus(gtx layout.Context) layout.Dimensions {
	ui.mu.Lock()
	msg := ui.status
	ui.mu.Unlock()
	if msg == "" {
		return layout.Dimensions{}
	}
	label := material.Caption(theme, msg)
	label.Color = color.NRGBA{R: 0xFF, G: 0xA0, B: 0x00, A: 0xFF}
	return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, label.Layout)
}
