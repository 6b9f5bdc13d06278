package main

import (
	"fmt"
	"image/color"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"log-manager/pkg/timer"
)

var (
	dimColor    = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	activeColor = color.NRGBA{R: 0x00, G: 0xC0, B: 0x00, A: 0xFF}
	dangerColor = color.NRGBA{R: 0xC0, G: 0x30, B: 0x30, A: 0xFF}
)

// Tasks

func (ui *UI) handleTaskClicks(gtx layout.Context) {
	if ui.createTaskBtn.Clicked(gtx) {
		title := strings.TrimSpace(ui.taskTitle.Text())
		if title != "" {
			desc, due := ui.taskDesc.Text(), optional(ui.taskDue.Text())
			ui.do("add task", func() error {
				_, err := ui.svc.AddTask(title, desc, due)
				return err
			})
			ui.taskTitle.SetText("")
			ui.taskDesc.SetText("")
			ui.taskDue.SetText("")
		}
	}
	for id, row := range ui.taskRows {
		if row.done.Update(gtx) {
			ui.do("toggle task", func() error {
				_, err := ui.svc.ToggleTask(id)
				return err
			})
		}
		if row.delete.Clicked(gtx) {
			ui.do("delete task", func() error { return ui.svc.DeleteTask(id) })
		}
	}
}

func (ui *UI) layoutTasks(gtx layout.Context) layout.Dimensions {
	tasks := ui.tasks()
	live := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		live[t.ID] = true
		if ui.taskRows[t.ID] == nil {
			ui.taskRows[t.ID] = &taskRow{}
		}
	}
	pruneRows(ui.taskRows, live)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(theme, "Tasks").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(formRow(
			field(&ui.taskTitle, "Title", 2),
			field(&ui.taskDesc, "Description", 3),
			field(&ui.taskDue, "Due (YYYY-MM-DD HH:MM:SS)", 2),
			rigid(button(&ui.createTaskBtn, "Add")),
		)),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(theme, &ui.taskList).Layout(gtx, len(tasks), func(gtx layout.Context, i int) layout.Dimensions {
				t := tasks[i]
				row := ui.taskRows[t.ID]
				row.done.Value = t.Completed
				return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(material.CheckBox(theme, &row.done, "").Layout),
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									label := material.Body2(theme, t.Title)
									label.Font.Weight = font.Bold
									if t.Completed {
										label.Color = dimColor
									}
									return label.Layout(gtx)
								}),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									meta := t.Description
									if t.DueDate != nil {
										meta = strings.TrimSpace(meta + "  due " + t.DueDate.String())
									}
									label := material.Caption(theme, meta)
									label.Color = dimColor
									return label.Layout(gtx)
								}),
							)
						}),
						layout.Rigid(dangerButton(&row.delete, "Delete")),
					)
				})
			})
		}),
	)
}

// Schedules

func (ui *UI) handleScheduleClicks(gtx layout.Context) {
	if ui.createScheduleBtn.Clicked(gtx) {
		title := strings.TrimSpace(ui.scheduleTitle.Text())
		if title != "" {
			desc := ui.scheduleDesc.Text()
			start := strings.TrimSpace(ui.scheduleStart.Text())
			end := optional(ui.scheduleEnd.Text())
			reminder := ui.scheduleReminder.Value
			ui.do("add schedule", func() error {
				_, err := ui.svc.AddSchedule(title, desc, start, end, reminder)
				return err
			})
			ui.scheduleTitle.SetText("")
			ui.scheduleDesc.SetText("")
			ui.scheduleStart.SetText("")
			ui.scheduleEnd.SetText("")
			ui.scheduleReminder.Value = false
		}
	}
	for id, row := range ui.scheduleRows {
		if row.delete.Clicked(gtx) {
			ui.do("delete schedule", func() error { return ui.svc.DeleteSchedule(id) })
		}
	}
}

func (ui *UI) layoutSchedules(gtx layout.Context) layout.Dimensions {
	schedules := ui.schedules()
	live := make(map[string]bool, len(schedules))
	for _, s := range schedules {
		live[s.ID] = true
		if ui.scheduleRows[s.ID] == nil {
			ui.scheduleRows[s.ID] = &scheduleRow{}
		}
	}
	pruneRows(ui.scheduleRows, live)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(theme, "Schedules").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(formRow(
			field(&ui.scheduleTitle, "Title", 2),
			field(&ui.scheduleDesc, "Description", 2),
			field(&ui.scheduleStart, "Start", 2),
			field(&ui.scheduleEnd, "End (optional)", 2),
			rigid(material.CheckBox(theme, &ui.scheduleReminder, "Reminder").Layout),
			rigid(button(&ui.createScheduleBtn, "Add")),
		)),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(theme, &ui.scheduleList).Layout(gtx, len(schedules), func(gtx layout.Context, i int) layout.Dimensions {
				s := schedules[i]
				row := ui.scheduleRows[s.ID]
				when := s.StartTime.String()
				if s.EndTime != nil {
					when += " - " + s.EndTime.String()
				}
				if s.IsReminder {
					when = "reminder  " + when
				}
				return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									label := material.Body2(theme, s.Title)
									label.Font.Weight = font.Bold
									return label.Layout(gtx)
								}),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									label := material.Caption(theme, strings.TrimSpace(when+"  "+s.Description))
									label.Color = dimColor
									return label.Layout(gtx)
								}),
							)
						}),
						layout.Rigid(dangerButton(&row.delete, "Delete")),
					)
				})
			})
		}),
	)
}

// Timers

func (ui *UI) handleTimerClicks(gtx layout.Context) {
	if ui.createTimerBtn.Clicked(gtx) {
		name := strings.TrimSpace(ui.timerName.Text())
		pomodoro := ui.timerPomodoro.Value
		duration := uint32(timer.PomodoroFocus)
		if minutes := strings.TrimSpace(ui.timerMinutes.Text()); minutes != "" {
			d, err := timer.ParseMinutes(minutes)
			if err != nil {
				ui.setStatus(fmt.Sprintf("%v (1 to %d)", err, timer.MaxMinutes))
				return
			}
			duration = d
		}
		if name == "" {
			name = "Timer"
		}
		ui.do("create timer", func() error {
			_, err := ui.svc.CreateTimer(name, duration, pomodoro)
			return err
		})
		ui.timerName.SetText("")
		ui.timerMinutes.SetText("")
		ui.timerPomodoro.Value = false
	}
	timers := ui.timers()
	for _, t := range timers {
		row := ui.timerRows[t.ID]
		if row == nil {
			continue
		}
		id := t.ID
		if row.startStop.Clicked(gtx) {
			if t.IsRunning {
				ui.do("stop timer", func() error { return ui.svc.StopTimer(id) })
			} else {
				ui.do("start timer", func() error { return ui.svc.StartTimer(id) })
			}
		}
		if row.reset.Clicked(gtx) {
			ui.do("reset timer", func() error { return ui.svc.ResetTimer(id) })
		}
		if row.delete.Clicked(gtx) {
			ui.do("delete timer", func() error { return ui.svc.DeleteTimer(id) })
		}
	}
}

func (ui *UI) layoutTimers(gtx layout.Context) layout.Dimensions {
	timers := ui.timers()
	live := make(map[string]bool, len(timers))
	for _, t := range timers {
		live[t.ID] = true
		if ui.timerRows[t.ID] == nil {
			ui.timerRows[t.ID] = &timerRow{}
		}
	}
	pruneRows(ui.timerRows, live)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(theme, "Timers").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(formRow(
			field(&ui.timerName, "Name", 3),
			field(&ui.timerMinutes, "Minutes (default 25)", 2),
			rigid(material.CheckBox(theme, &ui.timerPomodoro, "Pomodoro").Layout),
			rigid(button(&ui.createTimerBtn, "Create")),
		)),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(theme, &ui.timerList).Layout(gtx, len(timers), func(gtx layout.Context, i int) layout.Dimensions {
				t := timers[i]
				row := ui.timerRows[t.ID]
				label := "Start"
				if t.IsRunning {
					label = "Stop"
				}
				return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									name := material.Body2(theme, t.Name)
									name.Font.Weight = font.Bold
									return name.Layout(gtx)
								}),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									text := fmt.Sprintf("%s left of %s", timer.Clock(t.Remaining()), timer.Clock(t.Duration))
									if t.IsPomodoro {
										text += "  pomodoro"
									}
									caption := material.Caption(theme, text)
									caption.Color = dimColor
									if t.IsRunning {
										caption.Color = activeColor
									}
									return caption.Layout(gtx)
								}),
							)
						}),
						layout.Rigid(button(&row.startStop, label)),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(button(&row.reset, "Reset")),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(dangerButton(&row.delete, "Delete")),
					)
				})
			})
		}),
	)
}

// Widgets

// formItem is one cell of an input row; weight 0 lays it out at its natural size.
type formItem struct {
	weight float32
	w      layout.Widget
}

func field(ed *widget.Editor, hint string, weight float32) formItem {
	return formItem{weight: weight, w: material.Editor(theme, ed, hint).Layout}
}

func rigid(w layout.Widget) formItem {
	return formItem{w: w}
}

func formRow(items ...formItem) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, 0, 2*len(items))
		for i, it := range items {
			if i > 0 {
				children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
			}
			if it.weight > 0 {
				children = append(children, layout.Flexed(it.weight, it.w))
			} else {
				children = append(children, layout.Rigid(it.w))
			}
		}
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
	}
}

func button(btn *widget.Clickable, label string) layout.Widget {
	return material.Button(theme, btn, label).Layout
}

func dangerButton(btn *widget.Clickable, label string) layout.Widget {
	b := material.Button(theme, btn, label)
	b.Background = dangerColor
	return b.Layout
}

func pruneRows[R any](rows map[string]*R, live map[string]bool) {
	for id := range rows {
		if !live[id] {
			delete(rows, id)
		}
	}
}
