// Package viz provides a terminal live view for long-running
// integrations, showing per-iteration estimates as they arrive.
package viz

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dbdm/vegas"
)

// FeedStats returns an iteration callback that forwards stats to ch.
// Once ctx is canceled the stats are dropped instead, so a sampler keeps
// unwinding after the view goes away rather than blocking on the send.
func FeedStats(ctx context.Context, ch chan<- vegas.IterationStat) func(vegas.IterationStat) {
	return func(s vegas.IterationStat) {
		select {
		case ch <- s:
		case <-ctx.Done():
		}
	}
}

// Outcome is the terminal state of a monitored integration.
type Outcome struct {
	Value float64
	Err   float64
	Fail  error
}

type statMsg vegas.IterationStat

type doneMsg Outcome

// Monitor is a bubbletea model displaying integration progress. Feed it
// iteration stats and the final outcome over the two channels; it quits
// on completion or on q/ctrl+c.
type Monitor struct {
	title    string
	stats    <-chan vegas.IterationStat
	done     <-chan Outcome
	history  []vegas.IterationStat
	outcome  *Outcome
	quitting bool
}

func NewMonitor(title string, stats <-chan vegas.IterationStat, done <-chan Outcome) Monitor {
	return Monitor{
		title: title,
		stats: stats,
		done:  done,
	}
}

func (m Monitor) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case s, ok := <-m.stats:
			if ok {
				return statMsg(s)
			}
			return doneMsg(<-m.done)
		case o := <-m.done:
			return doneMsg(o)
		}
	}
}

func (m Monitor) Init() tea.Cmd {
	return m.wait()
}

func (m Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case statMsg:
		m.history = append(m.history, vegas.IterationStat(msg))
		return m, m.wait()
	case doneMsg:
		o := Outcome(msg)
		m.outcome = &o
		return m, tea.Quit
	}
	return m, nil
}

func (m Monitor) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(m.title)

	var body string
	if len(m.history) == 0 {
		body = valueStyle.Render("sampling...")
	} else {
		last := m.history[len(m.history)-1]
		body = fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s",
			labelStyle.Render("iteration"),
			valueStyle.Render(fmt.Sprintf("%d", last.Iteration)),
			labelStyle.Render("estimate"),
			valueStyle.Render(fmt.Sprintf("%.6e +- %.2e", last.Running, last.RunningErr)),
			labelStyle.Render("last iter"),
			valueStyle.Render(fmt.Sprintf("%.6e +- %.2e", last.Mean, last.Err)),
			labelStyle.Render("chi2/dof"),
			valueStyle.Render(fmt.Sprintf("%.3f", last.ChiSq)),
		)
	}

	var graph string
	if len(m.history) >= 2 {
		data := make([]float64, len(m.history))
		for i, s := range m.history {
			data[i] = s.Mean
		}
		graph = graphStyle.Render(asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("iteration estimates"),
		))
	}

	status := ""
	if m.outcome != nil {
		if m.outcome.Fail != nil {
			status = failStyle.Render(fmt.Sprintf("failed: %v", m.outcome.Fail))
		} else {
			status = okStyle.Render(fmt.Sprintf("result: %.6e +- %.2e", m.outcome.Value, m.outcome.Err))
		}
	}

	out := header + "\n\n" + panelStyle.Render(body)
	if graph != "" {
		out += "\n" + graph
	}
	if status != "" {
		out += "\n" + status
	}
	out += helpStyle.Render("\nq: quit")
	return out
}

// Result returns the final outcome once the monitor has quit, or nil if
// the run was interrupted.
func (m Monitor) Result() *Outcome {
	return m.outcome
}
