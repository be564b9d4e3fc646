package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lunarhare/mindease/internal/gamify"
	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/moodlog"
	"github.com/lunarhare/mindease/internal/utils"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHistory
	StateHabits
	StateCheckin
)

// entryItem adapts a mood entry to the bubbles list.
type entryItem struct {
	entry models.MoodEntry
}

func (i entryItem) Title() string {
	return fmt.Sprintf("%s %s — %s", i.entry.Mood.Emoji(), i.entry.Mood.Label(), utils.DayKeyFromMillis(i.entry.Timestamp))
}

func (i entryItem) Description() string {
	if note := strings.TrimSpace(i.entry.Note); note != "" {
		return note
	}
	return "no note"
}

func (i entryItem) FilterValue() string { return i.entry.Mood.Label() }

type checkinForm struct {
	Mood models.Mood
	Note string
}

type Model struct {
	moods  *moodlog.Store
	engine *gamify.Engine

	state       SessionState
	keys        KeyMap
	help        help.Model
	historyList list.Model

	stats   *models.UserStats
	streak  int
	form    *huh.Form
	formVal *checkinForm
	notice  string

	width    int
	height   int
	quitting bool
	err      error
}

func NewModel(moods *moodlog.Store, engine *gamify.Engine) Model {
	delegate := list.NewDefaultDelegate()
	historyList := list.New([]list.Item{}, delegate, 0, 0)
	historyList.Title = "Check-in history"
	historyList.SetShowStatusBar(false)

	m := Model{
		moods:       moods,
		engine:      engine,
		state:       StateDashboard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		historyList: historyList,
	}
	m.refresh()
	return m
}

// refresh reloads stats, streak, and history from storage.
func (m *Model) refresh() {
	if _, err := m.engine.Update(nil); err != nil {
		m.err = err
		return
	}

	stats, err := m.engine.UserStats()
	if err != nil {
		m.err = err
		return
	}
	m.stats = stats
	m.streak = stats.CurrentStreak

	entries, err := m.moods.List()
	if err != nil {
		m.err = err
		return
	}

	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{entry: e})
	}
	m.historyList.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.historyList.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateCheckin {
			return m.updateCheckinForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.state = m.nextState(1)
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = m.nextState(-1)
			return m, nil

		case key.Matches(msg, m.keys.Checkin):
			return m.startCheckin()

		case key.Matches(msg, m.keys.Habit):
			if m.state == StateHabits {
				return m.completeSelectedHabit()
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	if m.state == StateCheckin && m.form != nil {
		return m.updateCheckinForm(msg)
	}

	if m.state == StateHistory {
		var cmd tea.Cmd
		m.historyList, cmd = m.historyList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) nextState(dir int) SessionState {
	states := []SessionState{StateDashboard, StateHistory, StateHabits}
	for i, s := range states {
		if s == m.state {
			return states[(i+dir+len(states))%len(states)]
		}
	}
	return StateDashboard
}

func (m Model) startCheckin() (tea.Model, tea.Cmd) {
	fv := &checkinForm{}

	options := make([]huh.Option[models.Mood], 0, len(models.AllMoods()))
	for _, mood := range models.AllMoods() {
		options = append(options, huh.NewOption(mood.Emoji()+" "+mood.Label(), mood))
	}

	m.formVal = fv
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How are you feeling today?").
				Options(options...).
				Value(&fv.Mood),
			huh.NewText().
				Title("What's on your mind? (optional)").
				Value(&fv.Note),
		),
	).WithTheme(huh.ThemeDracula())

	m.state = StateCheckin
	m.notice = ""
	return m, m.form.Init()
}

func (m Model) updateCheckinForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		entry := m.moods.NewEntry(m.formVal.Mood, m.formVal.Note, time.Now())
		if err := m.moods.Save(entry); err != nil {
			m.err = err
		} else if unlocked, err := m.engine.Update(&entry); err != nil {
			m.err = err
		} else if len(unlocked) > 0 {
			var titles []string
			for _, a := range unlocked {
				titles = append(titles, a.Icon+" "+a.Title)
			}
			m.notice = "Achievement unlocked: " + strings.Join(titles, ", ")
		}
		m.form = nil
		m.formVal = nil
		m.state = StateDashboard
		m.refresh()
		return m, nil

	case huh.StateAborted:
		m.form = nil
		m.formVal = nil
		m.state = StateDashboard
		return m, nil
	}

	return m, cmd
}

func (m Model) completeSelectedHabit() (tea.Model, tea.Cmd) {
	if m.stats == nil || len(m.stats.Habits) == 0 {
		return m, nil
	}

	// The habit pane is a short fixed catalog; mark the first one not yet
	// completed today.
	today := utils.DayKey(time.Now())
	for _, h := range m.stats.Habits {
		if h.CompletedOn(today) {
			continue
		}
		if err := m.engine.CompleteHabit(h.ID); err != nil {
			m.err = err
		} else {
			m.notice = h.Icon + " " + h.Name + " completed for today"
		}
		break
	}

	m.refresh()
	return m, nil
}
