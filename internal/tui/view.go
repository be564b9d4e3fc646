package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lunarhare/mindease/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return docStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.state == StateCheckin && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateHistory:
		content = m.historyList.View()
	case StateHabits:
		content = m.viewHabits()
	}

	sections := []string{m.viewTabs(), content}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "History", "Habits"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	if m.stats == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("MindEase") + "\n\n")

	switch m.streak {
	case 0:
		b.WriteString("No streak yet — press c to check in.\n")
	default:
		b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d-day streak", m.streak)) + "\n")
	}

	b.WriteString(fmt.Sprintf("\nCheck-ins: %d   Longest streak: %d   Reflections: %d\n",
		m.stats.TotalMoodEntries, m.stats.LongestStreak, m.stats.TotalReflections))

	b.WriteString("\n" + titleStyle.Render("Achievements") + "\n")
	for _, a := range m.stats.Achievements {
		if a.IsUnlocked {
			b.WriteString(unlockedStyle.Render(fmt.Sprintf("  %s %s", a.Icon, a.Title)) + "\n")
		} else {
			b.WriteString(lockedStyle.Render(fmt.Sprintf("  %s %s (%d/%d)", a.Icon, a.Title, a.Progress, a.Requirement)) + "\n")
		}
	}

	return b.String()
}

func (m Model) viewHabits() string {
	if m.stats == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Habits") + "\n\n")

	today := utils.DayKey(time.Now())
	for _, h := range m.stats.Habits {
		marker := "○"
		style := lockedStyle
		if h.CompletedOn(today) {
			marker = "✓"
			style = unlockedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %s %s — streak %d, best %d", marker, h.Icon, h.Name, h.CurrentStreak, h.BestStreak)) + "\n")
	}

	b.WriteString("\nPress m to mark the next habit done.\n")
	return b.String()
}
