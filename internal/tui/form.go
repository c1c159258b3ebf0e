package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/cli"
	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/model"
	"github.com/theirongolddev/cryptosave/internal/tui/components"
	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName = iota
	fieldTier
	fieldAmount
	formFieldCount // sentinel
)

const formLabelW = 8

// memberForm holds the text inputs behind the add-member draft.
// The draft itself lives in pool.State; the inputs mirror it.
type memberForm struct {
	focus  int
	name   textinput.Model
	amount textinput.Model
}

func newMemberForm() memberForm {
	name := textinput.New()
	name.Placeholder = "Member name"
	name.CharLimit = 40
	name.Width = 30

	amount := textinput.New()
	amount.Placeholder = "Select a tier first"
	amount.CharLimit = 12
	amount.Width = 20

	return memberForm{focus: fieldName, name: name, amount: amount}
}

// setFocus moves focus to field i, wrapping around.
func (f *memberForm) setFocus(i int) tea.Cmd {
	f.focus = (i + formFieldCount) % formFieldCount
	f.name.Blur()
	f.amount.Blur()
	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldAmount:
		return f.amount.Focus()
	}
	return nil
}

// tierChoices is the selector's cycle order; "" is "Select Tier".
func tierChoices() []string {
	tiers := config.Tiers()
	choices := make([]string, 0, len(tiers)+1)
	choices = append(choices, "")
	for _, t := range tiers {
		choices = append(choices, strconv.Itoa(t.ID))
	}
	return choices
}

func cycleTier(current string, dir int) string {
	choices := tierChoices()
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	return choices[(idx+dir+len(choices))%len(choices)]
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		a.state = a.state.Cancel()
		a.form = newMemberForm()
		return a, nil
	case "enter":
		a.submitForm()
		return a, nil
	case "tab", "down":
		return a, a.form.setFocus(a.form.focus + 1)
	case "shift+tab", "up":
		return a, a.form.setFocus(a.form.focus - 1)
	}

	if a.form.focus == fieldTier {
		switch key {
		case "left", "h":
			a.selectTier(cycleTier(a.state.Draft.Tier, -1))
		case "right", "l", " ", "space":
			a.selectTier(cycleTier(a.state.Draft.Tier, 1))
		case "1", "2", "3":
			a.selectTier(key)
		case "0", "backspace", "delete":
			a.selectTier("")
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.form.focus {
	case fieldName:
		a.form.name, cmd = a.form.name.Update(msg)
		a.state = a.state.EditName(a.form.name.Value())
	case fieldAmount:
		a.form.amount, cmd = a.form.amount.Update(msg)
		a.state = a.state.EditAmount(a.form.amount.Value())
	}
	return a, cmd
}

func (a *App) selectTier(tier string) {
	a.state = a.state.SelectTier(tier)
	a.form.amount.SetValue(a.state.Draft.Amount)
}

func (a App) renderForm(cw int) string {
	t := theme.Active
	st := a.state

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	placeholderStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	bannerStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Red).Bold(true).Padding(0, 1)
	hintStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	label := func(field int, name string) string {
		s := fmt.Sprintf("%-*s", formLabelW, name)
		if a.form.focus == field {
			return focusLabelStyle.Render(s)
		}
		return labelStyle.Render(s)
	}
	fieldErr := func(field string) string {
		msg := st.Errors.Get(field)
		if msg == "" {
			return ""
		}
		return "\n" + spaceStyle.Render(strings.Repeat(" ", formLabelW)) + errStyle.Render(msg)
	}

	var b strings.Builder

	if msg := st.Errors.Get(model.FieldGeneral); msg != "" {
		b.WriteString(bannerStyle.Render(msg))
		b.WriteString("\n\n")
	}

	b.WriteString(label(fieldName, "Name"))
	b.WriteString(a.form.name.View())
	b.WriteString(fieldErr(model.FieldName))
	b.WriteString("\n")

	b.WriteString(label(fieldTier, "Tier"))
	tierText := placeholderStyle.Render("Select Tier")
	if tier, ok := config.LookupTier(tierIDOrZero(st.Draft.Tier)); ok {
		tierText = valueStyle.Render(cli.TierOptionLabel(tier))
	}
	if a.form.focus == fieldTier {
		tierText = focusLabelStyle.Render("‹ ") + tierText + focusLabelStyle.Render(" ›")
	}
	b.WriteString(tierText)
	b.WriteString(fieldErr(model.FieldTier))
	b.WriteString("\n")

	b.WriteString(label(fieldAmount, "Amount"))
	b.WriteString(a.form.amount.View())
	b.WriteString(fieldErr(model.FieldAmount))
	b.WriteString("\n")

	if weekly, after, ok := st.Preview(); ok {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(fmt.Sprintf("Weekly Interest: %s  •  Total after 1 week: %s",
			cli.FormatNaira(weekly), cli.FormatNaira(after))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[Enter] add  [Tab] next field  [←/→ 1-3] tier  [Esc] cancel"))

	return components.ContentCard("Add New Member", b.String(), cw)
}

func tierIDOrZero(raw string) int {
	id, ok := config.ParseTierID(raw)
	if !ok {
		return 0
	}
	return id
}
