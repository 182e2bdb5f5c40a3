package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskfx/internal/catalog"
)

type currencyItem struct {
	c catalog.Currency
}

func (i currencyItem) Title() string       { return i.c.Label() }
func (i currencyItem) Description() string { return "" }
func (i currencyItem) FilterValue() string { return i.c.Code + " " + i.c.Name }

type pickerField int

const (
	pickFrom pickerField = iota
	pickTo
)

func (f pickerField) String() string {
	if f == pickTo {
		return "To"
	}
	return "From"
}

// picker is the currency selection modal. Typing filters, arrows move.
type picker struct {
	field pickerField
	input textinput.Model
	list  list.Model
}

func newPicker(field pickerField, current string) *picker {
	inp := textinput.New()
	inp.Placeholder = "search code or name"
	inp.Prompt = "> "
	inp.Focus()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	lst := list.New(nil, d, 40, 12)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.DisableQuitKeybindings()

	p := &picker{field: field, input: inp, list: lst}
	p.refresh()
	for i, it := range p.list.Items() {
		if it.(currencyItem).c.Code == current {
			p.list.Select(i)
			break
		}
	}
	return p
}

// Update handles one key. done is true when the modal should close; code is
// empty when the user cancelled.
func (p *picker) Update(msg tea.KeyMsg) (done bool, code string, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, "", nil
	case "enter":
		if it, ok := p.list.SelectedItem().(currencyItem); ok {
			return true, it.c.Code, nil
		}
		return false, "", nil
	case "up", "ctrl+p":
		p.list.CursorUp()
		return false, "", nil
	case "down", "ctrl+n":
		p.list.CursorDown()
		return false, "", nil
	}

	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.refresh()
	}
	return false, "", cmd
}

func (p *picker) refresh() {
	found := catalog.Search(p.input.Value())
	items := make([]list.Item, 0, len(found))
	for _, c := range found {
		items = append(items, currencyItem{c: c})
	}
	_ = p.list.SetItems(items)
	p.list.Select(0)
}

// Selected returns the highlighted code, if any.
func (p *picker) Selected() string {
	if it, ok := p.list.SelectedItem().(currencyItem); ok {
		return it.c.Code
	}
	return ""
}

func (p *picker) View(width, height int) string {
	p.list.SetSize(width, max(6, height-4))
	title := cardTitleStyle.Render("Select " + p.field.String() + " currency")
	body := title + "\n" + p.input.View() + "\n"
	if len(p.list.Items()) == 0 {
		body += mutedStyle.Render("  no matching currency")
	} else {
		body += p.list.View()
	}
	return modalStyle.Render(body + "\n" + mutedStyle.Render("[enter] select  [esc] cancel"))
}
