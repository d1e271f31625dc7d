package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/flexframe/layout-boundary/boundary"
	"github.com/flexframe/layout-boundary/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F87AF")).
			Padding(0, 1)

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F87AF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorState int

const (
	stateSelectNode inspectorState = iota
	stateEditProp
)

// dimProp names one editable dimension property.
type dimProp struct {
	name string
	get  func(boundary.StyleConstRef) boundary.Dimension
	set  func(boundary.StyleMutRef, float32, boundary.Unit) boundary.Status
}

var dimProps = []dimProp{
	{"width", boundary.StyleGetWidth, boundary.StyleSetWidth},
	{"height", boundary.StyleGetHeight, boundary.StyleSetHeight},
	{"min-width", boundary.StyleGetMinWidth, boundary.StyleSetMinWidth},
	{"max-width", boundary.StyleGetMaxWidth, boundary.StyleSetMaxWidth},
	{"margin-left", boundary.StyleGetMarginLeft, boundary.StyleSetMarginLeft},
	{"margin-top", boundary.StyleGetMarginTop, boundary.StyleSetMarginTop},
	{"padding-left", boundary.StyleGetPaddingLeft, boundary.StyleSetPaddingLeft},
	{"padding-top", boundary.StyleGetPaddingTop, boundary.StyleSetPaddingTop},
	{"flex-basis", boundary.StyleGetFlexBasis, boundary.StyleSetFlexBasis},
	{"column-gap", boundary.StyleGetColumnGap, boundary.StyleSetColumnGap},
	{"row-gap", boundary.StyleGetRowGap, boundary.StyleSetRowGap},
}

type inspectorNode struct {
	id   boundary.NodeID
	name string
}

type inspectorModel struct {
	tree     boundary.TreeRef
	nodes    []inspectorNode
	selected int
	state    inspectorState
	input    textinput.Model
	lastErr  string
}

func newInspectorModel() *inspectorModel {
	tree := boundary.TreeRefOf(engine.NewTree())

	root := boundary.TreeNewNode(tree).Value
	rs := boundary.TreeGetStyleMut(tree, root).Value
	boundary.StyleSetWidth(rs, 400, boundary.UnitLength)
	boundary.StyleSetHeight(rs, 200, boundary.UnitLength)
	boundary.StyleSetPadding(rs, boundary.EdgeAll,
		boundary.Dimension{Value: 10, Unit: boundary.UnitLength})

	nodes := []inspectorNode{{root, "root"}}
	for i := 0; i < 2; i++ {
		child := boundary.TreeNewNode(tree).Value
		cs := boundary.TreeGetStyleMut(tree, child).Value
		boundary.StyleSetFlexGrow(cs, 1)
		boundary.TreeAppendChild(tree, root, child)
		nodes = append(nodes, inspectorNode{child, fmt.Sprintf("child-%d", i)})
	}

	ti := textinput.New()
	ti.Placeholder = "width 100 px"
	ti.Prompt = "set: "
	ti.Width = 40

	m := &inspectorModel{tree: tree, nodes: nodes, input: ti}
	m.recompute()
	return m
}

func (m *inspectorModel) recompute() {
	nan := float32(math.NaN())
	if st := boundary.TreeComputeLayout(m.tree, m.nodes[0].id, nan, nan); st != boundary.StatusOK {
		m.lastErr = st.String()
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateSelectNode {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectNode && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectNode && m.selected < len(m.nodes)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectNode:
				m.state = stateEditProp
				m.input.SetValue("")
				m.input.Focus()
				m.lastErr = ""
			case stateEditProp:
				m.applyEdit()
			}

		case "esc":
			if m.state == stateEditProp {
				m.state = stateSelectNode
				m.input.Blur()
				m.lastErr = ""
			}
		}
	}

	if m.state == stateEditProp {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyEdit parses "<property> <value> <unit>" and applies it to the
// selected node, then recomputes the layout.
func (m *inspectorModel) applyEdit() {
	fields := strings.Fields(m.input.Value())
	if len(fields) < 2 {
		m.lastErr = "usage: <property> <value> [px|%|auto]"
		return
	}

	var prop *dimProp
	for i := range dimProps {
		if dimProps[i].name == fields[0] {
			prop = &dimProps[i]
			break
		}
	}
	if prop == nil {
		m.lastErr = fmt.Sprintf("unknown property %q", fields[0])
		return
	}

	unit := boundary.UnitLength
	if len(fields) > 2 {
		switch fields[2] {
		case "px":
			unit = boundary.UnitLength
		case "%":
			unit = boundary.UnitPercent
		case "auto":
			unit = boundary.UnitAuto
		default:
			m.lastErr = fmt.Sprintf("unknown unit %q", fields[2])
			return
		}
	}
	if fields[1] == "auto" {
		unit = boundary.UnitAuto
	}

	value, err := strconv.ParseFloat(fields[1], 32)
	if err != nil && unit != boundary.UnitAuto {
		m.lastErr = fmt.Sprintf("bad value %q", fields[1])
		return
	}
	if unit == boundary.UnitPercent {
		value /= 100
	}

	ref := boundary.TreeGetStyleMut(m.tree, m.nodes[m.selected].id)
	if ref.Status != boundary.StatusOK {
		m.lastErr = ref.Status.String()
		return
	}
	if st := prop.set(ref.Value, float32(value), unit); st != boundary.StatusOK {
		m.lastErr = st.String()
		return
	}

	m.recompute()
	m.state = stateSelectNode
	m.input.Blur()
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Inspector"))
	b.WriteString("\n\n")

	for i, n := range m.nodes {
		line := m.formatNode(n)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case stateSelectNode:
		b.WriteString(m.formatStyle(m.nodes[m.selected]))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • q quit"))
	case stateEditProp:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc back"))
	}

	if m.lastErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.lastErr))
	}
	return b.String()
}

func (m *inspectorModel) formatNode(n inspectorNode) string {
	l := boundary.TreeGetLayout(m.tree, n.id)
	if l.Status != boundary.StatusOK {
		return nodeStyle.Render(n.name) + " " + errorStyle.Render(l.Status.String())
	}
	return nodeStyle.Render(n.name) + " " + valueStyle.Render(fmt.Sprintf(
		"(%g, %g) %gx%g", l.Value.X, l.Value.Y, l.Value.Width, l.Value.Height))
}

func (m *inspectorModel) formatStyle(n inspectorNode) string {
	r := boundary.TreeGetStyle(m.tree, n.id)
	if r.Status != boundary.StatusOK {
		return errorStyle.Render(r.Status.String())
	}
	var b strings.Builder
	for _, p := range dimProps {
		d := p.get(r.Value)
		b.WriteString(fmt.Sprintf("  %-12s %s\n", p.name, formatDimension(d)))
	}
	return b.String()
}

func formatDimension(d boundary.Dimension) string {
	switch d.Unit {
	case boundary.UnitLength:
		return valueStyle.Render(fmt.Sprintf("%gpx", d.Value))
	case boundary.UnitPercent:
		return valueStyle.Render(fmt.Sprintf("%g%%", d.Value*100))
	default:
		return valueStyle.Render(d.Unit.String())
	}
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
