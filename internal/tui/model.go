// Package tui est le lecteur terminal : une horloge tient lieu de vidéo,
// l'incrustation et la liste suivent la synchronisation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patrickprogramme/subshare/internal/config"
	"github.com/patrickprogramme/subshare/internal/export"
	"github.com/patrickprogramme/subshare/internal/playback"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/internal/view"
	"github.com/patrickprogramme/subshare/pkg/model"
)

const statusTTL = 4 * time.Second

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Options regroupe ce que le lecteur reçoit de l'application.
type Options struct {
	Style       config.Style
	Overlay     view.OverlayOptions
	ScrollRatio float64
	Tick        time.Duration

	// Copy et Export sont optionnels ; nil désactive la touche.
	Copy   func(text string) error
	Export func(track timeline.Track) ([]string, error)

	// Now sert aux messages d'état (tests) ; time.Now si nil.
	Now func() time.Time
}

// Model est le modèle Bubbletea du lecteur.
type Model struct {
	track   timeline.Track
	clock   *playback.Clock
	sync    *playback.Sync
	overlay *view.Overlay
	list    *view.List

	vp     viewport.Model
	keys   keyMap
	help   help.Model
	styles styles
	opts   Options

	width  int
	height int

	cursor        int
	lastHighlight int

	status     string
	statusErr  bool
	statusTime time.Time

	quitting bool
}

// New relie la piste à l'horloge. L'horloge n'est pas démarrée.
func New(track timeline.Track, clock *playback.Clock, opts Options) Model {
	if opts.Tick <= 0 {
		opts.Tick = 100 * time.Millisecond
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := Model{
		track:         track,
		clock:         clock,
		sync:          playback.NewSync(track, clock),
		overlay:       view.NewOverlay(track, opts.Overlay),
		list:          view.NewList(track.Len(), opts.ScrollRatio),
		vp:            viewport.New(80, 10),
		keys:          defaultKeyMap(),
		help:          help.New(),
		styles:        newStyles(opts.Style),
		opts:          opts,
		lastHighlight: -1,
	}
	overlay, list := m.overlay, m.list
	m.sync.Subscribe(func(s playback.Snapshot) { overlay.Apply(s) })
	m.sync.Subscribe(func(s playback.Snapshot) { list.Apply(s) })
	m.list.Resize(m.vp.Height)
	m.refreshList()
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.handleMsg(msg)
	m.followHighlight()
	m.refreshList()
	return m, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.clock.Tick()
		m.sync.Poll()
		if m.status != "" && m.opts.Now().Sub(m.statusTime) > statusTTL {
			m.status = ""
		}
		return m, tickCmd(m.opts.Tick)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		if !m.sync.StepPrevious() {
			m.setStatus("début de la piste", false)
		}
	case key.Matches(msg, m.keys.Next):
		if !m.sync.StepNext() {
			m.setStatus("fin de la piste", false)
		}
	case key.Matches(msg, m.keys.Pause):
		m.clock.Toggle()
	case key.Matches(msg, m.keys.Replay):
		m.sync.ReplayCurrent()
	case key.Matches(msg, m.keys.Back):
		m.clock.SeekBy(-1)
		m.sync.Poll()
	case key.Matches(msg, m.keys.Forward):
		m.clock.SeekBy(1)
		m.sync.Poll()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Jump):
		m.sync.JumpTo(m.cursor)

	case key.Matches(msg, m.keys.Display):
		d := m.overlay.CycleDisplay()
		m.setStatus("affichage : "+d.String(), false)
		m.layout()
	case key.Matches(msg, m.keys.Copy):
		m.copyCaption()
	case key.Matches(msg, m.keys.Export):
		m.exportTrack()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.track.IsEmpty() {
		return
	}
	c := m.cursor + delta
	if c < 0 || c >= m.track.Len() {
		return
	}
	m.cursor = c
	m.list.ScrollTo(c)
}

func (m *Model) copyCaption() {
	if m.opts.Copy == nil {
		return
	}
	text := m.overlay.Text()
	if text == "" {
		m.setStatus("rien à copier", false)
		return
	}
	if err := m.opts.Copy(text); err != nil {
		m.setStatus(fmt.Sprintf("copie impossible : %v", err), true)
		return
	}
	m.setStatus("sous-titre copié", false)
}

func (m *Model) exportTrack() {
	if m.opts.Export == nil {
		return
	}
	paths, err := m.opts.Export(m.track)
	if err != nil {
		m.setStatus(fmt.Sprintf("export impossible : %v", err), true)
		return
	}
	m.setStatus("exporté : "+strings.Join(paths, ", "), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	m.statusTime = m.opts.Now()
}

// followHighlight place le curseur sur la ligne surlignée quand elle change.
func (m *Model) followHighlight() {
	h, ok := m.list.Highlight()
	if !ok {
		h = -1
	}
	if ok && h != m.lastHighlight {
		m.cursor = h
	}
	m.lastHighlight = h
}

// layout répartit la hauteur entre en-tête, incrustation, liste et aide.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	fixed := lipgloss.Height(m.headerView()) +
		lipgloss.Height(m.overlayView()) +
		lipgloss.Height(m.footerView())
	listHeight := m.height - fixed
	if listHeight < 1 {
		listHeight = 1
	}
	m.vp.Width = m.width
	m.vp.Height = listHeight
	m.list.Resize(listHeight)
}

// refreshList reconstruit le contenu de la liste et applique le décalage.
func (m *Model) refreshList() {
	items := make([]string, 0, m.track.Len())
	heights := make([]int, 0, m.track.Len())
	for i, seg := range m.track.Segments {
		s := m.renderItem(i, seg)
		items = append(items, s)
		heights = append(heights, lipgloss.Height(s))
	}
	m.list.SetItemHeights(heights)
	m.vp.SetContent(strings.Join(items, "\n"))
	m.vp.SetYOffset(m.list.Offset())
}

func (m Model) renderItem(i int, seg timeline.Segment) string {
	ts := m.styles.timestamp.Render(export.ShortTimestamp(seg.StartTime))
	ja := seg.JaText()
	if m.opts.Overlay.Ruby {
		ja = seg.JaTextWithRuby()
	}
	text := ts + " " + ja
	if seg.KoText != "" {
		text += "\n" + seg.KoText
	}

	st := m.styles.item
	if h, ok := m.list.Highlight(); ok && h == i {
		st = m.styles.active
	} else if i == m.cursor {
		st = m.styles.cursor
	}
	if m.vp.Width > 0 {
		st = st.Width(m.vp.Width)
	}
	return st.Render(text)
}

func (m Model) headerView() string {
	state := "⏸"
	if m.clock.Playing() {
		state = "▶"
	}
	_, end := m.track.Span()
	pos := fmt.Sprintf("%s %s / %s", state,
		export.ShortTimestamp(m.clock.CurrentTime()), export.ShortTimestamp(end))

	idx := "-"
	if i, ok := m.overlay.Index(); ok {
		idx = fmt.Sprintf("%d/%d", i+1, m.track.Len())
	}
	return m.styles.header.Render(fmt.Sprintf("%s   %s   %s   [%s]",
		pos, m.track.VideoID, idx, m.overlay.Display()))
}

func (m Model) overlayView() string {
	lines := m.overlay.Lines()
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		st := m.styles.ja
		if l.Lang == model.LangKO {
			st = m.styles.ko
		}
		rendered = append(rendered, st.Render(l.Text))
	}
	if len(rendered) == 0 {
		rendered = append(rendered, " ")
	}
	box := m.styles.overlay
	if m.width > 0 {
		box = box.Width(m.width - box.GetHorizontalFrameSize())
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}

func (m Model) footerView() string {
	status := m.styles.status.Render(m.status)
	if m.statusErr {
		status = m.styles.errStatus.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.overlayView(),
		m.vp.View(),
		m.footerView(),
	)
}

// Run lance le lecteur plein écran ; retourne quand l'utilisateur quitte
// ou quand ctx est annulé.
func Run(ctx context.Context, track timeline.Track, clock *playback.Clock, opts Options) error {
	clock.Play()
	p := tea.NewProgram(New(track, clock, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
