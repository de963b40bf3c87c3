package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oddlab/anomaly-radar/internal/config"
	"github.com/oddlab/anomaly-radar/internal/radar"
	"github.com/oddlab/anomaly-radar/internal/sensor"
	"github.com/oddlab/anomaly-radar/internal/spectro"
	"github.com/oddlab/anomaly-radar/internal/tone"
	"github.com/oddlab/anomaly-radar/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and
// main.go. Bubble Tea uses value receivers, so pointer fields ensure
// all copies see the same underlying data.
type shared struct {
	program *tea.Program
	session *Session
	store   *sensor.ContactStore
	sweep   *radar.Sweep
	fb      *spectro.Framebuffer
	magHist *Ring
	tones   *tone.Player
}

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int

	demo    bool
	opts    Options
	compass bool // field compass replaces the radar panel

	shared *shared

	// Cached per-tick snapshot
	contacts []*sensor.Contact

	// Status sink values
	lastMag byte    // strongest bin of the last spectral frame
	echo    float64 // EMA of mean frame energy, [0, 1]
	field   sensor.FieldMsg
	fieldOK bool
	alert   bool
	notices []string
}

// New creates the root model with an idle session.
func New(demo bool, opts Options) Model {
	return Model{
		demo: demo,
		opts: opts,
		shared: &shared{
			session: NewSession(demo, opts),
			store:   sensor.NewContactStore(),
			sweep:   radar.NewSweep(config.SweepStepDeg, config.SweepTrailDeg),
			magHist: NewRing(config.FieldHistory),
		},
	}
}

// StartSensors activates the session. Must be called with the running
// program before p.Run(); the stored program also serves later restarts
// from the keyboard. Sensor failures degrade silently into notices.
func (m *Model) StartSensors(p *tea.Program) {
	m.shared.program = p
	if !m.opts.Mute && m.shared.tones == nil {
		if player, err := tone.NewPlayer(config.ToneCooldown); err == nil {
			m.shared.tones = player
		}
	}
	m.shared.session.Start(p)
}

// Disabled lists the sensors that failed to open on the last start.
func (m Model) Disabled() []string {
	return m.shared.session.Disabled()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), evictCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeFramebuffer()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if !m.shared.session.Active() {
			// Residual tick after a stop: do nothing, reschedule nothing.
			return m, nil
		}
		m.shared.sweep.Advance()
		m.contacts = m.shared.store.Snapshot()
		return m, tickCmd()

	case EvictMsg:
		m.shared.store.Evict(config.ContactTimeout)
		return m, evictCmd()

	case sensor.FrameMsg:
		if m.shared.session.Active() {
			m.ingestFrame(msg.Bins)
		}
		return m, nil

	case sensor.FieldMsg:
		if m.shared.session.Active() {
			m.ingestField(msg)
		}
		return m, nil

	case sensor.ProximityMsg:
		if m.shared.session.Active() {
			if m.shared.store.Upsert(msg.ID, msg.Name, msg.RSSI) {
				m.shared.tones.Beep(config.ToneFreq, config.ToneDuration)
			}
		}
		return m, nil

	case sensor.ErrorMsg:
		m.notices = append(m.notices, msg.Sensor+": "+msg.Err.Error())
		return m, nil
	}

	return m, nil
}

func (m *Model) ingestFrame(bins []byte) {
	if m.shared.fb != nil {
		m.shared.fb.Push(bins)
	}

	var peak byte
	sum := 0
	for _, b := range bins {
		if b > peak {
			peak = b
		}
		sum += int(b)
	}
	m.lastMag = peak
	if len(bins) > 0 {
		mean := float64(sum) / float64(len(bins)) / 255
		m.echo = m.echo*0.8 + mean*0.2
	}
}

func (m *Model) ingestField(msg sensor.FieldMsg) {
	m.field = msg
	m.fieldOK = true
	m.shared.magHist.Push(msg.Magnitude)

	wasAlert := m.alert
	m.alert = msg.Magnitude >= m.opts.MagAlert
	if m.alert && !wasAlert {
		m.shared.tones.Beep(config.ToneFreq, config.ToneDuration)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shared.session.Stop()
		return m, tea.Quit

	case "s", "S":
		if !m.shared.session.Active() {
			m.shared.session.Start(m.shared.program)
			// The tick chain died when the session idled; restart it.
			return m, tickCmd()
		}

	case "x", "X":
		m.shared.session.Stop()

	case "c", "C":
		m.compass = !m.compass
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing anomaly radar..."
	}

	d := m.layout()

	menuBar := ui.RenderMenuBar(m.width, m.demo, m.shared.session.Active())

	var left string
	if m.compass {
		left = ui.RenderFieldPanel(d.radarW, d.bodyH,
			m.field.X, m.field.Y, m.field.Magnitude, m.fieldOK, m.opts.MagAlert)
	} else {
		content := radar.Render(d.radarInnerW, d.radarInnerH, m.contacts, m.shared.sweep, m.opts.MaxRange)
		legend := radar.RenderLegend(d.radarInnerW, m.opts.MaxRange)
		left = ui.RenderRadarPanel(d.radarW, d.bodyH, content, legend)
	}

	var spectroView string
	if m.shared.fb != nil {
		spectroView = spectro.Render(m.shared.fb)
	}
	spectroPanel := ui.RenderSpectroPanel(d.rightW, d.spectroH, spectroView)
	contactsPanel := ui.RenderContactsPanel(m.contacts, d.rightW, d.contactsH)
	right := ui.JoinColumn(spectroPanel, contactsPanel)

	status := ui.StatusData{
		Active:  m.shared.session.Active(),
		LastMag: m.lastMag,
		Echo:    m.echo,
		Field:   m.field.Magnitude,
		FieldOK: m.fieldOK,
		Alert:   m.alert,
		Events:  m.shared.store.Events(),
		Sweep:   m.shared.sweep.Degrees(),
		History: m.shared.magHist.Values(),
		Notices: append(append([]string{}, m.shared.session.Disabled()...), m.notices...),
	}
	statusBar := ui.RenderStatusBar(m.width, status)

	return ui.ComposeLayout(menuBar, left, right, statusBar)
}

// dims is the resolved panel geometry for the current terminal size.
type dims struct {
	bodyH       int
	radarW      int
	rightW      int
	radarInnerW int
	radarInnerH int
	spectroH    int
	contactsH   int
}

func (m Model) layout() dims {
	var d dims

	d.bodyH = m.height - 2 // menu + status bars
	if d.bodyH < 5 {
		d.bodyH = 5
	}

	d.radarW = m.width / 2
	if d.radarW < 30 {
		d.radarW = 30
	}
	d.rightW = m.width - d.radarW
	if d.rightW < 20 {
		d.rightW = 20
		d.radarW = m.width - d.rightW
	}

	d.radarInnerW = d.radarW - 4
	if d.radarInnerW < 5 {
		d.radarInnerW = 5
	}
	d.radarInnerH = d.bodyH - 4
	if d.radarInnerH < 3 {
		d.radarInnerH = 3
	}

	d.spectroH = d.bodyH * 2 / 3
	if d.spectroH < 5 {
		d.spectroH = 5
	}
	d.contactsH = d.bodyH - d.spectroH
	if d.contactsH < 3 {
		d.contactsH = 3
	}

	return d
}

// resizeFramebuffer recreates the spectrogram buffer, zeroed, whenever
// the panel geometry changes. History does not survive a resize.
func (m *Model) resizeFramebuffer() {
	d := m.layout()
	w := d.rightW - 4
	if w < 1 {
		w = 1
	}
	h := (d.spectroH - 2) * 2 // two pixel rows per text row
	if h < 2 {
		h = 2
	}

	if m.shared.fb == nil || m.shared.fb.Width() != w || m.shared.fb.Height() != h {
		m.shared.fb = spectro.New(w, h)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func evictCmd() tea.Cmd {
	return tea.Tick(config.EvictInterval, func(t time.Time) tea.Msg {
		return EvictMsg(t)
	})
}
