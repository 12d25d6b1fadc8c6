package tui

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/photogroove/pgroove/internal/cache"
	"github.com/photogroove/pgroove/internal/gallery"
	"github.com/photogroove/pgroove/internal/render"
)

type App struct {
	client   *gallery.Client
	db       *cache.Cache
	port     render.Port
	activity <-chan string
	offline  bool

	status       status
	size         thumbSize
	hue          int
	ripple       int
	noise        int
	activityText string

	// View state
	focus   focusPane
	slider  sliderIndex
	spinner spinner.Model
	bar     progress.Model
	width   int
	height  int
	err     error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Client   *gallery.Client
	DB       *cache.Cache
	Port     render.Port
	Activity <-chan string
	Offline  bool
	Greeting string
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	bar := progress.New(progress.WithSolidFill("#7571F9"), progress.WithoutPercentage())
	bar.Width = 16

	port := opts.Port
	if port == nil {
		port = render.NopPort{}
	}

	return &App{
		client:       opts.Client,
		db:           opts.DB,
		port:         port,
		activity:     opts.Activity,
		offline:      opts.Offline,
		status:       statusLoading{},
		size:         sizeMedium,
		hue:          5,
		ripple:       6,
		noise:        5,
		activityText: opts.Greeting,
		spinner:      sp,
		bar:          bar,
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, a.loadPhotosCmd()}
	if a.activity != nil {
		cmds = append(cmds, a.waitForActivity())
	}
	return tea.Batch(cmds...)
}

// loadPhotosCmd fetches the listing, or reads the cache in offline
// mode. The result re-enters Update as a photos message.
func (a *App) loadPhotosCmd() tea.Cmd {
	client := a.client
	db := a.db
	offline := a.offline
	return func() tea.Msg {
		if offline {
			if db == nil {
				return photosLoadedMsg{}
			}
			photos, err := db.GetPhotos()
			if err != nil {
				return photosErrMsg{err: err}
			}
			return photosLoadedMsg{photos: photos}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		photos, err := client.List(ctx)
		if err != nil {
			return photosErrMsg{err: err}
		}
		if db != nil {
			// Cache write is best-effort
			if err := db.ReplacePhotos(photos); err == nil {
				db.SetLastRefresh()
			}
		}
		return photosLoadedMsg{photos: photos}
	}
}

func (a *App) waitForActivity() tea.Cmd {
	ch := a.activity
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		text, ok := <-ch
		if !ok {
			return activityClosedMsg{}
		}
		return activityMsg{text: text}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case photosLoadedMsg:
		if len(msg.photos) == 0 {
			a.status = statusErrored{message: "0 photos found"}
			return a, nil
		}
		a.status = statusLoaded{photos: msg.photos, selected: msg.photos[0].URL}
		return a, a.applyFiltersCmd()

	case photosErrMsg:
		a.status = statusErrored{message: "Server error!"}
		return a, nil

	case randomPhotoMsg:
		return a, a.selectPhoto(msg.photo.URL)

	case activityMsg:
		a.activityText = msg.text
		return a, a.waitForActivity()

	case activityClosedMsg:
		return a, nil

	case renderErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if _, ok := a.status.(statusLoading); ok {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	}

	// Everything below needs a loaded gallery
	loaded, ok := a.status.(statusLoaded)
	if !ok {
		return a, nil
	}

	switch msg.String() {
	case "tab":
		if a.focus == focusThumbs {
			a.focus = focusSliders
		} else {
			a.focus = focusThumbs
		}
		return a, nil
	case "s":
		return a, a.surpriseMeCmd()
	case "1":
		a.size = sizeSmall
		return a, nil
	case "2":
		a.size = sizeMedium
		return a, nil
	case "3":
		a.size = sizeLarge
		return a, nil
	case "left", "h":
		if a.focus == focusSliders {
			return a, a.adjustSlider(-1)
		}
		return a, a.selectNeighbor(loaded, -1)
	case "right", "l":
		if a.focus == focusSliders {
			return a, a.adjustSlider(1)
		}
		return a, a.selectNeighbor(loaded, 1)
	case "up", "k":
		if a.focus == focusSliders && a.slider > sliderHue {
			a.slider--
		}
		return a, nil
	case "down", "j":
		if a.focus == focusSliders && a.slider < sliderNoise {
			a.slider++
		}
		return a, nil
	}

	return a, nil
}

// selectPhoto sets the selection and recomputes filters. No-op unless
// photos are loaded.
func (a *App) selectPhoto(url string) tea.Cmd {
	loaded, ok := a.status.(statusLoaded)
	if !ok {
		return nil
	}
	loaded.selected = url
	a.status = loaded
	return a.applyFiltersCmd()
}

func (a *App) selectNeighbor(loaded statusLoaded, delta int) tea.Cmd {
	idx := selectedIndex(loaded)
	if idx < 0 {
		idx = 0
	} else {
		idx += delta
	}
	if idx < 0 || idx >= len(loaded.photos) {
		return nil
	}
	return a.selectPhoto(loaded.photos[idx].URL)
}

func selectedIndex(loaded statusLoaded) int {
	for i, p := range loaded.photos {
		if p.URL == loaded.selected {
			return i
		}
	}
	return -1
}

func (a *App) setHue(v int) tea.Cmd {
	a.hue = v
	return a.applyFiltersCmd()
}

func (a *App) setRipple(v int) tea.Cmd {
	a.ripple = v
	return a.applyFiltersCmd()
}

func (a *App) setNoise(v int) tea.Cmd {
	a.noise = v
	return a.applyFiltersCmd()
}

func (a *App) sliderValue(s sliderIndex) int {
	switch s {
	case sliderRipple:
		return a.ripple
	case sliderNoise:
		return a.noise
	default:
		return a.hue
	}
}

func (a *App) adjustSlider(delta int) tea.Cmd {
	v := a.sliderValue(a.slider) + delta
	if v < 0 || v > sliderMax {
		return nil
	}
	switch a.slider {
	case sliderRipple:
		return a.setRipple(v)
	case sliderNoise:
		return a.setNoise(v)
	default:
		return a.setHue(v)
	}
}

// surpriseMeCmd requests one uniform random draw from the loaded
// photos. The result re-enters Update as randomPhotoMsg.
func (a *App) surpriseMeCmd() tea.Cmd {
	loaded, ok := a.status.(statusLoaded)
	if !ok || len(loaded.photos) == 0 {
		return nil
	}
	photos := loaded.photos
	return func() tea.Msg {
		return randomPhotoMsg{photo: photos[rand.IntN(len(photos))]}
	}
}

// filterRequest derives the outbound renderer payload from the current
// state. ok is false while no photo is selected.
func (a *App) filterRequest() (render.Request, bool) {
	loaded, ok := a.status.(statusLoaded)
	if !ok {
		return render.Request{}, false
	}
	return render.Request{
		URL: gallery.LargeURL(a.baseURL(), loaded.selected),
		Filters: []render.Filter{
			{Name: "Hue", Amount: float64(a.hue) / sliderMax},
			{Name: "Ripple", Amount: float64(a.ripple) / sliderMax},
			{Name: "Noise", Amount: float64(a.noise) / sliderMax},
		},
	}, true
}

func (a *App) baseURL() string {
	if a.client == nil {
		return gallery.DefaultBaseURL
	}
	return a.client.BaseURL()
}

func (a *App) applyFiltersCmd() tea.Cmd {
	req, ok := a.filterRequest()
	if !ok {
		return nil
	}
	port := a.port
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := port.Apply(ctx, req); err != nil {
			return renderErrMsg{err: err}
		}
		return nil
	}
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
