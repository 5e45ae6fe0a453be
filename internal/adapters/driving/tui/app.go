// Package tui is the interactive rendering surface of the map. It is
// the "map widget" collaborator of the core: it consumes the style
// resolver output, drives selection through the view controller, and
// subscribes to render-state snapshots. Tile drawing stays out of
// scope; features render as a navigable list beside a zone card and
// the fetched article.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fossabot/belgium/internal/adapters/driving/tui/messages"
	"github.com/fossabot/belgium/internal/adapters/driving/tui/styles"
	"github.com/fossabot/belgium/internal/core/domain"
)

// updateBuffer sizes the channel carrying state snapshots into the
// model. Dropped snapshots are safe: State() stays authoritative and a
// later snapshot always follows.
const updateBuffer = 64

// App is the map TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports

	// ctx is the context for the view's load and fetches.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// initialSlug preselects a zone on load.
	initialSlug string

	// updates carries state snapshots and navigation events from the
	// core into the Bubbletea loop.
	updates chan interface{}

	// history records navigation paths emitted on selection.
	history *History

	// subID identifies the render-state subscription.
	subID string

	// featureList is the interactive feature surface.
	featureList list.Model

	// article displays the selected feature's fetched article.
	article viewport.Model

	// state is the last received render-state snapshot.
	state domain.RenderState

	// err holds the last load error, shown in place of the map.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first WindowSizeMsg has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI for one view. The initial slug may be empty;
// the enricher then defaults the selection to the first feature. The
// history is the navigator already wired into the view controller.
func NewApp(ports *Ports, initialSlug string, history *History) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if history == nil {
		history = NewHistory()
	}

	updates := make(chan interface{}, updateBuffer)
	history.attach(updates)

	delegate := list.NewDefaultDelegate()
	featureList := list.New(nil, delegate, 0, 0)
	featureList.Title = "Zones"
	featureList.SetShowStatusBar(false)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      styles.DefaultStyles(),
		initialSlug: initialSlug,
		updates:     updates,
		history:     history,
		featureList: featureList,
		article:     viewport.New(0, 0),
	}, nil
}

// Init subscribes to render-state snapshots and starts the load.
func (a *App) Init() tea.Cmd {
	a.subID = a.ports.View.Subscribe(func(s domain.RenderState) {
		select {
		case a.updates <- messages.StateUpdated{State: s}:
		default:
		}
	})
	return tea.Batch(a.load, a.waitForUpdate)
}

// load runs the initial collection fetch and enrichment.
func (a *App) load() tea.Msg {
	return messages.LoadCompleted{Err: a.ports.View.Load(a.ctx, a.initialSlug)}
}

// waitForUpdate relays the next core event into the Bubbletea loop.
func (a *App) waitForUpdate() tea.Msg {
	return <-a.updates
}

// Update handles messages in the Elm style.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ready = true
		a.ports.View.Resize(msg.Width)
		a.layout()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			a.ports.View.Unsubscribe(a.subID)
			return a, tea.Quit
		case "enter":
			if item, ok := a.featureList.SelectedItem().(featureItem); ok {
				a.ports.View.Select(item.slug())
			}
			return a, nil
		}

	case messages.LoadCompleted:
		if msg.Err != nil {
			// Non-fatal: the view stays interactive without a layer.
			a.err = msg.Err
		}
		a.applyState(a.ports.View.State())
		return a, nil

	case messages.StateUpdated:
		a.applyState(msg.State)
		return a, a.waitForUpdate

	case messages.Navigated:
		return a, a.waitForUpdate
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.featureList, cmd = a.featureList.Update(msg)
	cmds = append(cmds, cmd)
	a.article, cmd = a.article.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// applyState installs a snapshot: list items, cursor and article pane.
func (a *App) applyState(s domain.RenderState) {
	rebuilt := s.GeoJSON != nil &&
		(a.state.GeoJSON == nil || len(a.featureList.Items()) != len(s.GeoJSON.Features))
	a.state = s

	if rebuilt {
		items := make([]list.Item, 0, len(s.GeoJSON.Features))
		for _, f := range s.GeoJSON.Features {
			items = append(items, featureItem{f: f})
		}
		a.featureList.SetItems(items)
	}

	if s.Selected != nil && s.GeoJSON != nil {
		for i, f := range s.GeoJSON.Features {
			if f == s.Selected {
				a.featureList.Select(i)
				break
			}
		}
		if p := s.Selected.Properties; p != nil && p.Article != "" {
			a.article.SetContent(p.Article)
		} else {
			a.article.SetContent(a.styles.Muted.Render("Pas d'article."))
		}
	}
}

// layout distributes the terminal between the list and the right pane.
func (a *App) layout() {
	listWidth := a.width / 2
	if listWidth > 48 {
		listWidth = 48
	}
	a.featureList.SetSize(listWidth, a.height-2)
	a.article.Width = a.width - listWidth - 4
	a.article.Height = a.height - 14
}

// View renders the feature list, the zone card and the article pane.
func (a *App) View() string {
	if !a.ready {
		return "Chargement..."
	}

	right := a.renderCard()
	if a.err != nil {
		right = a.styles.Error.Render(fmt.Sprintf("carte indisponible: %v", a.err)) + "\n" + right
	}
	right += "\n" + a.article.View()

	return lipgloss.JoinHorizontal(lipgloss.Top, a.featureList.View(), " ", right)
}

// renderCard shows the selected zone's metadata and resolved style.
func (a *App) renderCard() string {
	selected := a.state.Selected
	if selected == nil || selected.Properties == nil || selected.Properties.Zone == nil {
		return a.styles.Card.Render(a.styles.Muted.Render("Aucune zone sélectionnée."))
	}
	zone := selected.Properties.Zone

	var b strings.Builder
	b.WriteString(a.styles.Title.Render(zone.Name.FR))
	if zone.Name.NL != "" && zone.Name.NL != zone.Name.FR {
		b.WriteString(a.styles.Muted.Render(" / " + zone.Name.NL))
	}
	b.WriteString("\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(a.styles.Label.Render(label+": ") + value + "\n")
	}
	writeField("nsi", zone.NSI)
	writeField("type", zone.Type)
	writeField("capitale", zone.Capital)
	writeField("adhésion", zone.CEEAccession)
	if parent, err := a.ports.Catalog.ParentOf(a.ctx, zone.NSI); err == nil {
		writeField("parent", parent.Name.FR)
	}

	style := a.ports.Style.Resolve(selected, a.state.Mode, true)
	b.WriteString(a.styles.Swatch(style.FillColor) + "\n")
	if last := a.history.Last(); last != "" {
		b.WriteString(a.styles.Muted.Render(last) + "\n")
	}

	return a.styles.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// featureItem adapts a feature to the list component.
type featureItem struct {
	f *domain.Feature
}

func (i featureItem) slug() string {
	if i.f.Properties == nil {
		return ""
	}
	return i.f.Properties.Slug
}

// Title is the zone's French display name.
func (i featureItem) Title() string {
	if p := i.f.Properties; p != nil && p.Zone != nil {
		return p.Zone.Name.FR
	}
	return i.slug()
}

// Description shows the slug and, when known, the capital.
func (i featureItem) Description() string {
	p := i.f.Properties
	if p == nil {
		return ""
	}
	if p.Zone != nil && p.Zone.Capital != "" {
		return p.Slug + " · " + p.Zone.Capital
	}
	return p.Slug
}

// FilterValue matches on name and slug.
func (i featureItem) FilterValue() string {
	return i.Title() + " " + i.slug()
}
