// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/model"
	"github.com/jeranaias/campus-tui/internal/session"
	"github.com/jeranaias/campus-tui/internal/storage"
	"github.com/jeranaias/campus-tui/internal/ui/components"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies the top-level view the application is showing.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenForgot
	ScreenMain
	ScreenNewBooking
)

// Role tabs on the login portal, in display order.
var loginRoles = []string{model.RoleStudent, model.RoleStaff, model.RoleAdmin}

// Demo credentials per login tab, matching the seeded development accounts.
var demoCredentials = map[string][2]string{
	model.RoleStudent: {"student@campus.edu", "student123"},
	model.RoleStaff:   {"staff@campus.edu", "staff123"},
	model.RoleAdmin:   {access.SystemAdminEmail, "admin123"},
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// App is the Bubble Tea model for the campus TUI.
type App struct {
	screen Screen

	// Styling
	baseTheme *styles.Theme
	theme     *styles.Theme

	// Dimensions
	width  int
	height int

	// Collaborators
	client *api.Client
	cache  *storage.Cache // nil when caching is disabled
	store  *session.Store
	clock  *session.Clock

	// Identity
	identity     access.Identity
	signedIn     bool
	variant      access.Variant
	canApprove   bool
	canListUsers bool

	// Components
	header  *components.Header
	nav     *components.Nav
	status  *components.StatusBar
	overlay components.SessionOverlay
	toasts  []components.Toast

	// Key bindings
	keys KeyMap

	// Login form
	loginTab    int
	loginInputs []textinput.Model
	loginFocus  int

	// Signup form
	signupInputs []textinput.Model
	signupFocus  int
	signupRole   int

	// Forgot-password form
	forgotInput textinput.Model
	forgotSent  bool

	// New-booking form
	bookingResource int // index into resources
	bookingInputs   []textinput.Model
	bookingFocus    int

	// Data
	resources []model.Resource
	bookings  []model.Booking
	users     []model.User
	activity  []model.ActivityRecord
	stats     model.Stats
	fetchedAt time.Time
	offline   bool
	loading   bool

	// Per-screen cursors
	resourceCursor int
	bookingCursor  int
	userCursor     int
	activityCursor int

	// Transient feedback
	formError string
	notice    string

	// Revocation of a token found expired during startup, dispatched
	// from Init once the program loop is running.
	pendingRevoke tea.Cmd
}

// Options configures the application.
type Options struct {
	Client *api.Client
	Cache  *storage.Cache
	Store  *session.Store
}

// New creates the application model and reconciles any persisted session:
// a stored session with time left resumes where it was, an expired one is
// cleared before the login screen shows.
func New(opts Options) *App {
	theme := styles.NewTheme()

	a := &App{
		screen:    ScreenLogin,
		baseTheme: theme,
		theme:     theme,
		client:    opts.Client,
		cache:     opts.Cache,
		store:     opts.Store,
		clock:     session.NewClock(),
		header:    components.NewHeader(theme),
		status:    components.NewStatusBar(theme),
		overlay:   components.NewSessionOverlay(theme),
		keys:      DefaultKeyMap(),
		width:     80,
		height:    24,
	}

	a.initLoginForm()
	a.initSignupForm()
	a.initForgotForm()

	a.resumeStoredSession()
	return a
}

// resumeStoredSession restores a persisted session if one exists and has
// time left. Corrupt or expired state tears down to a clean signed-out
// start; the session never silently gains time across a restart.
func (a *App) resumeStoredSession() {
	if a.store == nil {
		return
	}
	state, err := a.store.Load()
	if err != nil {
		return
	}

	id := state.Identity
	if access.SessionTimed(id) {
		a.clock.Resume(state.StartEpochMillis())
		if a.clock.ExpiredAt(time.Now()) {
			a.clock.FireExpiry(time.Now())
			a.pendingRevoke = a.revokeTokenCmd(state.Token)
			a.store.Clear()
			if a.cache != nil {
				a.cache.Clear()
			}
			a.notice = "Your previous session expired. Please sign in again."
			return
		}
	}

	a.client.SetToken(state.Token)
	a.installIdentity(id)
	a.screen = ScreenMain
}

// installIdentity wires everything derived from the signed-in identity:
// resolved variant, capabilities, themed accent, nav, and status bar.
func (a *App) installIdentity(id access.Identity) {
	a.identity = id
	a.signedIn = true
	a.variant = access.ResolveVariant(id)
	a.canApprove = access.CanApproveBookings(id)
	a.canListUsers = access.CanListUsers(id)

	a.theme = a.baseTheme.WithAccent(styles.VariantAccent(a.variant))
	a.header = components.NewHeader(a.theme)
	a.header.SetWidth(a.width)
	a.header.SetIdentity(id)
	a.nav = components.NewNav(a.theme, id)
	a.status = components.NewStatusBar(a.theme)
	a.status.SetWidth(a.width)
	a.status.SetIdentity(id)
	a.overlay = components.NewSessionOverlay(a.theme)
	a.overlay.SetSize(a.width, a.height)
}

// teardownSession clears every trace of the signed-in session and returns
// to the login screen.
func (a *App) teardownSession(notice string) {
	a.clock.Stop()
	a.client.SetToken("")
	if a.store != nil {
		a.store.Clear()
	}
	if a.cache != nil {
		a.cache.Clear()
	}

	a.identity = access.Identity{}
	a.signedIn = false
	a.canApprove = false
	a.canListUsers = false
	a.resources = nil
	a.bookings = nil
	a.users = nil
	a.activity = nil
	a.stats = model.Stats{}
	a.offline = false
	a.loading = false

	a.theme = a.baseTheme
	a.header = components.NewHeader(a.theme)
	a.header.SetWidth(a.width)
	a.status = components.NewStatusBar(a.theme)
	a.status.SetWidth(a.width)
	a.overlay = components.NewSessionOverlay(a.theme)
	a.overlay.SetSize(a.width, a.height)
	a.nav = nil

	a.resetLoginForm()
	a.notice = notice
	a.screen = ScreenLogin
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenMain {
		a.loading = true
		return tea.Batch(a.refreshCmd(), a.clock.TickCmd())
	}
	return tea.Batch(textinput.Blink, a.pendingRevoke)
}

// Identity returns the signed-in identity (zero value when signed out).
func (a *App) Identity() access.Identity {
	return a.identity
}

// Screen returns the current top-level screen.
func (a *App) CurrentScreen() Screen {
	return a.screen
}

// =============================================================================
// FORM SETUP
// =============================================================================

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Width = 36
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func (a *App) initLoginForm() {
	a.loginInputs = []textinput.Model{
		newInput("email", false),
		newInput("password", true),
	}
	a.loginInputs[0].Focus()
	a.loginFocus = 0
}

func (a *App) resetLoginForm() {
	for i := range a.loginInputs {
		a.loginInputs[i].SetValue("")
		a.loginInputs[i].Blur()
	}
	a.loginInputs[0].Focus()
	a.loginFocus = 0
	a.loginTab = 0
	a.formError = ""
}

func (a *App) initSignupForm() {
	a.signupInputs = []textinput.Model{
		newInput("full name", false),
		newInput("email", false),
		newInput("password", true),
	}
	a.signupRole = 0
}

func (a *App) initForgotForm() {
	a.forgotInput = newInput("email", false)
}

func (a *App) initBookingForm() {
	a.bookingInputs = []textinput.Model{
		newInput("date (YYYY-MM-DD)", false),
		newInput("time slot (e.g. 10AM-12PM)", false),
		newInput("purpose (optional)", false),
	}
	a.bookingInputs[0].Focus()
	a.bookingFocus = 0
	a.bookingResource = a.resourceCursor
}
