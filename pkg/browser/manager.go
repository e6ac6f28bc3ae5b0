package browser

import (
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Options configures the managed browser.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// ViewportWidth and ViewportHeight set the page viewport; zero values
	// fall back to the defaults.
	ViewportWidth  int
	ViewportHeight int

	// Timeout is the default timeout for page operations in milliseconds.
	Timeout float64

	// SkipInstall skips the Playwright driver/browser installation step.
	SkipInstall bool
}

// Manager owns the Playwright lifecycle and the active tab. Tool calls
// arrive serialized through the MCP loop, but shutdown can race them, so
// all state is mutex-guarded.
type Manager struct {
	mu          sync.Mutex
	opts        Options
	logger      zerolog.Logger
	pw          *playwright.Playwright
	browser     playwright.Browser
	context     playwright.BrowserContext
	tab         *Tab
	initialized bool
}

// NewManager creates a manager. Initialize must be called before any tab
// is requested.
func NewManager(opts Options, logger zerolog.Logger) *Manager {
	if opts.ViewportWidth == 0 {
		opts.ViewportWidth = DefaultViewportWidth
	}
	if opts.ViewportHeight == 0 {
		opts.ViewportHeight = DefaultViewportHeight
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Manager{opts: opts, logger: logger}
}

// Initialize installs (unless skipped) and starts the Playwright driver.
// Driver output is discarded: stdout carries the MCP transport.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if !m.opts.SkipInstall {
		if err := playwright.Install(runOpts); err != nil {
			return fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	m.pw = pw
	m.initialized = true
	m.logger.Debug().Msg("playwright driver started")
	return nil
}

// ActiveTab returns the active tab, launching the browser and opening a
// page lazily on first use.
func (m *Manager) ActiveTab() (*Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, fmt.Errorf("browser manager not initialized")
	}
	if m.tab != nil {
		return m.tab, nil
	}

	browser, err := m.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &m.opts.Headless,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  m.opts.ViewportWidth,
			Height: m.opts.ViewportHeight,
		},
	})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(m.opts.Timeout)

	m.browser = browser
	m.context = context
	m.tab = newTab(page, m.logger)
	m.logger.Info().Str("tab_id", m.tab.ID).Bool("headless", m.opts.Headless).Msg("browser launched")
	return m.tab, nil
}

// Shutdown closes the tab, browser and Playwright driver. Safe to call
// more than once.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tab != nil {
		_ = m.tab.close()
		m.tab = nil
	}
	if m.context != nil {
		_ = m.context.Close()
		m.context = nil
	}
	if m.browser != nil {
		_ = m.browser.Close()
		m.browser = nil
	}

	if m.initialized && m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
		m.pw = nil
		m.initialized = false
	}
	return nil
}
