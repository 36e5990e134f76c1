// Package backend wraps the terminal screen used for rendering.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns the tcell screen lifecycle.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend over a real screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewSimulation creates a terminal backend over a simulation screen,
// for tests.
func NewSimulation(width, height int) (*Terminal, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetSize(width, height)
	return &Terminal{screen: screen}, nil
}

// Init initializes the screen and enables mouse reporting. Mouse
// support is required; every interaction mode depends on it.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// Screen exposes the underlying tcell screen for event polling and
// drawing.
func (t *Terminal) Screen() tcell.Screen {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen
}
