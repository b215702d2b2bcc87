package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/app/screens"
	"github.com/kerbaras/artic/pkg/services"
)

type App struct {
	controller *services.GalleryController
}

func NewApp(controller *services.GalleryController) *App {
	return &App{controller: controller}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
