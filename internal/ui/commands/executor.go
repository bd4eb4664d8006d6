package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"searchtabs/internal/domain"
	"searchtabs/internal/ui/coordinator"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(coord *coordinator.Coordinator, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		ctx: &CommandContext{
			Coord:  coord,
			Logger: logger,
		},
	}
}

// ExecuteQuery sets the search text
func (e *Executor) ExecuteQuery(query string) tea.Cmd {
	return NewQueryCommand(e.ctx, query).Execute()
}

// ExecuteClear cancels the search
func (e *Executor) ExecuteClear() tea.Cmd {
	return NewClearCommand(e.ctx).Execute()
}

// ExecuteToggleFilter toggles one category
func (e *Executor) ExecuteToggleFilter(key string) tea.Cmd {
	return NewToggleFilterCommand(e.ctx, key).Execute()
}

// ExecuteSelectTab selects a tab by key
func (e *Executor) ExecuteSelectTab(key string) tea.Cmd {
	return NewSelectTabCommand(e.ctx, key).Execute()
}

// ExecuteCycleTab moves through the offered tabs
func (e *Executor) ExecuteCycleTab(forward bool) tea.Cmd {
	return NewCycleTabCommand(e.ctx, forward).Execute()
}

// ExecuteCopy copies the displayed row at index
func (e *Executor) ExecuteCopy(results []domain.Item, index int) tea.Cmd {
	if index < 0 || index >= len(results) {
		e.ctx.Logger.Debug("copy ignored", zap.Error(fmt.Errorf("%w: %d", errNoRow, index)))
		return nil
	}
	return NewCopyCommand(e.ctx, results[index]).Execute()
}
