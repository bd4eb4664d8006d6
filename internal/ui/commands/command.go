package commands

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"searchtabs/internal/domain"
	"searchtabs/internal/ui/coordinator"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Coord  *coordinator.Coordinator
	Logger *zap.Logger
}

// CopyDoneMsg reports the outcome of a clipboard write
type CopyDoneMsg struct {
	ItemID string
	Err    error
}

// CopyCommand writes a row to the clipboard off the UI goroutine, since the
// platform clipboard tool may block
type CopyCommand struct {
	ctx  *CommandContext
	item domain.Item
}

func NewCopyCommand(ctx *CommandContext, item domain.Item) *CopyCommand {
	return &CopyCommand{ctx: ctx, item: item}
}

func (c *CopyCommand) Execute() tea.Cmd {
	item := c.item
	svc := c.ctx.Coord.Clipboard
	return func() tea.Msg {
		return CopyDoneMsg{ItemID: item.ID, Err: svc.Copy(item)}
	}
}

// ToggleFilterCommand flips one category's visibility
type ToggleFilterCommand struct {
	ctx *CommandContext
	key string
}

func NewToggleFilterCommand(ctx *CommandContext, key string) *ToggleFilterCommand {
	return &ToggleFilterCommand{ctx: ctx, key: key}
}

func (c *ToggleFilterCommand) Execute() tea.Cmd {
	if err := c.ctx.Coord.Filters.Toggle(c.key); err != nil {
		c.ctx.Logger.Warn("toggle filter", zap.Error(err))
	}
	return nil
}

// SelectTabCommand replaces the active tab
type SelectTabCommand struct {
	ctx *CommandContext
	key string
}

func NewSelectTabCommand(ctx *CommandContext, key string) *SelectTabCommand {
	return &SelectTabCommand{ctx: ctx, key: key}
}

func (c *SelectTabCommand) Execute() tea.Cmd {
	if err := c.ctx.Coord.Selection.SelectKey(c.key); err != nil {
		c.ctx.Logger.Warn("select tab", zap.Error(err))
	}
	return nil
}

// CycleTabCommand moves to the next or previous offered tab
type CycleTabCommand struct {
	ctx     *CommandContext
	forward bool
}

func NewCycleTabCommand(ctx *CommandContext, forward bool) *CycleTabCommand {
	return &CycleTabCommand{ctx: ctx, forward: forward}
}

func (c *CycleTabCommand) Execute() tea.Cmd {
	visible := c.ctx.Coord.Filters.VisibleCategories()
	if c.forward {
		c.ctx.Coord.Selection.Next(visible)
	} else {
		c.ctx.Coord.Selection.Prev(visible)
	}
	return nil
}

// QueryCommand feeds new search text into the pipeline
type QueryCommand struct {
	ctx   *CommandContext
	query string
}

func NewQueryCommand(ctx *CommandContext, query string) *QueryCommand {
	return &QueryCommand{ctx: ctx, query: query}
}

func (c *QueryCommand) Execute() tea.Cmd {
	c.ctx.Coord.Search.SetQuery(c.query)
	return nil
}

// ClearCommand cancels the search and drops any pending pipeline work
type ClearCommand struct {
	ctx *CommandContext
}

func NewClearCommand(ctx *CommandContext) *ClearCommand {
	return &ClearCommand{ctx: ctx}
}

func (c *ClearCommand) Execute() tea.Cmd {
	c.ctx.Coord.Search.Clear()
	return nil
}

// errNoRow is returned when a copy targets a row that is not displayed
var errNoRow = errors.New("no row at cursor")
