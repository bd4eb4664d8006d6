package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchtabs/internal/catalog"
	"searchtabs/internal/clock"
	"searchtabs/internal/config"
	"searchtabs/internal/domain"
	"searchtabs/internal/ui/coordinator"
)

func newTestExecutor(t *testing.T) (*Executor, *coordinator.Coordinator, *[]string) {
	t.Helper()
	var copied []string
	coord := coordinator.NewCoordinator(catalog.Default(), coordinator.Settings{
		InitialFilters: config.DefaultFilters(),
		ClipboardWrite: func(text string) error {
			copied = append(copied, text)
			return nil
		},
	}, clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), nil, nil)
	t.Cleanup(coord.Close)
	return NewExecutor(coord, nil), coord, &copied
}

func TestExecuteCopyOutOfRange(t *testing.T) {
	e, _, copied := newTestExecutor(t)
	items := catalog.Default().Items()

	assert.Nil(t, e.ExecuteCopy(items, -1))
	assert.Nil(t, e.ExecuteCopy(items, len(items)))
	assert.Empty(t, *copied)
}

func TestExecuteCopyRunsAsCommand(t *testing.T) {
	e, coord, copied := newTestExecutor(t)
	items := catalog.Default().Items()

	cmd := e.ExecuteCopy(items, 0)
	require.NotNil(t, cmd)
	assert.Empty(t, *copied, "nothing is written until the command runs")

	msg := cmd().(CopyDoneMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, items[0].ID, msg.ItemID)
	assert.Equal(t, []string{"Randall Johnsson - Active now"}, *copied)
	assert.True(t, coord.Clipboard.JustCopied(items[0].ID))
}

func TestExecuteFilterAndTabCommands(t *testing.T) {
	e, coord, _ := newTestExecutor(t)

	e.ExecuteToggleFilter("chats")
	assert.True(t, coord.Filters.Visible(domain.CategoryChats))

	e.ExecuteToggleFilter("bogus")
	assert.True(t, coord.Filters.Visible(domain.CategoryChats), "unknown keys change nothing")

	e.ExecuteSelectTab("people")
	assert.Equal(t, domain.Tab("people"), coord.Selection.Active())

	e.ExecuteCycleTab(false)
	assert.Equal(t, domain.Tab("files"), coord.Selection.Active())
}

func TestExecuteQueryAndClear(t *testing.T) {
	e, coord, _ := newTestExecutor(t)

	e.ExecuteQuery("mich")
	assert.Equal(t, domain.PhaseDebouncing, coord.Search.Snapshot().Phase)

	e.ExecuteClear()
	st := coord.Search.Snapshot()
	assert.Equal(t, domain.PhaseIdle, st.Phase)
	assert.Empty(t, st.Query)
}
