package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchtabs/internal/domain"
)

func TestStartsOnAll(t *testing.T) {
	svc := NewService(nil, nil)
	assert.Equal(t, domain.TabAll, svc.Active())
}

func TestSelectIsUnconditional(t *testing.T) {
	svc := NewService(nil, nil)
	calls := 0
	svc.OnChange(func() { calls++ })

	svc.Select(domain.TabFor(domain.CategoryChats))
	assert.Equal(t, domain.TabFor(domain.CategoryChats), svc.Active())

	svc.Select(domain.TabFor(domain.CategoryChats))
	assert.Equal(t, 2, calls, "reselecting the same tab still notifies")
}

func TestSelectKey(t *testing.T) {
	svc := NewService(nil, nil)
	require.NoError(t, svc.SelectKey("People"))
	assert.Equal(t, domain.TabFor(domain.CategoryPeople), svc.Active())

	require.NoError(t, svc.SelectKey("all"))
	assert.Equal(t, domain.TabAll, svc.Active())

	err := svc.SelectKey("photos")
	require.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, domain.TabAll, svc.Active())
}

func TestNextPrevCycleVisibleTabs(t *testing.T) {
	svc := NewService(nil, nil)
	visible := []domain.Category{domain.CategoryFiles, domain.CategoryPeople}

	svc.Next(visible)
	assert.Equal(t, domain.TabFor(domain.CategoryFiles), svc.Active())
	svc.Next(visible)
	assert.Equal(t, domain.TabFor(domain.CategoryPeople), svc.Active())
	svc.Next(visible)
	assert.Equal(t, domain.TabAll, svc.Active())
	svc.Prev(visible)
	assert.Equal(t, domain.TabFor(domain.CategoryPeople), svc.Active())
}

func TestNextFromHiddenTabRestartsAtAll(t *testing.T) {
	svc := NewService(nil, nil)
	svc.Select(domain.TabFor(domain.CategoryChats))
	svc.Next([]domain.Category{domain.CategoryFiles})
	assert.Equal(t, domain.TabAll, svc.Active())
}
