package collision

import (
	"testing"

	"github.com/declkit/declkit/errs"
	"github.com/stretchr/testify/require"
)

func TestTracker_NoCollision(t *testing.T) {
	tr := NewTracker()

	tr.Track("point::x", 1)
	tr.Track("point::y", 2)

	require.False(t, tr.HasCollision())
	require.Equal(t, 2, tr.Count())
	require.Equal(t, []string{"point::x", "point::y"}, tr.Names())
}

func TestTracker_DetectsCollision(t *testing.T) {
	tr := NewTracker()

	tr.Track("point::x", 1)
	tr.Track("rect::w", 1) // different name, same key

	require.True(t, tr.HasCollision())
	require.Equal(t, 1, tr.Count(), "colliding name is not re-listed")
}

func TestTracker_DuplicateNameIsNoOp(t *testing.T) {
	tr := NewTracker()

	tr.Track("point::x", 1)
	tr.Track("point::x", 1)

	require.False(t, tr.HasCollision())
	require.Equal(t, 1, tr.Count())
}

func TestTracker_TrackID(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackID(7))
	require.ErrorIs(t, tr.TrackID(7), errs.ErrFQNCollision)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Track("a", 1)
	tr.Track("b", 1)
	require.True(t, tr.HasCollision())

	tr.Reset()
	require.False(t, tr.HasCollision())
	require.Equal(t, 0, tr.Count())
	require.NoError(t, tr.TrackID(1))
}
