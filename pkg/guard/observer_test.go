package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnykmshr/goguard/internal/testutil"
	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/message"
)

func withObserver(t *testing.T, o Observer) {
	t.Helper()
	SetObserver(o)
	t.Cleanup(func() { SetObserver(nil) })
}

func TestObserver_SeesEveryEvaluation(t *testing.T) {
	rec := testutil.NewRecordingObserver()
	withObserver(t, rec)

	_, _ = Minimum(5, "count", 1)
	_, _ = IsSet("", "name")
	_, _ = RequiredLength("x", "code", 0)

	evals := rec.Evaluations()
	require.Len(t, evals, 3)

	assert.Equal(t, message.KindMinimum, evals[0].Kind)
	assert.Equal(t, "count", evals[0].Item)
	assert.NoError(t, evals[0].Err)

	assert.Equal(t, message.KindIsSet, evals[1].Kind)
	assert.True(t, gerrors.IsInvalidArgument(evals[1].Err))

	assert.Equal(t, message.KindRequiredLength, evals[2].Kind)
	assert.True(t, gerrors.IsMisuse(evals[2].Err))
}

func TestObserver_SizeReportsOnce(t *testing.T) {
	rec := testutil.NewRecordingObserver()
	withObserver(t, rec)

	_, _ = Size("", "nick", 2, 3)
	assert.Equal(t, 1, rec.Len())
	assert.Equal(t, 1, rec.Failures())
}

func TestSetObserver_Nil(t *testing.T) {
	rec := testutil.NewRecordingObserver()
	SetObserver(rec)
	assert.Same(t, rec, CurrentObserver())

	SetObserver(nil)
	assert.Nil(t, CurrentObserver())

	_, _ = Minimum(1, "x", 0)
	assert.Zero(t, rec.Len())
}

func TestObserverFunc(t *testing.T) {
	var seen message.Kind
	withObserver(t, ObserverFunc(func(kind message.Kind, item string, err error) {
		seen = kind
	}))

	_, _ = UUID("nope", "id")
	assert.Equal(t, message.KindUUID, seen)
}
