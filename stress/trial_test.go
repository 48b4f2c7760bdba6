package stress

import (
	"testing"

	errs "github.com/eaugeas/rbtree/errors"
	"github.com/eaugeas/rbtree/logs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialRunOK(t *testing.T) {
	res, err := Trial{ID: 3, Seed: 7, Size: 2000, Removals: 1000, KeyRange: 500}.Run()

	require.NoError(t, err)
	assert.Nil(t, res.Err)
	assert.Empty(t, res.Error)
	assert.Equal(t, 3, res.ID)
	assert.Equal(t, 2000-res.Removed, res.Len)
	assert.True(t, res.Removed > 0)
	assert.LessOrEqual(t, res.Height, MaxHeight(res.Len))
}

func TestTrialRunFullKeyRange(t *testing.T) {
	res, err := Trial{Seed: 1, Size: 500, Removals: 10}.Run()

	require.NoError(t, err)
	assert.Equal(t, 500-res.Removed, res.Len)
}

func TestTrialRunEmpty(t *testing.T) {
	res, err := Trial{Seed: 1, Removals: 10, KeyRange: 10}.Run()

	require.NoError(t, err)
	assert.Equal(t, 0, res.Len)
	assert.Equal(t, 0, res.Removed)
	assert.Equal(t, 0, res.Height)
}

func TestTrialResultLog(t *testing.T) {
	res := TrialResult{
		Trial: Trial{ID: 1, Seed: 2, Size: 3},
		Err:   errors.Wrap(errs.New(ErrCodeHeight, "too high"), "after insertions"),
	}

	fields := logs.MapFields{}
	res.Log(fields)

	assert.Equal(t, 1, fields["trial"])
	assert.Equal(t, int64(2), fields["seed"])
	assert.Equal(t, ErrCodeHeight, fields["error_code"])
	assert.Equal(t, "too high", fields["description"])
}

func TestMaxHeight(t *testing.T) {
	assert.Equal(t, 0, MaxHeight(0))
	assert.Equal(t, 2, MaxHeight(1))
	assert.Equal(t, 19, MaxHeight(1000))
}

func TestOracleMostRecentFirst(t *testing.T) {
	o := NewOracle()
	o.Insert(5, 1)
	o.Insert(2, 2)
	o.Insert(5, 3)

	v, ok := o.Find(5)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{2, 3, 1}, o.Values())

	assert.True(t, o.Remove(5))
	v, _ = o.Find(5)
	assert.Equal(t, 1, v)

	assert.False(t, o.Remove(4))
	assert.Equal(t, 2, o.Len())
}
