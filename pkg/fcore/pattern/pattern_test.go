package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/fcore/pkg/fcore/option"
	"github.com/ib-77/fcore/pkg/fcore/result"
	"github.com/ib-77/fcore/pkg/fcore/try"
)

func TestOptionPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSome(option.Some(1)))
	assert.False(t, IsNone(option.Some(1)))
	assert.True(t, IsNone(option.None[string]()))
	assert.False(t, IsSome(option.None[string]()))
}

func TestResultPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsOk(result.Ok[int, string](1)))
	assert.True(t, IsError(result.Error[int]("e")))
	assert.False(t, IsOk(result.Error[int]("e")))
}

func TestAttemptPredicates(t *testing.T) {
	t.Parallel()

	ok := try.RunFunc(func() int { return 1 })
	failed := try.Do(func() error { return errors.New("e") })

	assert.True(t, IsSuccess(ok))
	assert.False(t, IsFailure(ok))
	assert.True(t, IsFailure(failed))
	assert.False(t, IsSuccess(failed))
}
