package try

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/async"
	"github.com/ib-77/fcore/pkg/fcore/result"
)

func TestRunFunc_Value(t *testing.T) {
	t.Parallel()

	res := RunFunc(func() int { return 42 })
	v, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestRunFunc_CapturesPanicByIdentity(t *testing.T) {
	t.Parallel()

	fault := &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}
	res := RunFunc(func() int { panic(fault) })

	reason, isErr := res.Reason()
	require.True(t, isErr)
	assert.Same(t, fault, reason)

	var pathErr *fs.PathError
	assert.ErrorAs(t, reason, &pathErr)
}

func TestRun(t *testing.T) {
	t.Parallel()

	ran := false
	res := Run(func() { ran = true })
	assert.True(t, ran)
	assert.True(t, res.Equal(result.Ok[bool, error](true)))

	fault := errors.New("boom")
	res = Run(func() { panic(fault) })
	reason, _ := res.Reason()
	assert.Same(t, fault, reason)
}

func TestDo_CapturesReturnedError(t *testing.T) {
	t.Parallel()

	fault := fmt.Errorf("wrapped: %w", fs.ErrPermission)
	res := Do(func() error { return fault })

	reason, isErr := res.Reason()
	require.True(t, isErr)
	assert.Same(t, fault, reason)
	assert.ErrorIs(t, reason, fs.ErrPermission)

	assert.True(t, Do(func() error { return nil }).IsOk())
}

func TestCall(t *testing.T) {
	t.Parallel()

	v, ok := Call(func() (string, error) { return "x", nil }).Value()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	fault := errors.New("bad")
	reason, isErr := Call(func() (string, error) { return "", fault }).Reason()
	require.True(t, isErr)
	assert.Same(t, fault, reason)
}

func TestCall_NonErrorPanic(t *testing.T) {
	t.Parallel()

	reason, isErr := RunFunc(func() int { panic("text") }).Reason()
	require.True(t, isErr)

	var panicErr *fcore.PanicError
	require.ErrorAs(t, reason, &panicErr)
	assert.Equal(t, "text", panicErr.Value)
	assert.NotEmpty(t, panicErr.Stack)
}

func TestCall_RuntimeError(t *testing.T) {
	t.Parallel()

	var m map[string]int
	reason, isErr := Run(func() { m["k"] = 1 }).Reason()
	require.True(t, isErr)
	assert.Contains(t, reason.Error(), "nil map")
}

func TestRunFuncAsync_FaultAfterSuspension(t *testing.T) {
	t.Parallel()

	fault := errors.New("late")
	res := RunFuncAsync(func() *async.Future[int] {
		return async.Go(func() int {
			time.Sleep(5 * time.Millisecond)
			panic(fault)
		})
	}).Await()

	reason, isErr := res.Reason()
	require.True(t, isErr)
	assert.Same(t, fault, reason)
}

func TestRunFuncAsync_FaultBeforeSuspension(t *testing.T) {
	t.Parallel()

	fault := errors.New("early")
	res := RunFuncAsync(func() *async.Future[int] {
		panic(fault)
	}).Await()

	reason, isErr := res.Reason()
	require.True(t, isErr)
	assert.Same(t, fault, reason)
}

func TestRunFuncAsync_Value(t *testing.T) {
	t.Parallel()

	res := RunFuncAsync(func() *async.Future[int] {
		return async.Go(func() int {
			time.Sleep(5 * time.Millisecond)
			return 7
		})
	}).Await()

	v, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestRunFuncAsync_NilFuture(t *testing.T) {
	t.Parallel()

	reason, isErr := RunFuncAsync(func() *async.Future[int] { return nil }).Await().Reason()
	require.True(t, isErr)

	var argErr *fcore.ArgumentNilError
	assert.ErrorAs(t, reason, &argErr)
}

func TestRunAsync(t *testing.T) {
	t.Parallel()

	res := RunAsync(func() *async.Future[fcore.Unit] {
		return async.Go(func() fcore.Unit {
			time.Sleep(5 * time.Millisecond)
			return fcore.Done
		})
	}).Await()
	assert.True(t, res.IsOk())

	fault := errors.New("async fault")
	res = RunAsync(func() *async.Future[fcore.Unit] {
		return async.Go(func() fcore.Unit { panic(fault) })
	}).Await()

	reason, isErr := res.Reason()
	require.True(t, isErr)
	assert.Same(t, fault, reason)
}

func TestRunFuncAsync_GoexitIsFailure(t *testing.T) {
	t.Parallel()

	res := RunFuncAsync(func() *async.Future[int] {
		return async.Go(func() int {
			runtime.Goexit()
			return 5
		})
	}).Await()

	reason, isErr := res.Reason()
	require.True(t, isErr, "expected failure, got %v", res)
	assert.ErrorIs(t, reason, fcore.ErrAborted)
}

func TestRunAsync_NilFuture(t *testing.T) {
	t.Parallel()

	reason, isErr := RunAsync(func() *async.Future[fcore.Unit] { return nil }).Await().Reason()
	require.True(t, isErr)

	var argErr *fcore.ArgumentNilError
	require.ErrorAs(t, reason, &argErr)
	assert.Equal(t, "future", argErr.Param)
}

func TestRunFuncAsync_KeepsProducerStack(t *testing.T) {
	t.Parallel()

	reason, isErr := RunFuncAsync(func() *async.Future[int] {
		return async.Go(func() int { panic("producer failed") })
	}).Await().Reason()
	require.True(t, isErr)

	var panicErr *fcore.PanicError
	require.ErrorAs(t, reason, &panicErr)
	assert.Equal(t, "producer failed", panicErr.Value)
	assert.Contains(t, string(panicErr.Stack), "TestRunFuncAsync_KeepsProducerStack")
}

func TestRunAsync_KeepsProducerStack(t *testing.T) {
	t.Parallel()

	reason, isErr := RunAsync(func() *async.Future[fcore.Unit] {
		return async.Go(func() fcore.Unit { panic("action failed") })
	}).Await().Reason()
	require.True(t, isErr)

	var panicErr *fcore.PanicError
	require.ErrorAs(t, reason, &panicErr)
	assert.Contains(t, string(panicErr.Stack), "TestRunAsync_KeepsProducerStack")
}
