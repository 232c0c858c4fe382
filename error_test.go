package booklog_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/booklog"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := booklog.Errorf(booklog.ENOTFOUND, "book %q not found", "Dune")

	assert.Equal(t, booklog.ENOTFOUND, booklog.ErrorCode(err))
	assert.Equal(t, "book \"Dune\" not found", booklog.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("find book: %w", booklog.Errorf(booklog.EINVALID, "book title required"))

	assert.Equal(t, booklog.EINVALID, booklog.ErrorCode(err))
	assert.Equal(t, "book title required", booklog.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, booklog.EINTERNAL, booklog.ErrorCode(err))
	assert.Equal(t, "Internal error.", booklog.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, booklog.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, booklog.ErrorMessage(nil))
}
