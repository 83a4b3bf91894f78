package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

func TestErrorCodes(t *testing.T) {
	err := apperr.NotFoundf("character with ID '%s' not found", "abc").
		WithMeta("character_id", "abc")

	assert.True(t, apperr.IsNotFound(err))
	assert.False(t, apperr.IsInvalidArgument(err))
	assert.Equal(t, apperr.CodeNotFound, apperr.GetCode(err))
	assert.Equal(t, "abc", apperr.GetMeta(err)["character_id"])
}

func TestWrapPreservesCode(t *testing.T) {
	base := apperr.InvalidArgument("name is required")
	wrapped := apperr.Wrap(base, "validating creation input")

	assert.True(t, apperr.IsInvalidArgument(wrapped))
	assert.ErrorContains(t, wrapped, "validating creation input")
	assert.True(t, stderrors.Is(wrapped, wrapped))
}

func TestWrapThroughFmtChain(t *testing.T) {
	base := apperr.NotFound("no such record")
	chained := fmt.Errorf("loading character: %w", base)

	assert.True(t, apperr.IsNotFound(chained))
}

func TestWrapWithCode(t *testing.T) {
	cause := stderrors.New("disk full")
	err := apperr.WrapWithCode(cause, apperr.CodeInternal, "failed to write record")

	assert.Equal(t, apperr.CodeInternal, apperr.GetCode(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
	assert.Nil(t, apperr.Wrapf(nil, "nothing %d", 1))
}

func TestGetCodeForeignError(t *testing.T) {
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(stderrors.New("plain")))
}
