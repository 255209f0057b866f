package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound(CodeBookingNotFound, "booking not found")))
	assert.Equal(t, KindConflict, KindOf(Conflict(CodeBookingNotAvailable, "booking not available")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden(CodeBookingUpdateForbidden, "update not allowed")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("take booking: %w", Conflict(CodeBookingNotAvailable, "booking not available"))
	assert.True(t, IsConflict(err))
	assert.Equal(t, CodeBookingNotAvailable, CodeOf(err))
}

func TestCodeOf_NonDomainError(t *testing.T) {
	assert.Equal(t, "", CodeOf(errors.New("boom")))
}
