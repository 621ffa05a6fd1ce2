package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, 401, Authentication("missing token").StatusCode())
	assert.Equal(t, 403, Authorization("not yours").StatusCode())
	assert.Equal(t, 404, NotFound("order not found").StatusCode())
	assert.Equal(t, 400, Conflict("chat is closed").StatusCode())
	assert.Equal(t, 500, New(KindUnknown, "boom").StatusCode())
}

func TestAsUnwrapsChains(t *testing.T) {
	inner := NotFound("message not found")
	wrapped := fmt.Errorf("gateway: %w", inner)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsKind(t *testing.T) {
	err := Wrap(KindConflict, "chat is closed", errors.New("status=delivered"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindAuthorization))
	assert.EqualError(t, err, "chat is closed")
	assert.NotNil(t, errors.Unwrap(err))
}
