package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsChainToGenericSentinels(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrPostNotFound))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(ErrSlugExists))

	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsDuplicateError(ErrPostNotFound))
	assert.False(t, IsNotFoundError(errors.New("unrelated")))
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading user by id: %w", ErrUserNotFound)
	assert.True(t, IsNotFoundError(wrapped))
}

func TestListPageOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ListPage{Index: 1, Size: 20}.Offset())
	assert.Equal(t, 20, ListPage{Index: 2, Size: 20}.Offset())
	assert.Equal(t, 45, ListPage{Index: 10, Size: 5}.Offset())
}
