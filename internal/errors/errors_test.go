package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryOf_SiteError_ReturnsCategory(t *testing.T) {
	err := New(CategoryDate, SeverityError, "bad date")
	require.Equal(t, CategoryDate, CategoryOf(err))
}

func TestCategoryOf_WrappedSiteError_Unwraps(t *testing.T) {
	err := fmt.Errorf("outer: %w", ReadFailed("a.md", errors.New("io")))
	require.Equal(t, CategoryRead, CategoryOf(err))
}

func TestCategoryOf_PlainError_Internal(t *testing.T) {
	require.Equal(t, CategoryInternal, CategoryOf(errors.New("plain")))
}

func TestIsFatal_SeverityDrivesResult(t *testing.T) {
	require.True(t, IsFatal(WriteFailed("out.html", errors.New("disk"))))
	require.False(t, IsFatal(InvalidDate("nope", "a.md")))
	require.False(t, IsFatal(errors.New("plain")))
}

func TestSiteError_ErrorString_IncludesCategoryAndCause(t *testing.T) {
	err := Wrap(errors.New("boom"), CategoryRender, SeverityError, "render broke")
	require.Contains(t, err.Error(), "render")
	require.Contains(t, err.Error(), "boom")
}

func TestSiteError_Unwrap_ExposesCause(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(cause, CategoryStore, SeverityError, "store")
	require.ErrorIs(t, err, cause)
}
