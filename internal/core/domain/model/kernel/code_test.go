package kernel_test

import (
	"strings"
	"testing"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	t.Run("generates_valid_uuid_backed_code", func(t *testing.T) {
		code := kernel.NewCode()

		require.NoError(t, code.Validate())
		_, err := uuid.Parse(code.String())
		require.NoError(t, err)
	})

	t.Run("generates_unique_codes", func(t *testing.T) {
		first := kernel.NewCode()
		second := kernel.NewCode()

		assert.False(t, first.IsEqual(second))
	})
}

func TestCodeFromString(t *testing.T) {
	t.Run("accepts_opaque_text", func(t *testing.T) {
		code, err := kernel.CodeFromString("unknown-code")

		require.NoError(t, err)
		assert.Equal(t, "unknown-code", code.String())
		require.NoError(t, code.Validate())
	})

	t.Run("rejects_empty_code", func(t *testing.T) {
		_, err := kernel.CodeFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_oversized_code", func(t *testing.T) {
		_, err := kernel.CodeFromString(strings.Repeat("a", 51))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("accepts_code_at_maximum_length", func(t *testing.T) {
		code, err := kernel.CodeFromString(strings.Repeat("a", 50))

		require.NoError(t, err)
		require.NoError(t, code.Validate())
	})
}

func TestCode_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var code kernel.Code

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCodeIsNotConstructed, err)
	})
}

func TestCode_IsEqual(t *testing.T) {
	t.Run("same_text_is_equal", func(t *testing.T) {
		first, err := kernel.CodeFromString("abc-123")
		require.NoError(t, err)
		second, err := kernel.CodeFromString("abc-123")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})
}
