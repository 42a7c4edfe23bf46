package audit_test

import (
	"testing"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/audit"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewRecord(t *testing.T) {
	now := time.Now()

	t.Run("creates_record_with_all_fields", func(t *testing.T) {
		correlationID := uuid.NewString()

		r, err := audit.NewRecord(
			correlationID,
			now,
			"POST",
			"/api/purchase",
			strPtr("item=Margherita"),
			201,
			strPtr(`{"code":"abc"}`),
			nil,
		)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, correlationID, r.CorrelationID())
		assert.Equal(t, now, r.Timestamp())
		assert.Equal(t, "POST", r.Method())
		assert.Equal(t, "/api/purchase", r.Path())
		require.NotNil(t, r.RequestBody())
		assert.Equal(t, "item=Margherita", *r.RequestBody())
		assert.Equal(t, 201, r.ResponseStatus())
		require.NotNil(t, r.ResponseBody())
		assert.Nil(t, r.FailureDetail())
	})

	t.Run("bodies_and_failure_detail_are_nullable", func(t *testing.T) {
		r, err := audit.NewRecord(uuid.NewString(), now, "GET", "/api/purchase/x", nil, 404, nil, strPtr("object not found: x"))

		require.NoError(t, err)
		assert.Nil(t, r.RequestBody())
		assert.Nil(t, r.ResponseBody())
		require.NotNil(t, r.FailureDetail())
	})

	t.Run("rejects_missing_required_fields", func(t *testing.T) {
		cases := []struct {
			name          string
			correlationID string
			method        string
			path          string
		}{
			{"missing_correlation_id", "", "GET", "/api/purchase"},
			{"missing_method", uuid.NewString(), "", "/api/purchase"},
			{"missing_path", uuid.NewString(), "GET", ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := audit.NewRecord(tc.correlationID, now, tc.method, tc.path, nil, 200, nil, nil)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var r audit.Record

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, audit.ErrRecordIsNotConstructed, err)
	})
}
