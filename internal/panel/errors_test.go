package panel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"file not found", NewFileNotFound("Data/x.csv", nil), "CSV file not found: Data/x.csv"},
		{"no header", NewNoHeaderRow("Data/x.csv"), "CSV file has no header row: Data/x.csv"},
		{"unknown bare", NewUnknownEntity(nil), "Unknown entity name."},
		{"unknown suggestions", NewUnknownEntity([]string{"Brazil", "Bahrain"}), "Unknown entity name. Did you mean one of: Brazil, Bahrain"},
		{"no data entity year", NewNoData("Brazil", 2020), "No data for Brazil in 2020."},
		{"no data year", NewNoData("", 1800), "No data found for year 1800."},
		{"no data year zero", NewNoData("", 0), "No data found for year 0."},
		{"no data entity year zero", NewNoData("Brazil", 0), "No data for Brazil in 0."},
		{"no data entity", NewNoDataForEntity("Brazil"), "No data found for entity: Brazil"},
		{"no data", NewNoDataForEntity(""), "No data available."},
		{"invalid argument", NewInvalidArgument("order must be 'loss' or 'gain'."), "order must be 'loss' or 'gain'."},
		{"labeled no data", WithDataset(NewNoData("Brazil", 2020), "forest change"), "No forest change data for Brazil in 2020."},
		{"labeled year", WithDataset(NewNoData("", 1800), "CO₂ per-capita"), "No CO₂ per-capita data found for year 1800."},
		{"malformed line", NewMalformedInput("x.csv", 3, errors.New("bad year")), "malformed CSV file x.csv (line 3): bad year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWithDataset_LeavesOtherErrorsAlone(t *testing.T) {
	unknown := NewUnknownEntity(nil)
	assert.Same(t, unknown, WithDataset(unknown, "forest change"))

	plain := errors.New("boom")
	assert.Equal(t, plain, WithDataset(plain, "forest change"))
}

func TestWithDataset_DoesNotMutateOriginal(t *testing.T) {
	orig := NewNoData("Brazil", 2020)
	_ = WithDataset(orig, "forest change")
	assert.Empty(t, orig.Dataset)
}

func TestKindHelpers_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("query failed: %w", NewNoData("", 2020))

	assert.True(t, IsNoData(wrapped))
	assert.False(t, IsUnknownEntity(wrapped))
	assert.True(t, IsUserError(wrapped))
	assert.Equal(t, KindNoData, KindOf(wrapped))

	assert.False(t, IsUserError(errors.New("boom")))
	assert.True(t, IsInvalidArgument(NewInvalidArgument("x")))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("stat failed")
	err := NewFileNotFound("x.csv", cause)
	require.ErrorIs(t, err, cause)
}
