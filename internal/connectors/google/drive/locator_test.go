package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// TestFileIDFromLocator tests the supported locator shapes.
func TestFileIDFromLocator(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		want    string
	}{
		{
			"file view url",
			"https://drive.google.com/file/d/1AbC_dEf-123456789/view?usp=sharing",
			"1AbC_dEf-123456789",
		},
		{
			"open url",
			"https://drive.google.com/open?id=1AbC_dEf-123456789",
			"1AbC_dEf-123456789",
		},
		{
			"uc download url",
			"https://drive.google.com/uc?id=1AbC_dEf-123456789&export=download",
			"1AbC_dEf-123456789",
		},
		{
			"docs url",
			"https://docs.google.com/document/d/1AbC_dEf-123456789/edit",
			"1AbC_dEf-123456789",
		},
		{
			"bare file id",
			"1AbC_dEf-123456789",
			"1AbC_dEf-123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := FileIDFromLocator(tt.locator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

// TestFileIDFromLocator_Invalid tests rejection of non-drive locators.
func TestFileIDFromLocator_Invalid(t *testing.T) {
	for _, locator := range []string{
		"",
		"short",
		"https://example.com/a.pdf",
		"https://drive.google.com/drive/my-drive",
	} {
		_, err := FileIDFromLocator(locator)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "locator %q", locator)
	}
}

// TestIsDriveLocator tests drive locator detection.
func TestIsDriveLocator(t *testing.T) {
	assert.True(t, IsDriveLocator("https://drive.google.com/file/d/1AbC_dEf-123456789/view"))
	assert.True(t, IsDriveLocator("https://docs.google.com/document/d/1AbC_dEf-123456789/edit"))
	assert.True(t, IsDriveLocator("1AbC_dEf-123456789"))
	assert.False(t, IsDriveLocator("https://example.com/a.pdf"))
	assert.False(t, IsDriveLocator("not an id"))
}
