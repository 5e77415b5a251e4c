package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateLayout(t *testing.T) {
	assert.Equal(t, "2006-01-02", DateLayout(""))
	assert.Equal(t, "2006-01-02", DateLayout("not a language header;;"))
	assert.Equal(t, "1/2/2006", DateLayout("en-US,en;q=0.9"))
	assert.Equal(t, "02/01/2006", DateLayout("en-GB"))
	assert.Equal(t, "2.1.2006", DateLayout("de-DE,de;q=0.8"))
}

func TestFormatDueDate(t *testing.T) {
	assert.Equal(t, "3/15/2024", FormatDueDate("2024-03-15T00:00:00.000Z", "1/2/2006"))
	assert.Equal(t, "2024-03-15", FormatDueDate("2024-03-15", "2006-01-02"))
	assert.Equal(t, "", FormatDueDate("", "1/2/2006"))
	assert.Equal(t, "someday", FormatDueDate("someday", "1/2/2006"))
}
