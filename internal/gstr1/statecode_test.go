package gstr1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstrly/internal/gstr1"
)

func TestStateCode(t *testing.T) {
	assert.Equal(t, "29", gstr1.StateCode("Karnataka"))
	assert.Equal(t, "27", gstr1.StateCode("Maharashtra"))
	assert.Equal(t, "07", gstr1.StateCode("Delhi"))
	assert.Equal(t, "38", gstr1.StateCode("Ladakh"))

	// Unknown names pass through unchanged; the portal flags them, the
	// generator does not.
	assert.Equal(t, "Bengaluru", gstr1.StateCode("Bengaluru"))
	assert.Equal(t, "", gstr1.StateCode(""))
}
