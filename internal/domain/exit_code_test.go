package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode_NameAndHex(t *testing.T) {
	tests := []struct {
		code ExitCode
		name string
		hex  string
	}{
		{ExitOK, "ESP_OK", "0x0"},
		{ExitFail, "ESP_FAIL", "-0x1"},
		{ExitInvalidArg, "ESP_ERR_INVALID_ARG", "0x102"},
		{ExitNotFound, "ESP_ERR_NOT_FOUND", "0x105"},
		{ExitCode(42), "UNKNOWN ERROR", "0x2a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.code.Name())
			assert.Equal(t, tt.hex, tt.code.Hex())
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("blue")
	require.NoError(t, err)
	assert.Equal(t, ColorBlue, c)

	_, err = ParseColor("purple")
	assert.Error(t, err)
}

func TestSlotInfo_Stuck(t *testing.T) {
	t0 := time.Unix(1000, 0)
	slot := SlotInfo{Armed: true, Deadline: time.Second, LastReset: t0, TaskID: "example"}

	assert.False(t, slot.Stuck(t0), "fresh slot is not stuck")
	assert.False(t, slot.Stuck(t0.Add(time.Second)), "exactly at the deadline is not stuck")
	assert.True(t, slot.Stuck(t0.Add(time.Second+time.Millisecond)))

	slot.Armed = false
	assert.False(t, slot.Stuck(t0.Add(time.Hour)), "disarmed slot is never stuck")

	slot.Armed = true
	slot.Deadline = 0
	assert.False(t, slot.Stuck(t0.Add(time.Hour)), "slot without deadline is inert")
}

func TestGetSettingSpec(t *testing.T) {
	spec := GetSettingSpec("wifi_ssid")
	require.NotNil(t, spec)
	assert.Equal(t, 64, spec.MaxLen)

	assert.Nil(t, GetSettingSpec("nope"))
}
