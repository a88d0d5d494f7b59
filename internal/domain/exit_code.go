package domain

import "fmt"

// ExitCode is the integer status a shell command handler returns.
// Zero means success; the named values follow the device error table so
// operators see familiar names in the console.
type ExitCode int

const (
	ExitOK            ExitCode = 0
	ExitFail          ExitCode = -1
	ExitNoMem         ExitCode = 0x101
	ExitInvalidArg    ExitCode = 0x102
	ExitInvalidState  ExitCode = 0x103
	ExitInvalidSize   ExitCode = 0x104
	ExitNotFound      ExitCode = 0x105
	ExitNotSupported  ExitCode = 0x106
	ExitTimeout       ExitCode = 0x107
	ExitInvalidResp   ExitCode = 0x108
	ExitNotFinished   ExitCode = 0x10c
	ExitNotAllowed    ExitCode = 0x10d
	ExitWifiBase      ExitCode = 0x3000
	ExitWifiNotConn   ExitCode = 0x3000 + 15
	ExitStorageFailed ExitCode = 0x1100
)

var exitCodeNames = map[ExitCode]string{
	ExitOK:            "ESP_OK",
	ExitFail:          "ESP_FAIL",
	ExitNoMem:         "ESP_ERR_NO_MEM",
	ExitInvalidArg:    "ESP_ERR_INVALID_ARG",
	ExitInvalidState:  "ESP_ERR_INVALID_STATE",
	ExitInvalidSize:   "ESP_ERR_INVALID_SIZE",
	ExitNotFound:      "ESP_ERR_NOT_FOUND",
	ExitNotSupported:  "ESP_ERR_NOT_SUPPORTED",
	ExitTimeout:       "ESP_ERR_TIMEOUT",
	ExitInvalidResp:   "ESP_ERR_INVALID_RESPONSE",
	ExitNotFinished:   "ESP_ERR_NOT_FINISHED",
	ExitNotAllowed:    "ESP_ERR_NOT_ALLOWED",
	ExitWifiBase:      "ESP_ERR_WIFI_BASE",
	ExitWifiNotConn:   "ESP_ERR_WIFI_NOT_CONNECT",
	ExitStorageFailed: "ESP_ERR_NVS_BASE",
}

// Name returns the symbolic name of the code, or "UNKNOWN ERROR" when the
// code is not part of the table.
func (c ExitCode) Name() string {
	if name, ok := exitCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN ERROR"
}

// Hex formats the code the way the console reports it (0x105)
func (c ExitCode) Hex() string {
	if c < 0 {
		return fmt.Sprintf("-0x%x", -int(c))
	}
	return fmt.Sprintf("0x%x", int(c))
}
