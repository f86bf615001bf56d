package config

import (
	"github.com/antithesishq/antithesis-sdk-go/assert"
)

var antithesisEnabled bool

func SetAntithesisMode(enabled bool) {
	antithesisEnabled = enabled
}

func IsAntithesisEnabled() bool {
	return antithesisEnabled
}

func AssertAlways(condition bool, message string, details map[string]any) {
	if antithesisEnabled {
		assert.Always(condition, message, details)
	}
}

func AssertSometimes(condition bool, message string, details map[string]any) {
	if antithesisEnabled {
		assert.Sometimes(condition, message, details)
	}
}
