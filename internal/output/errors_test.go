package output

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/semmy-space/credman/pkg/wincred"
)

func TestFromStoreError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		exitCode int
	}{
		{
			"not found",
			&wincred.PlatformError{Op: "CredRead", Code: 1168},
			ExitNotFound,
		},
		{
			"other platform failure",
			&wincred.PlatformError{Op: "CredWrite", Code: 5},
			ExitPlatform,
		},
		{
			"validation",
			&wincred.ValidationError{Keys: []string{"Bogus"}},
			ExitUsage,
		},
		{
			"unsupported operation",
			fmt.Errorf("read: %w", wincred.ErrUnsupported),
			ExitUnsupported,
		},
		{
			"unsupported platform",
			wincred.ErrUnsupportedPlatform,
			ExitUnsupported,
		},
		{
			"encoding",
			&wincred.EncodingError{CodePage: 932, Reason: "truncated"},
			ExitEncoding,
		},
		{
			"unknown",
			errors.New("boom"),
			ExitGeneral,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cliErr := FromStoreError(tc.err)
			assert.Equal(t, tc.exitCode, cliErr.ExitCode)
			assert.NotEmpty(t, cliErr.Message)
		})
	}
}

func TestCLIErrorHint(t *testing.T) {
	err := NewCLIError(ExitGeneral, "boom").WithHint("try again")
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "try again", err.Hint)
}
