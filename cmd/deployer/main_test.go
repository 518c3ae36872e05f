package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRejectsUnknownTarget(t *testing.T) {
	for _, args := range [][]string{nil, {"launchpad"}, {"cw21", "extra"}} {
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

		code := run(context.Background(), args, stdout, stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "cw20, factory, pair, router, all")
		assert.Empty(t, stdout.String())
	}
}

func TestRunRequiresCredentials(t *testing.T) {
	t.Setenv("MNEMONIC", "")
	t.Setenv("PRIVATE_KEY", "")
	t.Setenv("ADMIN_ADDRESS", "mantra1admin")
	t.Setenv("MERCHANT_ADDRESS", "mantra1merchant")

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run(context.Background(), []string{"cw20"}, stdout, stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "MNEMONIC")
	assert.Empty(t, stdout.String())
}

func TestRunRequiresAdminAndMerchant(t *testing.T) {
	t.Setenv("PRIVATE_KEY", "0x01")
	t.Setenv("ADMIN_ADDRESS", "")
	t.Setenv("MERCHANT_ADDRESS", "")

	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"factory"}, new(bytes.Buffer), stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "ADMIN_ADDRESS")
}
