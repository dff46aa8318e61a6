package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driving"
)

func TestProcessCmd_Use(t *testing.T) {
	assert.Equal(t, "process", processCmd.Use)
}

func TestProcessCmd_PrintsStats(t *testing.T) {
	wired := testApp()
	wired.Process = &fakeProcessor{stats: driving.ProcessStats{Processed: 7, Skipped: 2, Failed: 1, Total: 10}}
	cleanup := setupAppTest(wired)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Processed 7 symbols (2 skipped, 1 failed).")
}

func TestProcessCmd_ServiceError(t *testing.T) {
	wired := testApp()
	wired.Process = &fakeProcessor{err: errors.New("pipeline broken")}
	cleanup := setupAppTest(wired)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "processing failed")
}
