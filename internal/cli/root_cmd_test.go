package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natbrooks/orbit/internal/domain"
)

func TestNewRootCmd_RegistersAllCommands(t *testing.T) {
	root := NewRootCmd(&App{})

	want := []string{"course", "deliverable", "budget", "dashboard", "whatif", "allocate", "plan"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "command %q not registered", name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestNewRootCmd_WhatIfSubcommands(t *testing.T) {
	root := NewRootCmd(&App{})

	for _, name := range []string{"target", "score", "drop"} {
		cmd, _, err := root.Find([]string{"whatif", name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestParseScheduleBlocks(t *testing.T) {
	blocks, err := parseScheduleBlocks([]string{"1,10:00,12:00,class", "3, 14:00, 16:00, lab"})
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, 1, blocks[0].DayOfWeek)
	assert.Equal(t, "10:00", blocks[0].StartTime)
	assert.Equal(t, "12:00", blocks[0].EndTime)
	assert.Equal(t, domain.BlockClass, blocks[0].Type)
	assert.NotEmpty(t, blocks[0].ID)

	assert.Equal(t, 3, blocks[1].DayOfWeek)
	assert.Equal(t, domain.BlockLab, blocks[1].Type)
}

func TestParseScheduleBlocks_Invalid(t *testing.T) {
	_, err := parseScheduleBlocks([]string{"1,10:00,12:00"})
	assert.ErrorContains(t, err, "expected day,start,end,type")

	_, err = parseScheduleBlocks([]string{"7,10:00,12:00,class"})
	assert.ErrorContains(t, err, "0 (Sunday) to 6 (Saturday)")

	_, err = parseScheduleBlocks([]string{"1,10:00,12:00,gym"})
	assert.ErrorContains(t, err, "invalid --block type")
}

func TestValidateGrade(t *testing.T) {
	assert.NoError(t, validateGrade("87.5"))
	assert.NoError(t, validateGrade("0"))
	assert.NoError(t, validateGrade("100"))
	assert.Error(t, validateGrade(""))
	assert.Error(t, validateGrade("101"))
	assert.Error(t, validateGrade("-1"))
	assert.Error(t, validateGrade("ninety"))
}
