package growth_test

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/cmd/growth"
	"fjacquet/card-payoff/internal/calcerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthCommand_CSV(t *testing.T) {
	out, err := common.ExecuteCommand(growth.NewCommand(),
		"--balance", "1000", "--rate", "24", "--months", "3", "--format", "csv")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"month,balance,interest_added,total_interest_accrued",
		"1,1020.00,20.00,20.00",
		"2,1040.40,20.40,40.40",
		"3,1061.21,20.81,61.21",
	}, "\n")+"\n", out)
}

func TestGrowthCommand_SemicolonDelimiter(t *testing.T) {
	out, err := common.ExecuteCommand(growth.NewCommand(),
		"--balance", "1000", "--rate", "24", "--months", "1", "--format", "csv", "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, out, "1;1020.00;20.00;20.00")
}

func TestGrowthCommand_NegativeMonths(t *testing.T) {
	_, err := common.ExecuteCommand(growth.NewCommand(),
		"--balance", "1000", "--rate", "24", "--months=-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calcerror.ErrInvalidInput))
}
