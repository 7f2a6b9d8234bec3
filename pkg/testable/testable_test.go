package testable

import (
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskOne_interceptedWhileTesting(t *testing.T) {
	BeginTesting()
	defer EndTesting()

	WithNextSurveyInputFunc(func() interface{} { return "" })

	in := survey.Input{Message: "Press Enter to exit..."}
	var out string
	err := AskOne(&in, &out)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	WithNextSurveyInputFunc(func() interface{} { return "yes" })
	err = AskOne(&survey.Input{Message: "continue?"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "yes", out)
}
