package replay_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PatatasDelPapa/desim"
	"github.com/PatatasDelPapa/desim/replay"
)

const scenarioTOML = `
[[process]]
name = "immediate"
schedule_now = true
holds = ["1s", "2s"]

[[process]]
name = "delayed"
initial_delay = "5s"
holds = []

[[process]]
name = "manual"
`

func TestLoad_DecodesScenario(t *testing.T) {
	scenario, err := replay.Load(strings.NewReader(scenarioTOML))
	require.NoError(t, err)
	require.Len(t, scenario.Process, 3)
	require.Equal(t, "immediate", scenario.Process[0].Name)
	require.True(t, scenario.Process[0].ScheduleNow)
	require.Equal(t, []string{"1s", "2s"}, scenario.Process[0].Holds)
	require.Equal(t, "5s", scenario.Process[1].InitialDelay)
}

func TestApply_SchedulesAndRunsScriptedProcesses(t *testing.T) {
	scenario, err := replay.Load(strings.NewReader(scenarioTOML))
	require.NoError(t, err)

	sim, err := desim.NewSimulation[any]()
	require.NoError(t, err)
	defer sim.Close()

	keys, err := replay.Apply(sim, scenario)
	require.NoError(t, err)
	require.Len(t, keys, 3)

	// The "manual" process is registered but never scheduled; schedule it
	// explicitly so RunUntilEmpty can still drain every live process.
	sim.ScheduleNow(keys[2])

	sim.RunUntilEmpty()

	require.Equal(t, 0, sim.Len())
	require.Equal(t, 5*time.Second, sim.Time())
}

func TestApply_RejectsUnparseableHold(t *testing.T) {
	scenario, err := replay.Load(strings.NewReader(`
[[process]]
name = "bad"
schedule_now = true
holds = ["not-a-duration"]
`))
	require.NoError(t, err)

	sim, err := desim.NewSimulation[any]()
	require.NoError(t, err)
	defer sim.Close()

	_, err = replay.Apply(sim, scenario)
	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := replay.LoadFile("/nonexistent/scenario.toml")
	require.Error(t, err)
}
