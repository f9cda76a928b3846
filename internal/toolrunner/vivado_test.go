package toolrunner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/fpgactl/internal/config"
)

func testSynthPlan() *config.SynthPlan {
	return &config.SynthPlan{
		Top:         "top",
		Part:        "xc7a35ticsg324-1L",
		Sources:     []string{"/proj/hdl/fifo/fifo.sv", "/proj/hdl/top/top.sv"},
		IncludeDirs: []string{"/proj/hdl/top/include"},
		Constraints: []string{"/proj/hdl/top/top.xdc"},
	}
}

func TestFlowString(t *testing.T) {
	assert.Equal(t, "synth", FlowSynth.String())
	assert.Equal(t, "impl", FlowImpl.String())
	assert.Equal(t, "bit", FlowBit.String())
}

func TestVivadoScript(t *testing.T) {
	plan := testSynthPlan()

	t.Run("synth flow", func(t *testing.T) {
		script := VivadoScript(plan, FlowSynth, "/proj/build")

		assert.Contains(t, script, "read_verilog -sv {/proj/hdl/fifo/fifo.sv}")
		assert.Contains(t, script, "read_verilog -sv {/proj/hdl/top/top.sv}")
		assert.Contains(t, script, "read_xdc {/proj/hdl/top/top.xdc}")
		assert.Contains(t, script, "synth_design -top top -part xc7a35ticsg324-1L -include_dirs {/proj/hdl/top/include}")
		assert.NotContains(t, script, "place_design")
		assert.NotContains(t, script, "write_bitstream")
	})

	t.Run("impl flow adds place and route", func(t *testing.T) {
		script := VivadoScript(plan, FlowImpl, "/proj/build")

		assert.Contains(t, script, "opt_design")
		assert.Contains(t, script, "place_design")
		assert.Contains(t, script, "route_design")
		assert.NotContains(t, script, "write_bitstream")
	})

	t.Run("bit flow writes the bitstream", func(t *testing.T) {
		script := VivadoScript(plan, FlowBit, "/proj/build")

		assert.Contains(t, script, "write_bitstream -force {/proj/build/top.bit}")
	})

	t.Run("sources precede synth_design", func(t *testing.T) {
		script := VivadoScript(plan, FlowSynth, "/proj/build")
		read := strings.Index(script, "read_verilog")
		synth := strings.Index(script, "synth_design")
		assert.Less(t, read, synth)
	})

	t.Run("no include_dirs argument without include dirs", func(t *testing.T) {
		bare := *plan
		bare.IncludeDirs = nil
		script := VivadoScript(&bare, FlowSynth, "/proj/build")
		assert.NotContains(t, script, "-include_dirs")
	})
}
