package scaffold

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/vk/fpgactl/internal/ctxlog"
	"github.com/vk/fpgactl/internal/fsutil"
	projecthcl "github.com/vk/fpgactl/internal/hcl"
)

// Created reports what a scaffolding run wrote, with paths relative to the
// project root.
type Created struct {
	ModulePath string
	Files      []string
	// ProjectUpdated is false when the module was already declared in
	// project.hcl and no edit was needed.
	ProjectUpdated bool
}

// CreateModule scaffolds a new module under hdl/<name> inside the project
// root: src/ and tb/ with starter SystemVerilog, a manifest declaring the
// given dependencies, and a default sim target. The module path is then
// appended to the project descriptor's modules list.
func CreateModule(ctx context.Context, root, name string, deps []string) (*Created, error) {
	logger := ctxlog.FromContext(ctx)

	rel := path.Join("hdl", name)
	dir := filepath.Join(root, "hdl", name)
	if fsutil.Exists(dir) {
		return nil, fmt.Errorf("module directory already exists: %s", rel)
	}

	for _, sub := range []string{"src", "tb"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("creating module layout: %w", err)
		}
	}

	created := &Created{ModulePath: rel}
	writes := []struct {
		rel     string
		content string
	}{
		{path.Join(rel, "src", name+".sv"), starterSource(name)},
		{path.Join(rel, "tb", name+"_tb.sv"), starterTestbench(name)},
		{path.Join(rel, projecthcl.ManifestFileName), renderManifest(name, deps)},
	}
	for _, w := range writes {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(w.rel)), []byte(w.content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", w.rel, err)
		}
		created.Files = append(created.Files, w.rel)
	}

	updated, err := addModuleToProject(filepath.Join(root, projecthcl.ProjectFileName), rel)
	if err != nil {
		return nil, err
	}
	created.ProjectUpdated = updated

	logger.Info("Module scaffolded.", "module", name, "path", rel)
	return created, nil
}

func starterSource(name string) string {
	return fmt.Sprintf(`%[2]stimescale 1ns / 1ps

module %[1]s (
    input  logic clk,
    input  logic rst_n
);

endmodule
`, name, "`")
}

func starterTestbench(name string) string {
	return fmt.Sprintf(`%[2]stimescale 1ns / 1ps

module %[1]s_tb;

    logic clk;
    logic rst_n;

    %[1]s dut (
        .clk   (clk),
        .rst_n (rst_n)
    );

    initial clk = 1'b0;
    always #5 clk = ~clk;

    initial begin
        $dumpfile("%[1]s_tb.vcd");
        $dumpvars(0, %[1]s_tb);

        rst_n = 1'b0;
        repeat (10) @(posedge clk);
        rst_n = 1'b1;

        repeat (200) @(posedge clk);
        $finish;
    end

endmodule
`, name, "`")
}
