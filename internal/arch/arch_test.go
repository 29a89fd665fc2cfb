// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

const mod = "assayfilter/"

var apps = []string{
	mod + "internal/filterapp", mod + "internal/coverageapp", mod + "internal/compareapp",
	mod + "internal/appshell", mod + "cmd/",
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	with := func(extra ...string) []string { return append(append([]string{}, apps...), extra...) }
	bans := map[string][]string{
		mod + "internal/rules":    with(mod+"internal/pipeline", mod+"internal/writers", mod+"internal/cli", mod+"internal/genelist", mod+"internal/classify"),
		mod + "internal/genelist": with(mod+"internal/pipeline", mod+"internal/writers", mod+"internal/cli", mod+"internal/classify"),
		mod + "internal/classify": with(mod+"internal/pipeline", mod+"internal/writers", mod+"internal/cli"),
		mod + "internal/pipeline": with(mod+"internal/classify", mod+"internal/genelist", mod+"internal/rules", mod+"internal/cli", mod+"internal/writers"),
		mod + "internal/writers":  with(mod+"internal/pipeline", mod+"internal/cli"),
		mod + "internal/coverage": with(mod+"internal/pipeline", mod+"internal/cli"),
		mod + "internal/variants": with(mod+"internal/pipeline", mod+"internal/cli"),
		mod + "internal/cli":      apps,
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, mod) {
			continue
		}
		forbidden, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			for _, ban := range forbidden {
				if strings.HasPrefix(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
