package constraints

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type goListPackage struct {
	ImportPath string
	Imports    []string
}

const modulePath = "github.com/jacoelho/jdom"

func TestLibraryPackagesDoNotImportCommandLayer(t *testing.T) {
	t.Parallel()

	commandLayer := map[string]struct{}{
		modulePath + "/internal/cli":      {},
		modulePath + "/internal/genvalue": {},
	}

	var violations []string
	for _, pkg := range goList(t, "./...") {
		if strings.HasPrefix(pkg.ImportPath, modulePath+"/cmd/") {
			continue
		}
		if _, ok := commandLayer[pkg.ImportPath]; ok {
			continue
		}
		for _, imp := range pkg.Imports {
			if _, forbidden := commandLayer[imp]; forbidden {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden library->command imports:\n%s", strings.Join(violations, "\n"))
	}
}

func TestPurePackagesAvoidSideEffectImports(t *testing.T) {
	t.Parallel()

	purePackages := map[string]struct{}{
		modulePath:                    {},
		modulePath + "/internal/scan": {},
		modulePath + "/query":         {},
		modulePath + "/yamlconv":      {},
		modulePath + "/httpmsg":       {},
	}

	forbidden := map[string]struct{}{
		"os":           {},
		"math/rand":    {},
		"math/rand/v2": {},
	}

	var violations []string
	for _, pkg := range goList(t, "./...") {
		if _, ok := purePackages[pkg.ImportPath]; !ok {
			continue
		}
		for _, imp := range pkg.Imports {
			if _, banned := forbidden[imp]; banned {
				violations = append(violations, pkg.ImportPath+" imports forbidden package "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden imports in pure packages:\n%s", strings.Join(violations, "\n"))
	}
}

func goList(t *testing.T, patterns ...string) []goListPackage {
	t.Helper()

	args := append([]string{"list", "-json"}, patterns...)
	cmd := exec.Command("go", args...)
	cmd.Dir = repoRoot(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("go list failed: %v\nstderr:\n%s", err, stderr.String())
	}

	decoder := json.NewDecoder(bytes.NewReader(stdout.Bytes()))
	var packages []goListPackage
	for decoder.More() {
		var pkg goListPackage
		if err := decoder.Decode(&pkg); err != nil {
			t.Fatalf("decode go list json: %v", err)
		}
		packages = append(packages, pkg)
	}

	return packages
}

func repoRoot(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}

	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}
