package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "studyhub/internal/"

// walkImports calls visit for every studyhub import of every non-test file
// under root.
func walkImports(t *testing.T, root string, visit func(file, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, modulePrefix) {
				visit(filepath.ToSlash(path), importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules"), func(file, importPath string) {
		module := moduleName(file)
		layer := detectLayer(file)
		if module == "" || layer == "" || !strings.Contains(importPath, "/internal/modules/") {
			return
		}
		if violatesLayerRule(module, layer, importPath) {
			t.Errorf("forbidden import in %s (%s): %s", file, layer, importPath)
		}
	})
}

// The terminal UI talks to modules only through their inbound ports and the
// DTOs those ports carry. Domain types, services and stores stay behind them.
func TestViewsSeeOnlyPortsAndDTOs(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "ui"), func(file, importPath string) {
		if strings.HasPrefix(importPath, modulePrefix+"bootstrap") {
			t.Errorf("%s reaches into bootstrap: %s", file, importPath)
			return
		}
		if !strings.Contains(importPath, "/internal/modules/") {
			return
		}
		if !isPortIn(importPath) && !isDTO(importPath) {
			t.Errorf("%s imports %s; views may use only dto and port/in", file, importPath)
		}
	})
}

func TestPlatformStaysBelowModules(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "platform"), func(file, importPath string) {
		for _, upper := range []string{"modules", "ui", "bootstrap"} {
			if strings.HasPrefix(importPath, modulePrefix+upper) {
				t.Errorf("%s imports %s", file, importPath)
			}
		}
	})
}

func TestLayerRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		module, layer, importPath string
		forbidden                 bool
	}{
		{"dashboard", "service", "studyhub/internal/modules/scores/port/in", false},
		{"dashboard", "service", "studyhub/internal/modules/scores/dto", false},
		{"dashboard", "service", "studyhub/internal/modules/scores/domain", true},
		{"dashboard", "service", "studyhub/internal/modules/scores/service", true},
		{"vocab", "adapter/in", "studyhub/internal/modules/vocab/domain", true},
		{"vocab", "adapter/out", "studyhub/internal/modules/vocab/domain", false},
		{"vocab", "domain", "studyhub/internal/modules/vocab/port/out", false},
		{"vocab", "domain", "studyhub/internal/modules/vocab/service", true},
		{"vocab", "dto", "studyhub/internal/modules/vocab/domain", true},
		{"pomodoro", "usecase", "studyhub/internal/modules/pomodoro/domain", false},
		{"journal", "service", "studyhub/internal/modules/journal/adapter/out", true},
	}
	for _, tc := range cases {
		if got := violatesLayerRule(tc.module, tc.layer, tc.importPath); got != tc.forbidden {
			t.Errorf("%s/%s importing %s: forbidden=%v, want %v", tc.module, tc.layer, tc.importPath, got, tc.forbidden)
		}
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func violatesLayerRule(module, layer, importPath string) bool {
	sameModule := strings.Contains(importPath, "/internal/modules/"+module+"/")
	if !sameModule {
		// Another module is reachable only through what it publishes.
		return !isPortIn(importPath) && !isDTO(importPath)
	}

	switch layer {
	case "dto":
		return !isDTO(importPath)
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return strings.Contains(importPath, "/adapter/")
	case "service":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/")
	case "domain":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") || strings.Contains(importPath, "/service/")
	default:
		return false
	}
}
