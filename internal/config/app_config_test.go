package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/tree/internal/utils"
)

type configTestCase struct {
	name            string
	globalContent   string
	localContent    string
	explicitPath    string
	explicitContent string
	expectHidden    *bool
	expectDepth     *int
	expectLimit     *int
	expectPattern   string
	expectSyntax    string
	expectColor     string
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func intPointer(value int) *int {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:          "local_overrides_global",
			globalContent: "tree:\n  all: true\n  max_depth: 2\n  color: never\n",
			localContent:  "tree:\n  all: false\n  pattern: '\\.go$'\n",
			expectHidden:  boolPointer(false),
			expectDepth:   intPointer(2),
			expectPattern: `\.go$`,
			expectColor:   "never",
		},
		{
			name:            "explicit_path_replaces_local",
			globalContent:   "tree:\n  file_limit: 10\n",
			localContent:    "tree:\n  color: always\n",
			explicitPath:    "custom.yaml",
			explicitContent: "tree:\n  pattern_syntax: glob\n  file_limit: 3\n",
			expectLimit:     intPointer(3),
			expectSyntax:    "glob",
		},
		{
			name: "no_files",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.ConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte(testCase.explicitContent), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}

			treeConfig := loadedConfig.Tree
			assertBoolPointer(t, "all", testCase.expectHidden, treeConfig.ShowHidden)
			assertIntPointer(t, "max_depth", testCase.expectDepth, treeConfig.MaxDepth)
			assertIntPointer(t, "file_limit", testCase.expectLimit, treeConfig.FileLimit)
			if treeConfig.MatchPattern != testCase.expectPattern {
				t.Fatalf("expected pattern %q, got %q", testCase.expectPattern, treeConfig.MatchPattern)
			}
			if treeConfig.PatternSyntax != testCase.expectSyntax {
				t.Fatalf("expected pattern syntax %q, got %q", testCase.expectSyntax, treeConfig.PatternSyntax)
			}
			if treeConfig.Color != testCase.expectColor {
				t.Fatalf("expected color %q, got %q", testCase.expectColor, treeConfig.Color)
			}
		})
	}
}

func TestLoadApplicationConfigurationRequiresExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))
	_, err := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: t.TempDir(),
		ExplicitFilePath: "missing.yaml",
	})
	if err == nil {
		t.Fatalf("expected error for missing explicit configuration")
	}
}

func TestLoadApplicationConfigurationRejectsMalformedYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))
	workingDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workingDir, utils.LocalConfigFileName), []byte("tree: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write local config: %v", err)
	}
	_, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir})
	if err == nil {
		t.Fatalf("expected error for malformed configuration")
	}
}

func TestMergeKeepsUnsetValues(t *testing.T) {
	base := ApplicationConfiguration{Tree: TreeConfiguration{
		DirectoriesOnly: boolPointer(true),
		IgnorePattern:   "vendor",
		NoReport:        boolPointer(true),
	}}
	override := ApplicationConfiguration{Tree: TreeConfiguration{
		FullPaths: boolPointer(true),
		Clipboard: boolPointer(true),
	}}

	merged := base.Merge(override)

	assertBoolPointer(t, "dirs_only", boolPointer(true), merged.Tree.DirectoriesOnly)
	assertBoolPointer(t, "full_paths", boolPointer(true), merged.Tree.FullPaths)
	assertBoolPointer(t, "no_report", boolPointer(true), merged.Tree.NoReport)
	assertBoolPointer(t, "clipboard", boolPointer(true), merged.Tree.Clipboard)
	if merged.Tree.IgnorePattern != "vendor" {
		t.Fatalf("expected ignore pattern to survive merge, got %q", merged.Tree.IgnorePattern)
	}
	*override.Tree.FullPaths = false
	if !*merged.Tree.FullPaths {
		t.Fatalf("merge must not alias override pointers")
	}
}

func assertBoolPointer(t *testing.T, key string, expected *bool, actual *bool) {
	t.Helper()
	if expected == nil {
		if actual != nil {
			t.Fatalf("expected no %s override, got %t", key, *actual)
		}
		return
	}
	if actual == nil || *actual != *expected {
		t.Fatalf("unexpected %s value", key)
	}
}

func assertIntPointer(t *testing.T, key string, expected *int, actual *int) {
	t.Helper()
	if expected == nil {
		if actual != nil {
			t.Fatalf("expected no %s override, got %d", key, *actual)
		}
		return
	}
	if actual == nil || *actual != *expected {
		t.Fatalf("unexpected %s value", key)
	}
}
