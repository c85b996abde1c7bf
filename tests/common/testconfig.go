package common

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// TestConfig holds integration test settings, read from tests/test_config.toml
// when present.
type TestConfig struct {
	Results struct {
		Dir string `toml:"dir"`
	} `toml:"results"`
	Backend struct {
		URL   string `toml:"url"`   // use an already-running backend instead of a container
		Image string `toml:"image"` // echo image standing in for the Coolify API
	} `toml:"backend"`
}

const defaultBackendImage = "mendhak/http-https-echo:34"

var (
	globalConfig     *TestConfig
	globalConfigOnce sync.Once
	resultsDir       string
	resultsDirOnce   sync.Once
)

// LoadTestConfig returns the test configuration, loaded once per process.
func LoadTestConfig() *TestConfig {
	globalConfigOnce.Do(func() {
		globalConfig = &TestConfig{}
		globalConfig.Results.Dir = filepath.Join("tests", "results")
		globalConfig.Backend.Image = defaultBackendImage

		configPaths := []string{
			filepath.Join(FindProjectRoot(), "tests", "test_config.toml"),
			"test_config.toml",
		}

		for _, path := range configPaths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if err := toml.Unmarshal(data, globalConfig); err == nil {
				break
			}
		}

		if url := os.Getenv("COOLIFY_TEST_URL"); url != "" {
			globalConfig.Backend.URL = url
		}
	})
	return globalConfig
}

// FindProjectRoot walks up from the working directory to the directory
// holding go.mod.
func FindProjectRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

// GetResultsDir returns a timestamped directory for container logs, created
// once per test process.
func GetResultsDir() string {
	resultsDirOnce.Do(func() {
		baseDir := LoadTestConfig().Results.Dir
		if !filepath.IsAbs(baseDir) {
			baseDir = filepath.Join(FindProjectRoot(), baseDir)
		}
		resultsDir = filepath.Join(baseDir, time.Now().Format("2006-01-02-15-04-05"))
		os.MkdirAll(resultsDir, 0755)
	})
	return resultsDir
}
