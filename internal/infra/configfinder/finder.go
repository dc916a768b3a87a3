package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/promptloop/internal/domain"
)

const DefaultConfigFile = "promptloop.yaml"

// Finder locates promptloop.yaml by searching upward from a start directory.
type Finder struct {
	ConfigFile string // defaults to "promptloop.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: DefaultConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Load reads the config file under root.
func (f *Finder) Load(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, f.ConfigFile))
}

// Resolve finds and loads the config that applies to startDir.
// A missing file is not an error: defaults are returned with an empty root.
func (f *Finder) Resolve(startDir string) (domain.Config, string, error) {
	root, err := f.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := f.Load(root)
	return cfg, root, err
}
