package i18n

import (
	"os"
	"path/filepath"

	"obleafusion/internal/shared/logger"
)

// OverrideLoader reads per-language translation overrides from a directory.
// Files are named <lang>.yaml or <lang>.yml (es.yaml, en.yml).
type OverrideLoader struct {
	files  map[Lang][]byte
	path   string
	logger logger.Interface
}

// NewOverrideLoader creates a loader for the given directory. An empty path
// disables overrides.
func NewOverrideLoader(path string, logger logger.Interface) *OverrideLoader {
	return &OverrideLoader{
		files:  make(map[Lang][]byte),
		path:   path,
		logger: logger,
	}
}

// Load reads every override file present in the directory.
func (l *OverrideLoader) Load() error {
	if l.path == "" {
		return nil
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		l.logger.Warnw("translation override directory not found, using embedded tables", "path", l.path)
		return nil
	}

	extensions := []string{".yaml", ".yml"}

	for _, lang := range []Lang{ES, EN} {
		for _, ext := range extensions {
			filePath := filepath.Join(l.path, string(lang)+ext)

			content, err := os.ReadFile(filePath)
			if err != nil {
				if !os.IsNotExist(err) {
					l.logger.Warnw("failed to read translation override",
						"file", filePath,
						"error", err,
					)
				}
				continue
			}

			l.files[lang] = content
			l.logger.Infow("loaded translation override",
				"lang", lang,
				"file", filePath,
				"size", len(content),
			)
			break
		}
	}

	return nil
}

// Get returns the raw override content for lang.
func (l *OverrideLoader) Get(lang Lang) ([]byte, bool) {
	content, ok := l.files[lang]
	return content, ok
}
