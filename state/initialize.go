package state

import (
	"fmt"
	"os"
	"time"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// LoadStylesheet reads optional local stylesheet configured for documents.
// Nothing is loaded when configuration does not name one.
func (e *LocalEnv) LoadStylesheet() error {
	if e.Cfg == nil || e.Cfg.Document.StylesheetPath == "" {
		e.InlineStyle = nil
		return nil
	}
	data, err := os.ReadFile(e.Cfg.Document.StylesheetPath)
	if err != nil {
		return fmt.Errorf("unable to read style css from %q: %w", e.Cfg.Document.StylesheetPath, err)
	}
	e.InlineStyle = data
	return nil
}
