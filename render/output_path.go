package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"faicon/config"
)

// buildOutputPath expands configured template into file name under dst.
// Template may produce subdirectories, every path segment is cleaned and
// transliterated if requested. Source file name is used when template is
// empty or fails.
func buildOutputPath(values Values, dst string, format config.OutputFmt, doc *config.DocumentConfig, log *zap.Logger) string {
	name := ""
	if doc.OutputNameTemplate != "" {
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, doc.OutputNameTemplate, values)
		if err != nil {
			log.Warn("Unable to prepare output filename", zap.Error(err))
		} else {
			name = filepath.FromSlash(expanded)
		}
	}
	if name == "" {
		name = values.SourceFile
	}

	segments := splitPath(name)
	if len(segments) == 0 {
		segments = []string{values.SourceFile}
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dst)
	for _, s := range segments {
		parts = append(parts, cleanPathSegment(s, doc.FileNameTransliterate))
	}
	parts[len(parts)-1] += format.Ext()
	return filepath.Join(parts...)
}

// splitPath drops empty and relative segments so result always stays under
// destination.
func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, string(os.PathSeparator)) {
		s = strings.TrimSpace(s)
		if s == "" || s == "." || s == ".." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
