package sheet

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"faicon/css"
	"faicon/fa"
	"faicon/icon"
)

// Entry is a resolved, ready to render sheet entry.
type Entry struct {
	Name  string
	Label string // empty when sheet does not set one
	View  icon.Viewer
}

// Resolver turns sheet specifications into icons.
type Resolver struct {
	log    *zap.Logger
	styles *css.Parser
}

func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		log:    log.Named("sheet"),
		styles: css.NewParser(log),
	}
}

// Resolve converts every entry of the sheet. It does not stop on first bad
// entry, all problems are returned together.
func (r *Resolver) Resolve(s *Sheet) ([]Entry, error) {
	if s == nil {
		return nil, errors.New("no sheet to resolve")
	}

	var (
		errs    error
		entries = make([]Entry, 0, len(s.Entries))
		seen    = make(map[string]int, len(s.Entries))
	)
	for i, spec := range s.Entries {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: name is required", i+1))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: name %q already used by entry %d", i+1, name, prev))
			continue
		}
		seen[name] = i + 1

		view, err := r.resolveEntry(spec)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %d (%s): %w", i+1, name, err))
			continue
		}

		entries = append(entries, Entry{Name: name, Label: spec.Label, View: view})
		r.log.Debug("Resolved entry", zap.String("name", name), zap.String("class", view.View().Class()))
	}
	if errs != nil {
		return nil, errs
	}
	return entries, nil
}

func (r *Resolver) resolveEntry(spec EntrySpec) (icon.Viewer, error) {
	switch {
	case spec.Icon != nil && spec.Stack != nil:
		return nil, errors.New("both icon and stack are specified")
	case spec.Icon != nil:
		return r.ResolveIcon(spec.Icon)
	case spec.Stack != nil:
		return r.ResolveStack(spec.Stack)
	default:
		return nil, errors.New("neither icon nor stack is specified")
	}
}

// ResolveIcon builds icon from its specification.
func (r *Resolver) ResolveIcon(spec *IconSpec) (icon.Icon, error) {
	var errs error

	props := make([]fa.Prop, 0, len(spec.Props))
	for _, p := range spec.Props {
		prop, err := fa.ParseProp(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		props = append(props, prop)
	}
	result := icon.New(props...)

	if spec.Transform != nil {
		transforms := make([]fa.Transform, 0, len(*spec.Transform))
		for _, t := range *spec.Transform {
			tr, err := fa.ParseTransform(t)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			transforms = append(transforms, tr)
		}
		result = result.WithTransform(transforms...)
	}

	if spec.Style != nil {
		styles := make([]css.Style, 0, len(*spec.Style))
		for _, s := range *spec.Style {
			st, err := r.styles.ParseStyle(s)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			styles = append(styles, st)
		}
		result = result.WithStyle(styles...)
	}

	if errs != nil {
		return icon.Icon{}, errs
	}
	return result, nil
}

// ResolveStack builds stacked icon, both layers are required.
func (r *Resolver) ResolveStack(spec *StackSpec) (icon.StackedIcon, error) {
	if spec.Top == nil || spec.Bottom == nil {
		return icon.StackedIcon{}, errors.New("stack requires both top and bottom icons")
	}

	var errs error
	top, err := r.ResolveIcon(spec.Top)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("top: %w", err))
	}
	bottom, err := r.ResolveIcon(spec.Bottom)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("bottom: %w", err))
	}

	var (
		size    fa.Size
		hasSize bool
	)
	if spec.Size != "" {
		if size, err = fa.ParseSize(spec.Size); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("size: %w", err))
		} else {
			hasSize = true
		}
	}
	if errs != nil {
		return icon.StackedIcon{}, errs
	}

	stack := icon.NewStacked(top, bottom)
	if hasSize {
		stack = stack.WithSize(size)
	}
	return stack, nil
}
