// Package template holds the built-in flow seed templates and the
// instantiation algorithm that installs one into a live document.
package template

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/caue-mor/saas-solar/pkg/domain"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

var (
	loadOnce  sync.Once
	templates map[string]domain.FlowTemplate
	loadErr   error
)

func load() {
	templates = make(map[string]domain.FlowTemplate)

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		loadErr = fmt.Errorf("failed to read embedded templates: %w", err)
		return
	}

	for _, entry := range entries {
		raw, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			loadErr = fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
			return
		}

		var tpl domain.FlowTemplate
		if err := yaml.Unmarshal(raw, &tpl); err != nil {
			loadErr = fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
			return
		}
		if tpl.ID == "" {
			loadErr = fmt.Errorf("template %s has no id", entry.Name())
			return
		}
		templates[tpl.ID] = tpl
	}
}

// All returns every built-in template, sorted by id.
func All() ([]domain.FlowTemplate, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}

	out := make([]domain.FlowTemplate, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ByID returns a built-in template by id.
func ByID(id string) (domain.FlowTemplate, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return domain.FlowTemplate{}, loadErr
	}

	tpl, ok := templates[id]
	if !ok {
		return domain.FlowTemplate{}, fmt.Errorf("unknown template: %q", id)
	}
	return tpl, nil
}
