// Public domain.

package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"gopkg.in/yaml.v2"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BA55D3"))
	leafStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FA9A"))
	valueStyle   = lipgloss.NewStyle().Blink(true).Foreground(lipgloss.Color("#6495ED"))
)

// Tree returns s as a tree with one branch per section and one leaf per
// setting, in document order.
func Tree(s Settings) (*tree.Tree, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	t := tree.Root("config").
		RootStyle(sectionStyle).
		EnumeratorStyle(sectionStyle)
	addItems(t, doc)
	return t, nil
}

func addItems(t *tree.Tree, items yaml.MapSlice) {
	for _, it := range items {
		k := fmt.Sprint(it.Key)
		if sub, ok := it.Value.(yaml.MapSlice); ok {
			branch := tree.Root(k).
				RootStyle(sectionStyle).
				EnumeratorStyle(leafStyle).
				ItemStyle(leafStyle)
			addItems(branch, sub)
			t.Child(branch)
			continue
		}
		t.Child(k + ": " + valueStyle.Render(fmt.Sprint(it.Value)))
	}
}

// Show renders s as a tree.
func Show(s Settings) string {
	t, err := Tree(s)
	if err != nil {
		return err.Error()
	}
	return t.String()
}
