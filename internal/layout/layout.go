package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed ibmi.yml
var defaultDocument []byte

// Layout names the host directories and tools the audit inspects. All paths are
// absolute host paths; Host maps them onto the filesystem under Root.
type Layout struct {
	Root string `yaml:"-"`

	Shell         string        `yaml:"shell"`
	PackageBin    string        `yaml:"packageBin"`
	PASEBin       string        `yaml:"paseBin"`
	AIXBin        string        `yaml:"aixBin"`
	AIXAltBin     string        `yaml:"aixAltBin"`
	OPSPrefix     string        `yaml:"opsPrefix"`
	SystemCommand string        `yaml:"systemCommand"`
	LegacyProduct LegacyProduct `yaml:"legacyProduct"`
}

// LegacyProduct identifies a licensed program option that should be removed.
type LegacyProduct struct {
	ID             string `yaml:"id"`
	Option         string `yaml:"option"`
	PresentMessage string `yaml:"presentMessage"`
}

// Default returns the built-in IBM i layout re-rooted under root ("" or "/" for the live system).
func Default(root string) (Layout, error) {
	return Parse(defaultDocument, root)
}

// Parse decodes a layout document.
func Parse(data []byte, root string) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	l.Root = root
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate ensures every path is present and absolute.
func (l Layout) Validate() error {
	paths := []struct{ key, value string }{
		{"shell", l.Shell},
		{"packageBin", l.PackageBin},
		{"paseBin", l.PASEBin},
		{"aixBin", l.AIXBin},
		{"aixAltBin", l.AIXAltBin},
		{"opsPrefix", l.OPSPrefix},
		{"systemCommand", l.SystemCommand},
	}
	for _, p := range paths {
		if p.value == "" {
			return fmt.Errorf("layout: %s must be set", p.key)
		}
		if !strings.HasPrefix(p.value, "/") {
			return fmt.Errorf("layout: %s must be absolute (got %q)", p.key, p.value)
		}
	}
	if l.LegacyProduct.ID == "" || l.LegacyProduct.PresentMessage == "" {
		return errors.New("layout: legacyProduct needs id and presentMessage")
	}
	if l.Root != "" && !filepath.IsAbs(l.Root) {
		return fmt.Errorf("layout: root must be absolute (got %q)", l.Root)
	}
	return nil
}

// Host maps a host path onto the local filesystem.
func (l Layout) Host(p string) string {
	if l.Root == "" || l.Root == "/" {
		return p
	}
	return filepath.Join(l.Root, filepath.FromSlash(p))
}

// PackageTool is the host path of a tool in the preferred package directory.
func (l Layout) PackageTool(name string) string {
	return path.Join(l.PackageBin, name)
}

// PASETool is the host path of a PASE base tool.
func (l Layout) PASETool(name string) string {
	return path.Join(l.PASEBin, name)
}

// AIXTool is the host path of an AIX Toolbox binary.
func (l Layout) AIXTool(name string) string {
	return path.Join(l.AIXBin, name)
}

// AIXAltTool is the host path of a binary in the secondary AIX directory.
func (l Layout) AIXAltTool(name string) string {
	return path.Join(l.AIXAltBin, name)
}

// ProductQuery is the CL command that checks whether the legacy product option is installed.
func (l Layout) ProductQuery() string {
	option := l.LegacyProduct.Option
	if option == "" {
		option = "*BASE"
	}
	return fmt.Sprintf("QSYS/CHKPRDOPT PRDID(%s) OPTION(%s)", l.LegacyProduct.ID, option)
}
