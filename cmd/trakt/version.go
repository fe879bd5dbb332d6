package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ansg191/trakt"
)

//go:embed VERSION
var embeddedVersion string

type buildInfo struct {
	Version    string `json:"version"`
	Revision   string `json:"revision,omitempty"`
	Dirty      bool   `json:"dirty,omitempty"`
	GoVersion  string `json:"go_version,omitempty"`
	APIVersion string `json:"api_version"`
	BaseURL    string `json:"base_url"`
}

func readBuildInfo() buildInfo {
	info, _ := debug.ReadBuildInfo()
	return newBuildInfo(embeddedVersion, info)
}

// newBuildInfo prefers the module version of a `go install pkg@version` build and
// otherwise reports devel-<VERSION>, with the short VCS revision when known.
func newBuildInfo(base string, info *debug.BuildInfo) buildInfo {
	b := buildInfo{
		Version:    strings.TrimSpace(base),
		APIVersion: trakt.APIVersion,
		BaseURL:    trakt.DefaultBaseURL,
	}
	if info == nil {
		return b
	}
	b.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value[:min(len(s.Value), 7)]
		case "vcs.modified":
			b.Dirty = s.Value == "true"
		}
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		b.Version = v
		return b
	}
	b.Version = "devel-" + b.Version
	if b.Revision != "" {
		b.Version += "+" + b.Revision
		if b.Dirty {
			b.Version += ".dirty"
		}
	}
	return b
}

// Version is the version string used in the User-Agent header.
func Version() string {
	return readBuildInfo().Version
}

type VersionCmd struct {
	JSON bool `help:"Print build information as JSON."`
}

func (c *VersionCmd) Run() error {
	return c.write(os.Stdout, readBuildInfo())
}

func (c *VersionCmd) write(w io.Writer, b buildInfo) error {
	if c.JSON {
		out, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
	_, err := fmt.Fprintf(w, "trakt %s (api v%s, %s)\n", b.Version, b.APIVersion, b.GoVersion)
	return err
}
