package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/api"
)

type EndpointsCmd struct {
	Service string `help:"Only list endpoints of this service." short:"s"`
}

func (c *EndpointsCmd) Run() error {
	return writeEndpoints(os.Stdout, api.Registry().Endpoints(), c.Service)
}

func writeEndpoints(w io.Writer, entries []trakt.Entry, service string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMETHOD\tENDPOINT\tAUTH\tEXPECT\tSHAPE\tFIELDS")
	n := 0
	for _, e := range entries {
		if service != "" && e.Service != service {
			continue
		}
		n++
		m := e.Info.Metadata
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Key(), m.Method, m.Endpoint, m.Auth, joinInts(e.Info.Expect), e.Info.Shape, fieldSummary(e.Info))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if n == 0 && service != "" {
		return fmt.Errorf("no endpoints for service %q", service)
	}
	return nil
}

func joinInts(codes []int) string {
	s := make([]string, len(codes))
	for i, c := range codes {
		s[i] = fmt.Sprint(c)
	}
	return strings.Join(s, ",")
}

// fieldSummary renders the request's wire names grouped by role, e.g. "path:id query:extended".
func fieldSummary(info trakt.EndpointInfo) string {
	var parts []string
	for _, g := range []struct {
		role   string
		fields []trakt.FieldInfo
	}{
		{"path", info.Path},
		{"query", info.Query},
		{"body", info.Body},
	} {
		if len(g.fields) == 0 {
			continue
		}
		names := make([]string, len(g.fields))
		for i, f := range g.fields {
			names[i] = f.Name
		}
		parts = append(parts, g.role+":"+strings.Join(names, ","))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
