package main

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/picklist-dev/picklist/internal/errors"
	"github.com/picklist-dev/picklist/pkg/render"
	"github.com/picklist-dev/picklist/showcase"
)

func renderCmd() *cobra.Command {
	var (
		route  string
		out    string
		pretty bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a showcase page to static HTML",
		Long: `Render one showcase page as a static snapshot.

The output carries the widget markup and inline styles but no live
bootstrap; checkboxes are inert.

Examples:
  picklist render
  picklist render --page=/palette --pretty
  picklist render --page=/tasks --out=tasks.html
  picklist render --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runRenderList()
			}
			return runRender(route, out, pretty)
		},
	}

	cmd.Flags().StringVarP(&route, "page", "p", "/", "Route of the page to render")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List available pages")

	return cmd
}

func runRenderList() error {
	pages := showcase.StaticPages()
	routes := make([]string, 0, len(pages))
	for route := range pages {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	for _, route := range routes {
		info("%-12s %s", route, pages[route].Title)
	}
	return nil
}

func runRender(route, out string, pretty bool) error {
	page, ok := showcase.StaticPages()[route]
	if !ok {
		return errors.New("E042").WithDetail("no page registered at %q", route)
	}

	renderer := render.New(render.Config{Pretty: pretty})

	if out == "" {
		if err := renderer.RenderPage(os.Stdout, page); err != nil {
			return errors.New("E020").WithDetail("page %q", route).Wrap(err)
		}
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.New("E080").WithDetail("cannot create %q", out).Wrap(err)
	}
	if err := renderer.RenderPage(f, page); err != nil {
		f.Close()
		return errors.New("E020").WithDetail("page %q", route).Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New("E080").WithDetail("cannot write %q", out).Wrap(err)
	}

	success("Rendered %s to %s", route, out)
	return nil
}
