package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/picklist-dev/picklist/pkg/vdom"
)

// DefaultClientScript is the path the live client script is served from.
const DefaultClientScript = "/picklist/client.js"

// Page describes a complete HTML document around a rendered tree.
type Page struct {
	// Body is the root node of the page content.
	Body *vdom.VNode

	// Title is the document title.
	Title string

	// Lang is the html element's lang attribute. Defaults to "en".
	Lang string

	// Meta tags emitted in the head.
	Meta []Meta

	// StyleSheets lists hrefs of external stylesheets.
	StyleSheets []string

	// Styles holds inline CSS blocks.
	Styles []string

	// Scripts are additional script tags emitted in the head.
	Scripts []Script

	// LiveURL is the WebSocket endpoint announced to the client. When
	// empty the page is static and no client bootstrap is injected.
	LiveURL string

	// SessionID names the live session the client attaches to. Sessions
	// are created per page load; there is no resume.
	SessionID string

	// ClientScript overrides the client script path.
	ClientScript string
}

// Meta is a meta element in the document head.
type Meta struct {
	Name     string
	Content  string
	Property string
}

// Script is a script element in the document head.
type Script struct {
	Src    string
	Type   string
	Inline string
	Defer  bool
	Async  bool
	Module bool
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := w.Write([]byte("<body>\n")); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if err := r.renderClientBoot(w, page); err != nil {
		return err
	}

	_, err := w.Write([]byte("</body>\n</html>\n"))
	return err
}

func (r *Renderer) renderHead(w io.Writer, page Page) error {
	if _, err := w.Write([]byte("<head>\n")); err != nil {
		return err
	}

	if _, err := w.Write([]byte(`  <meta charset="utf-8">` + "\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := renderMeta(w, meta); err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	for _, script := range page.Scripts {
		if err := renderScript(w, script); err != nil {
			return err
		}
	}

	_, err := w.Write([]byte("</head>\n"))
	return err
}

func renderMeta(w io.Writer, meta Meta) error {
	if _, err := w.Write([]byte("  <meta")); err != nil {
		return err
	}
	if meta.Name != "" {
		if _, err := fmt.Fprintf(w, ` name="%s"`, escapeAttr(meta.Name)); err != nil {
			return err
		}
	}
	if meta.Property != "" {
		if _, err := fmt.Fprintf(w, ` property="%s"`, escapeAttr(meta.Property)); err != nil {
			return err
		}
	}
	if meta.Content != "" {
		if _, err := fmt.Fprintf(w, ` content="%s"`, escapeAttr(meta.Content)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(">\n"))
	return err
}

func renderScript(w io.Writer, script Script) error {
	if _, err := w.Write([]byte("  <script")); err != nil {
		return err
	}
	if script.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, escapeAttr(script.Src)); err != nil {
			return err
		}
	}
	if script.Module {
		if _, err := w.Write([]byte(` type="module"`)); err != nil {
			return err
		}
	} else if script.Type != "" {
		if _, err := fmt.Fprintf(w, ` type="%s"`, escapeAttr(script.Type)); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := w.Write([]byte(" defer")); err != nil {
			return err
		}
	}
	if script.Async {
		if _, err := w.Write([]byte(" async")); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(">")); err != nil {
		return err
	}
	if script.Inline != "" {
		if _, err := io.WriteString(w, script.Inline); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("</script>\n"))
	return err
}

// renderClientBoot injects the live client bootstrap: the endpoint and
// session the client connects back to, then the client script itself.
// JSON encoding keeps the values safe inside a script element.
func (r *Renderer) renderClientBoot(w io.Writer, page Page) error {
	if page.LiveURL == "" {
		return nil
	}

	boot, err := json.Marshal(struct {
		Live    string `json:"live"`
		Session string `json:"session,omitempty"`
	}{page.LiveURL, page.SessionID})
	if err != nil {
		return fmt.Errorf("marshal client boot: %w", err)
	}
	if _, err := fmt.Fprintf(w, "  <script>window.__PICKLIST__=%s;</script>\n", boot); err != nil {
		return err
	}

	path := page.ClientScript
	if path == "" {
		path = DefaultClientScript
	}
	_, err = fmt.Fprintf(w, `  <script src="%s" defer></script>`+"\n", escapeAttr(path))
	return err
}
