package render

import (
	"fmt"
	"io"
	"net/http"
)

// StreamingRenderer renders a page in flushed sections so the browser
// can start parsing the head while the body is still being produced.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreaming creates a streaming renderer over an http.ResponseWriter.
// Flushing is skipped silently when the writer does not support it.
func NewStreaming(w http.ResponseWriter, config Config) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: New(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document, flushing after the head
// and after the body content.
func (s *StreamingRenderer) RenderPage(page Page) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := s.w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := s.renderHead(s.w, page); err != nil {
		return err
	}
	s.flush()

	if _, err := s.w.Write([]byte("<body>\n")); err != nil {
		return err
	}
	if err := s.RenderToWriter(s.w, page.Body); err != nil {
		return err
	}
	s.flush()

	if err := s.renderClientBoot(s.w, page); err != nil {
		return err
	}
	if _, err := s.w.Write([]byte("</body>\n</html>\n")); err != nil {
		return err
	}
	s.flush()

	return nil
}

func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
