package record

import (
	"encoding/json"
	"io"
)

// Writer persists a game transcript.
// Implementations differ only in format.
type Writer interface {
	// WriteRecord writes a single transcript to the output.
	WriteRecord(rec *Record) error
}

// TextWriter writes transcripts as a numbered move log.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a move-log writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteRecord writes the transcript's move log.
func (tw *TextWriter) WriteRecord(rec *Record) error {
	_, err := io.WriteString(tw.w, rec.MoveLog())
	return err
}

// JSONWriter writes transcripts as indented JSON documents.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON transcript writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteRecord encodes the transcript as one JSON document.
func (jw *JSONWriter) WriteRecord(rec *Record) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
