package fileinput

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jcorbin/godc/internal/runeio"
)

// Location names a line and column in an Input file; both count from 1,
// columns count runes.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col) }

// Input concatenates a Queue of one or more input streams into a single text,
// remembering where each stream starts so that offsets into the text can be
// mapped back to a Location.
//
// Streams are separated by a line feed if they do not already end with one, so
// that a trailing comment or token never runs into the next stream. Invalid
// UTF-8 is replaced with utf8.RuneError.
type Input struct {
	Queue []io.Reader

	text  strings.Builder
	files []file
}

type file struct {
	name  string
	start int
}

// ReadAll reads every queued stream, closing any that implement io.Closer,
// and returns the text read so far.
func (in *Input) ReadAll() (string, error) {
	for len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		if err := in.readOne(r); err != nil {
			return in.text.String(), err
		}
	}
	return in.text.String(), nil
}

func (in *Input) readOne(r io.Reader) (rerr error) {
	if cl, ok := r.(io.Closer); ok {
		defer func() {
			if cerr := cl.Close(); rerr == nil {
				rerr = cerr
			}
		}()
	}

	if n := in.text.Len(); n > 0 && !strings.HasSuffix(in.text.String(), "\n") {
		in.text.WriteByte('\n')
	}

	name := nameOf(r)
	in.files = append(in.files, file{name, in.text.Len()})
	rr := runeio.NewReader(r)
	for {
		ch, _, err := rr.ReadRune()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("read %v: %w", name, err)
		}
		in.text.WriteRune(ch)
	}
}

// Locate maps a byte offset into the text returned by ReadAll to a Location.
func (in *Input) Locate(offset int) Location {
	text := in.text.String()
	if offset > len(text) {
		offset = len(text)
	}

	i := sort.Search(len(in.files), func(i int) bool {
		return in.files[i].start > offset
	}) - 1
	if i < 0 {
		return Location{Name: "<unknown>", Line: 1, Col: offset + 1}
	}
	f := in.files[i]

	loc := Location{Name: f.name, Line: 1}
	lineStart := f.start
	for j := f.start; j < offset; j++ {
		if text[j] == '\n' {
			loc.Line++
			lineStart = j + 1
		}
	}
	loc.Col = utf8.RuneCountInString(text[lineStart:offset]) + 1
	return loc
}

// NamedReader attaches a name to r for use in Locations.
func NamedReader(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.ReadCloser); ok {
		return namedReadCloser{cl, name}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	io.ReadCloser
	name string
}

func (nr namedReader) Name() string     { return nr.name }
func (nr namedReadCloser) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
