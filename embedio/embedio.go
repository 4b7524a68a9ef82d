package embedio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/lvlgraph/skipgram"
)

// Sentinel errors for persistence.
var (
	// ErrNilEmbeddings is returned when Save/Write receives nil.
	ErrNilEmbeddings = errors.New("embedio: nil embeddings")

	// ErrBadID is returned for a vertex ID the text format cannot carry.
	ErrBadID = errors.New("embedio: vertex id contains whitespace")

	// ErrBadHeader is returned for a malformed "count dim" header.
	ErrBadHeader = errors.New("embedio: malformed header")

	// ErrBadRecord is returned for a malformed vector line.
	ErrBadRecord = errors.New("embedio: malformed record")
)

// gzSuffix switches Save/Load into compressed mode.
const gzSuffix = ".gz"

// Save writes the table to path in word2vec text format, gzipped when the
// path ends in ".gz". The file is created with 0o644.
func Save(path string, emb *skipgram.Embeddings) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("embedio: create %s: %w", path, err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, gzSuffix) {
		gz = gzip.NewWriter(f)
		w = gz
	}
	if err = Write(w, emb); err != nil {
		f.Close()
		return err
	}
	if gz != nil {
		if err = gz.Close(); err != nil {
			f.Close()
			return fmt.Errorf("embedio: flush gzip: %w", err)
		}
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("embedio: close %s: %w", path, err)
	}

	return nil
}

// Load reads a word2vec text table from path, gunzipping when the path
// ends in ".gz".
func Load(path string) (*skipgram.Embeddings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("embedio: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzSuffix) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("embedio: gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return Read(r)
}

// Write streams the table in word2vec text format. Floats are rendered
// with strconv 'g'/-1 so Read recovers them bit-exactly.
func Write(w io.Writer, emb *skipgram.Embeddings) error {
	if emb == nil {
		return ErrNilEmbeddings
	}
	for _, id := range emb.IDs() {
		if strings.ContainsAny(id, " \t\n\r") {
			return fmt.Errorf("%w: %q", ErrBadID, id)
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", emb.Len(), emb.Dim()); err != nil {
		return fmt.Errorf("embedio: write header: %w", err)
	}
	for i, id := range emb.IDs() {
		if _, err := bw.WriteString(id); err != nil {
			return fmt.Errorf("embedio: write record: %w", err)
		}
		for _, x := range emb.VectorAt(i) {
			if err := bw.WriteByte(' '); err != nil {
				return fmt.Errorf("embedio: write record: %w", err)
			}
			if _, err := bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64)); err != nil {
				return fmt.Errorf("embedio: write record: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("embedio: write record: %w", err)
		}
	}

	return bw.Flush()
}

// Read parses a word2vec text table. Malformed input reports the failing
// line: ErrBadHeader for line 1, ErrBadRecord (with the line number) for
// vector lines.
func Read(r io.Reader) (*skipgram.Embeddings, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	head := strings.Fields(sc.Text())
	if len(head) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, sc.Text())
	}
	count, err := strconv.Atoi(head[0])
	if err != nil || count < 1 {
		return nil, fmt.Errorf("%w: bad count %q", ErrBadHeader, head[0])
	}
	dim, err := strconv.Atoi(head[1])
	if err != nil || dim < 1 {
		return nil, fmt.Errorf("%w: bad dim %q", ErrBadHeader, head[1])
	}

	ids := make([]string, 0, count)
	vecs := make([][]float64, 0, count)
	for line := 2; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // tolerate a trailing blank line
		}
		if len(fields) != dim+1 {
			return nil, fmt.Errorf("%w: line %d: %d fields, want %d", ErrBadRecord, line, len(fields), dim+1)
		}
		vec := make([]float64, dim)
		for k, fv := range fields[1:] {
			if vec[k], err = strconv.ParseFloat(fv, 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not a float", ErrBadRecord, line, fv)
			}
		}
		ids = append(ids, fields[0])
		vecs = append(vecs, vec)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("embedio: read: %w", err)
	}
	if len(ids) != count {
		return nil, fmt.Errorf("%w: header promises %d records, got %d", ErrBadRecord, count, len(ids))
	}

	return skipgram.NewEmbeddings(ids, vecs)
}
