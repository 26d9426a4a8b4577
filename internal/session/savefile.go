package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/spacetraders/internal/log"
)

// DefaultSavePath is where the CLI keeps its session between runs.
const DefaultSavePath = "./spacetraders.save"

// SaveKind classifies a save file failure.
type SaveKind int

const (
	SaveIO        SaveKind = iota // reading or writing failed
	SaveMissing                   // the file does not exist
	SaveTruncated                 // fewer than two lines, or an empty token
	SaveCorrupt                   // line 2 is not a valid cache
)

func (k SaveKind) String() string {
	switch k {
	case SaveMissing:
		return "missing"
	case SaveTruncated:
		return "truncated"
	case SaveCorrupt:
		return "corrupt"
	default:
		return "io"
	}
}

// SaveFileError reports a save file that could not be read or written.
type SaveFileError struct {
	Path string
	Kind SaveKind
	Err  error
}

func (e *SaveFileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("save file %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("save file %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *SaveFileError) Unwrap() error {
	return e.Err
}

// SaveFile is the two-line session file: the bearer token on line 1 and
// the JSON encoded cache on line 2.
type SaveFile struct {
	Path string
}

// NewSaveFile returns a SaveFile at path, or at DefaultSavePath when path is empty.
func NewSaveFile(path string) SaveFile {
	if path == "" {
		path = DefaultSavePath
	}
	return SaveFile{Path: path}
}

// Load reads the token and cache back.
func (f SaveFile) Load() (string, *Cache, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, &SaveFileError{Path: f.Path, Kind: SaveMissing, Err: err}
		}
		return "", nil, &SaveFileError{Path: f.Path, Kind: SaveIO, Err: err}
	}

	token, rest, ok := bytes.Cut(data, []byte("\n"))
	line2 := bytes.TrimRight(rest, "\r\n")
	tokenStr := strings.TrimRight(string(token), "\r")
	if !ok || tokenStr == "" || len(bytes.TrimSpace(line2)) == 0 {
		return "", nil, &SaveFileError{Path: f.Path, Kind: SaveTruncated}
	}

	cache := &Cache{}
	if err := json.Unmarshal(line2, cache); err != nil {
		return "", nil, &SaveFileError{Path: f.Path, Kind: SaveCorrupt, Err: err}
	}

	log.Debug(log.CatSave, "loaded save file", "path", f.Path, "agent", cache.agent.Symbol, "ships", len(cache.ships))
	return tokenStr, cache, nil
}

// Store writes token and cache atomically (temp file, then rename).
func (f SaveFile) Store(token string, cache *Cache) error {
	if token == "" {
		return ErrTokenNotSet
	}
	if cache == nil {
		return ErrCacheEmpty
	}
	if strings.ContainsAny(token, "\r\n") {
		return &SaveFileError{Path: f.Path, Kind: SaveIO, Err: errors.New("token contains a line break")}
	}

	body, err := cache.MarshalJSON()
	if err != nil {
		return &SaveFileError{Path: f.Path, Kind: SaveIO, Err: fmt.Errorf("encoding cache: %w", err)}
	}

	var buf bytes.Buffer
	buf.WriteString(token)
	buf.WriteByte('\n')
	buf.Write(body)
	buf.WriteByte('\n')

	if err := writeAtomic(f.Path, buf.Bytes()); err != nil {
		return &SaveFileError{Path: f.Path, Kind: SaveIO, Err: err}
	}
	log.Debug(log.CatSave, "stored save file", "path", f.Path, "bytes", buf.Len())
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".spacetraders.save.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
