package brine

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// DB is an in-memory key-value and list store backed by a single file.
// Not safe for concurrent use.
type DB struct {
	values map[string][]byte
	lists  map[string][][]byte

	path     string
	format   Format
	policy   DumpPolicy
	lastDump time.Time

	logger  *slog.Logger
	verbose bool
	closed  bool
}

type Options struct {
	Format     Format
	DumpPolicy DumpPolicy

	Logger  *slog.Logger
	Verbose bool
}

// New constructs an empty DB that will persist to path. Nothing is
// written until the first dump.
func New(path string, opt Options) *DB {
	return &DB{
		values:   make(map[string][]byte),
		lists:    make(map[string][][]byte),
		path:     path,
		format:   opt.Format,
		policy:   opt.DumpPolicy,
		lastDump: time.Now(),
		logger:   defaultLogger(opt.Logger),
		verbose:  opt.Verbose,
	}
}

// Load reads and decodes a previously dumped database. A file that
// cannot be read yields an IOError; bytes that are not a database in
// opt.Format yield a SerializationError.
func Load(path string, opt Options) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErrf(err, "reading %s", path)
	}
	values, lists, err := opt.Format.DecodeDatabase(data)
	if err != nil {
		return nil, serErrf(err, "loading %s", path)
	}
	if values == nil {
		values = make(map[string][]byte)
	}
	if lists == nil {
		lists = make(map[string][][]byte)
	}
	db := &DB{
		values:   values,
		lists:    lists,
		path:     path,
		format:   opt.Format,
		policy:   opt.DumpPolicy,
		lastDump: time.Now(),
		logger:   defaultLogger(opt.Logger),
		verbose:  opt.Verbose,
	}
	if db.verbose {
		db.logger.Debug("brine: loaded database", "path", path, "bytes", len(data), "keys", db.TotalKeys())
	}
	return db, nil
}

// LoadReadOnly is Load with the NeverDump policy.
func LoadReadOnly(path string, format Format) (*DB, error) {
	return Load(path, Options{Format: format, DumpPolicy: NeverDump})
}

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func (db *DB) Path() string       { return db.path }
func (db *DB) Format() Format     { return db.format }
func (db *DB) Policy() DumpPolicy { return db.policy }

// Dump writes the current state to the file, replacing it atomically:
// the document is written to a sibling temporary file which is then
// renamed over the path. Under NeverDump it succeeds without writing.
func (db *DB) Dump() error {
	if db.policy.kind == dumpNever {
		return nil
	}

	data, err := db.format.EncodeDatabase(db.values, db.lists)
	if err != nil {
		return serErrf(err, "encoding database")
	}

	tempPath := fmt.Sprintf("%s.temp.%d", db.path, time.Now().Unix())
	if err := os.WriteFile(tempPath, data, 0666); err != nil {
		return ioErrf(err, "writing %s", tempPath)
	}
	if err := os.Rename(tempPath, db.path); err != nil {
		return ioErrf(err, "replacing %s", db.path)
	}

	if db.policy.kind == dumpPeriodic {
		db.lastDump = time.Now()
	}
	if db.verbose {
		db.logger.Debug("brine: dumped database", "path", db.path, "bytes", len(data))
	}
	return nil
}

// autoDump is invoked by every mutator. Mutators roll their in-memory
// change back if it fails.
func (db *DB) autoDump() error {
	switch db.policy.kind {
	case dumpAuto:
		return db.Dump()
	case dumpPeriodic:
		if time.Since(db.lastDump) > db.policy.interval {
			return db.Dump()
		}
	}
	return nil
}

// Close releases the DB, dumping one final time unless the policy is
// NeverDump or DumpUponRequest. It is idempotent; the DB must not be
// used afterwards. Go has no destructors, so callers relying on an
// automatic final dump must call Close (or Dump) themselves.
func (db *DB) Close() error {
	if db.closed {
		return nil
	}
	db.closed = true
	if db.policy.kind == dumpNever || db.policy.kind == dumpUponRequest {
		return nil
	}
	return db.Dump()
}
