/*
Package brine implements an embeddable in-memory key-value and list store
with file-backed persistence and a choice of serialization formats.

We implement:

1. Scalar entries, mapping a string key to a single value of any
serializable type.

2. List entries, mapping a name to an ordered sequence of values, each of
which may be of a different type.

3. Pluggable serialization: JSON, MsgPack, YAML and CBOR, selected per
database; the store itself never interprets stored bytes.

4. Dump policies governing when in-memory changes reach the file: never,
after every change, only upon request, or periodically with a minimum
interval.

# Technical Details

**Namespace.**
Scalar keys and list names share one namespace: setting a key removes a
list of the same name and vice versa. At most one of the two maps holds
any given key.

**Values.**
Values are stored as opaque encoded byte sequences. Encoding happens at
write time using the database's format; decoding happens at read time,
driven by the type the caller asks for. Asking for the wrong type is not
an error, the result is simply absent. There are no type tags.

**Persistence.**
A dump encodes both maps as a single document and writes it to a sibling
temporary file, then renames the temporary file over the database path.
A crash before the rename leaves the previous file intact. Every mutating
operation that triggers an automatic dump rolls its in-memory change back
if the dump fails, so memory never silently diverges from the file.

**File format.**
The file contains whatever the active format's database encoding produces
and is not self-describing. Loading a file with a different format than
the one that wrote it fails with a serialization error. The text formats
(JSON, YAML) cannot embed raw bytes, so they carry each stored byte
sequence as a UTF-8 string inside the document; the binary formats embed
bytes directly.

**Concurrency.**
None. All operations run synchronously on the caller's goroutine, and a
DB must not be shared between goroutines without external locking. Two
DBs pointed at the same path can lose each other's updates; the atomic
rename only protects a single writer's output from corruption.
*/
package brine
