// Package cloudwriter buffers exported files and uploads them to object storage.
package cloudwriter

import (
	"bytes"
	"path"
	"strings"
)

// CloudWriter collects an object's bytes; Close uploads them.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// ObjectKey joins key parts with forward slashes regardless of OS.
func ObjectKey(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			kept = append(kept, p)
		}
	}
	return path.Join(kept...)
}

// MemoryWriterFactory keeps uploaded objects in memory, keyed by
// "bucket/objectPath". It backs dry runs and tests.
type MemoryWriterFactory struct {
	Objects map[string][]byte
}

func NewMemoryWriterFactory() *MemoryWriterFactory {
	return &MemoryWriterFactory{Objects: make(map[string][]byte)}
}

func (f *MemoryWriterFactory) NewWriter(bucket, objectPath string) (CloudWriter, error) {
	return &memoryWriter{factory: f, key: ObjectKey(bucket, objectPath)}, nil
}

type memoryWriter struct {
	factory *MemoryWriterFactory
	key     string
	buffer  bytes.Buffer
}

func (w *memoryWriter) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

func (w *memoryWriter) Close() error {
	w.factory.Objects[w.key] = append([]byte(nil), w.buffer.Bytes()...)
	return nil
}
