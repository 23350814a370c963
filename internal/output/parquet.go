package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/chrisdamba/foodroadtrip/internal/cloudwriter"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetOutput writes one parquet file per topic and hour, locally or
// through a cloud writer when a factory is set.
type ParquetOutput struct {
	basePath           string
	folder             string
	mu                 sync.Mutex
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetOutput(basePath, folder string, factory cloudwriter.CloudWriterFactory, bucket string) *ParquetOutput {
	return &ParquetOutput{
		basePath:           basePath,
		folder:             folder,
		writers:            make(map[string]*writer.ParquetWriter),
		files:              make(map[string]source.ParquetFile),
		cloudWriterFactory: factory,
		cloudBucketName:    bucket,
	}
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	typ, err := recordType(topic)
	if err != nil {
		return err
	}
	_, partition, err := decodeEvent(msg)
	if err != nil {
		return err
	}

	record := reflect.New(typ)
	if err := json.Unmarshal(msg, record.Interface()); err != nil {
		return fmt.Errorf("failed to decode %s event: %w", topic, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	writerKey := fmt.Sprintf("%s_%s", topic, partition)
	pw, ok := p.writers[writerKey]
	if !ok {
		pw, err = p.createNewWriter(writerKey, topic, partition, typ)
		if err != nil {
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}

	if err := pw.Write(record.Elem().Interface()); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *ParquetOutput) createNewWriter(writerKey, topic, partition string, typ reflect.Type) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	if p.cloudWriterFactory != nil {
		objectPath := cloudwriter.ObjectKey(p.basePath, p.folder, topic, partition, "data.parquet")
		cloudWriter, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = NewCloudParquetFile(cloudWriter)
	} else {
		fullPath := filepath.Join(p.basePath, p.folder, topic, partition)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return nil, err
		}
		var err error
		fw, err = local.NewLocalFileWriter(filepath.Join(fullPath, "data.parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewParquetWriter(fw, reflect.New(typ).Interface(), 4)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}

	p.writers[writerKey] = pw
	p.files[writerKey] = fw
	return pw, nil
}

// Close finalizes every parquet footer before closing the underlying file,
// which for cloud files triggers the upload.
func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for key, pw := range p.writers {
		if err := pw.WriteStop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to finalize %s: %w", key, err)
		}
		if err := p.files[key].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.writers = make(map[string]*writer.ParquetWriter)
	p.files = make(map[string]source.ParquetFile)
	return firstErr
}

// CloudParquetFile adapts a write-only CloudWriter to source.ParquetFile.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return nil, fmt.Errorf("open not supported for cloud storage")
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

// Seek only reports the write position; the writer never rewinds.
func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		c.offset = offset
	case 1:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	n, err = c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
