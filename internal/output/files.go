package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ConsoleOutput prints every message to stdout prefixed with its topic.
type ConsoleOutput struct {
	// W defaults to os.Stdout.
	W io.Writer
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	w := c.W
	if w == nil {
		w = os.Stdout
	}
	if _, err := fmt.Fprintf(w, "[%s] %s\n", topic, string(msg)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// decodeEvent unmarshals msg and derives its time partition from the
// mandatory timestamp field. Numbers stay json.Number so they print verbatim.
func decodeEvent(msg []byte) (map[string]interface{}, string, error) {
	var event map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		return nil, "", err
	}
	raw, ok := event["timestamp"].(json.Number)
	if !ok {
		return nil, "", fmt.Errorf("invalid timestamp")
	}
	timestamp, err := raw.Int64()
	if err != nil {
		return nil, "", fmt.Errorf("invalid timestamp: %w", err)
	}
	return event, partitionPath(time.Unix(timestamp, 0).UTC()), nil
}

func partitionPath(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d", year, month, day, t.Hour())
}

// JSONOutput appends newline-delimited JSON to one file per topic and hour.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	event, partition, err := decodeEvent(msg)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(j.basePath, j.folder, topic, partition)
	fileKey := fmt.Sprintf("%s_%s", topic, partition)
	file, ok := j.files[fileKey]
	if !ok {
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		file, err = os.Create(filepath.Join(fullPath, "data.json"))
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := file.Write(append(jsonData, '\n')); err != nil {
		return err
	}
	return nil
}

func (j *JSONOutput) Close() error {
	var firstErr error
	for _, file := range j.files {
		if err := file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// CSVOutput writes one CSV file per topic and hour. The header is the sorted
// key set of the first event written to the file.
type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
	writers  map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
		writers:  make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	event, partition, err := decodeEvent(msg)
	if err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partition)
	csvWriter, ok := c.writers[fileKey]
	if !ok {
		fullPath := filepath.Join(c.basePath, c.folder, topic, partition)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(filepath.Join(fullPath, "data.csv"))
		if err != nil {
			return err
		}
		c.files[fileKey] = file
		csvWriter = csv.NewWriter(file)
		c.writers[fileKey] = csvWriter

		headers := sortedKeys(event)
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		c.headers[fileKey] = headers
	}

	row := make([]string, len(c.headers[fileKey]))
	for i, header := range c.headers[fileKey] {
		value, ok := event[header]
		if !ok || value == nil {
			row[i] = ""
			continue
		}
		row[i] = fmt.Sprintf("%v", value)
	}
	if err := csvWriter.Write(row); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func sortedKeys(event map[string]interface{}) []string {
	keys := make([]string, 0, len(event))
	for key := range event {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c *CSVOutput) Close() error {
	var firstErr error
	for key, csvWriter := range c.writers {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := c.files[key].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
