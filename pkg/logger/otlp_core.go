package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// OTLPCore is a zapcore.Core that batches log records and ships them to an
// OTel Collector over OTLP/HTTP JSON.
type OTLPCore struct {
	zapcore.LevelEnabler
	endpoint      string
	serviceName   string
	client        *http.Client
	bufferMu      sync.Mutex
	buffer        []logRecord
	batchSize     int
	batchInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

type logRecord struct {
	Timestamp      int64      `json:"timeUnixNano"`
	SeverityNumber int32      `json:"severityNumber"`
	SeverityText   string     `json:"severityText"`
	Body           any        `json:"body"`
	Attributes     []keyValue `json:"attributes,omitempty"`
}

type keyValue struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type otlpPayload struct {
	ResourceLogs []resourceLogs `json:"resourceLogs"`
}

type resourceLogs struct {
	Resource  otlpResource `json:"resource"`
	ScopeLogs []scopeLogs  `json:"scopeLogs"`
}

type otlpResource struct {
	Attributes []keyValue `json:"attributes"`
}

type scopeLogs struct {
	Scope      otlpScope   `json:"scope"`
	LogRecords []logRecord `json:"logRecords"`
}

type otlpScope struct {
	Name string `json:"name"`
}

// NewOTLPCore creates an OTLP core from the logger config. Returns nil when
// the endpoint is not usable; callers treat that as "OTLP disabled".
func NewOTLPCore(cfg *Config, level zapcore.LevelEnabler) *OTLPCore {
	if cfg == nil || cfg.OTLPEndpoint == "" {
		return nil
	}

	// The collector serves OTLP/HTTP on 4318 next to gRPC on 4317.
	endpoint := fmt.Sprintf("http://%s/v1/logs", strings.Replace(cfg.OTLPEndpoint, ":4317", ":4318", 1))

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	batchInterval := cfg.BatchInterval
	if batchInterval <= 0 {
		batchInterval = time.Second
	}
	timeout := cfg.OTLPTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	core := &OTLPCore{
		LevelEnabler:  level,
		endpoint:      endpoint,
		serviceName:   cfg.ServiceName,
		client:        &http.Client{Timeout: timeout},
		buffer:        make([]logRecord, 0, batchSize),
		batchSize:     batchSize,
		batchInterval: batchInterval,
		stopChan:      make(chan struct{}),
	}

	core.wg.Add(1)
	go core.flushLoop()

	return core
}

// With implements zapcore.Core
func (c *OTLPCore) With(fields []zapcore.Field) zapcore.Core {
	return c
}

// Check implements zapcore.Core
func (c *OTLPCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

// Write buffers a log entry for the next batch export
func (c *OTLPCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	attrs := make([]keyValue, 0, len(enc.Fields))
	for k, v := range enc.Fields {
		attrs = append(attrs, keyValue{Key: k, Value: v})
	}

	rec := logRecord{
		Timestamp:      entry.Time.UnixNano(),
		SeverityNumber: severityNumber(entry.Level),
		SeverityText:   entry.Level.CapitalString(),
		Body:           entry.Message,
		Attributes:     attrs,
	}

	c.bufferMu.Lock()
	c.buffer = append(c.buffer, rec)
	full := len(c.buffer) >= c.batchSize
	c.bufferMu.Unlock()

	if full {
		c.flush()
	}
	return nil
}

// Sync flushes buffered entries
func (c *OTLPCore) Sync() error {
	c.flush()
	return nil
}

// Close stops the background flush loop
func (c *OTLPCore) Close() {
	close(c.stopChan)
	c.wg.Wait()
	c.flush()
}

func (c *OTLPCore) flushLoop() {
	defer c.wg.Done()
	ticker := time.NewTicker(c.batchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.flush()
		case <-c.stopChan:
			return
		}
	}
}

func (c *OTLPCore) flush() {
	c.bufferMu.Lock()
	if len(c.buffer) == 0 {
		c.bufferMu.Unlock()
		return
	}
	batch := c.buffer
	c.buffer = make([]logRecord, 0, c.batchSize)
	c.bufferMu.Unlock()

	payload := otlpPayload{
		ResourceLogs: []resourceLogs{{
			Resource: otlpResource{
				Attributes: []keyValue{{Key: "service.name", Value: c.serviceName}},
			},
			ScopeLogs: []scopeLogs{{
				Scope:      otlpScope{Name: "tikd-api/logger"},
				LogRecords: batch,
			}},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	// Log export is best-effort: never let collector trouble break the app.
	resp, err := c.client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}

func severityNumber(level zapcore.Level) int32 {
	switch level {
	case zapcore.DebugLevel:
		return 5
	case zapcore.InfoLevel:
		return 9
	case zapcore.WarnLevel:
		return 13
	case zapcore.ErrorLevel:
		return 17
	default:
		return 21
	}
}
