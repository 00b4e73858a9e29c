// Package stream processes newline-delimited message feeds, decoding and
// validating each line and emitting per-message results in input order.
package stream

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/document"
)

// Processor decodes a raw payload into a document and validates it.
// engine.Processor satisfies this interface.
type Processor interface {
	DecodeBytes(data []byte) (*document.Document, error)
	Validate(doc *document.Document) error
}

// MessageResult is the outcome for a single line of the feed.
type MessageResult struct {
	// Index is the zero-based position of the message in the feed.
	// Blank lines do not consume an index.
	Index int

	// Tag is the root element name of the decoded message (if decoding succeeded).
	Tag string

	// Identifier is the full message identifier, e.g. "pacs.010.001.06".
	Identifier string

	// Err is the decode or validation failure for this message, nil when valid.
	Err error
}

// FeedValidator validates newline-delimited message feeds.
type FeedValidator struct {
	processor   Processor
	bufferSize  int
	workerCount int
	maxLineSize int
}

// NewFeedValidator creates a feed validator with default buffering.
func NewFeedValidator(processor Processor) *FeedValidator {
	return &FeedValidator{
		processor:   processor,
		bufferSize:  100,
		workerCount: 4,
		maxLineSize: 1 << 20,
	}
}

// WithBufferSize sets the results channel buffer size.
func (v *FeedValidator) WithBufferSize(size int) *FeedValidator {
	if size > 0 {
		v.bufferSize = size
	}
	return v
}

// WithWorkerCount sets the number of parallel workers used by ValidateStreamParallel.
func (v *FeedValidator) WithWorkerCount(count int) *FeedValidator {
	if count > 0 {
		v.workerCount = count
	}
	return v
}

// WithMaxLineSize sets the largest accepted line in bytes.
func (v *FeedValidator) WithMaxLineSize(size int) *FeedValidator {
	if size > 0 {
		v.maxLineSize = size
	}
	return v
}

// ValidateStream reads messages from r one line at a time and emits a result
// per message. Results arrive in feed order.
func (v *FeedValidator) ValidateStream(ctx context.Context, r io.Reader) <-chan *MessageResult {
	results := make(chan *MessageResult, v.bufferSize)

	go func() {
		defer close(results)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), v.maxLineSize)

		index := 0
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				results <- &MessageResult{Index: index, Err: ctx.Err()}
				return
			default:
			}

			line := scanner.Bytes()
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}

			results <- v.processLine(line, index)
			index++
		}
		if err := scanner.Err(); err != nil {
			results <- &MessageResult{Index: -1, Err: fmt.Errorf("reading feed: %w", err)}
		}
	}()

	return results
}

// ValidateStreamParallel validates messages on workerCount goroutines while
// preserving feed order in the output.
func (v *FeedValidator) ValidateStreamParallel(ctx context.Context, r io.Reader) <-chan *MessageResult {
	results := make(chan *MessageResult, v.bufferSize)

	go func() {
		defer close(results)

		type workItem struct {
			index int
			line  []byte
		}

		workChan := make(chan workItem, v.bufferSize)
		resultChan := make(chan *MessageResult, v.bufferSize)

		var wg sync.WaitGroup
		for i := 0; i < v.workerCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for work := range workChan {
					select {
					case <-ctx.Done():
						return
					default:
					}
					resultChan <- v.processLine(work.line, work.index)
				}
			}()
		}

		total := 0
		go func() {
			scanner := bufio.NewScanner(r)
			scanner.Buffer(make([]byte, 0, 64*1024), v.maxLineSize)
			for scanner.Scan() {
				line := scanner.Bytes()
				if len(bytes.TrimSpace(line)) == 0 {
					continue
				}
				// Scanner reuses its buffer between lines.
				payload := make([]byte, len(line))
				copy(payload, line)
				select {
				case workChan <- workItem{index: total, line: payload}:
					total++
				case <-ctx.Done():
				}
			}
			close(workChan)
			wg.Wait()
			close(resultChan)
		}()

		pending := make(map[int]*MessageResult)
		nextIndex := 0
		for result := range resultChan {
			pending[result.Index] = result
			for {
				r, ok := pending[nextIndex]
				if !ok {
					break
				}
				results <- r
				delete(pending, nextIndex)
				nextIndex++
			}
		}
		for nextIndex < total {
			if r, ok := pending[nextIndex]; ok {
				results <- r
				delete(pending, nextIndex)
			}
			nextIndex++
		}
	}()

	return results
}

// processLine decodes and validates a single feed line.
func (v *FeedValidator) processLine(line []byte, index int) *MessageResult {
	result := &MessageResult{Index: index}

	doc, err := v.processor.DecodeBytes(line)
	if err != nil {
		result.Err = err
		return result
	}

	result.Tag = doc.Tag()
	result.Identifier = doc.Identifier()
	result.Err = v.processor.Validate(doc)
	return result
}

// FeedResult aggregates results from a streaming validation run.
type FeedResult struct {
	// TotalMessages is the number of messages processed.
	TotalMessages int

	// MalformedMessages counts messages that could not be decoded.
	MalformedMessages int

	// InvalidMessages counts messages that decoded but failed validation.
	InvalidMessages int

	// ProcessingErrors are feed-level errors (read failures, cancellation).
	ProcessingErrors []error

	// Failures maps message index to its decode or validation error.
	Failures map[int]error
}

// Aggregate drains a results channel into a FeedResult.
func Aggregate(results <-chan *MessageResult) *FeedResult {
	agg := &FeedResult{Failures: make(map[int]error)}

	for result := range results {
		if result.Index < 0 {
			agg.ProcessingErrors = append(agg.ProcessingErrors, result.Err)
			continue
		}

		agg.TotalMessages++
		if result.Err == nil {
			continue
		}

		agg.Failures[result.Index] = result.Err

		var de *iso20022.DecodeError
		var ve *iso20022.ValidationError
		switch {
		case errors.As(result.Err, &de):
			agg.MalformedMessages++
		case errors.As(result.Err, &ve):
			agg.InvalidMessages++
		default:
			agg.ProcessingErrors = append(agg.ProcessingErrors, result.Err)
		}
	}

	return agg
}

// HasFailures reports whether any message was rejected or the feed itself failed.
func (r *FeedResult) HasFailures() bool {
	return r.MalformedMessages > 0 || r.InvalidMessages > 0 || len(r.ProcessingErrors) > 0
}

// Summary returns a human-readable summary of the run.
func (r *FeedResult) Summary() string {
	return fmt.Sprintf(
		"Processed %d messages: %d malformed, %d invalid",
		r.TotalMessages,
		r.MalformedMessages,
		r.InvalidMessages,
	)
}
