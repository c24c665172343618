package iso8583

import (
	"context"
	"io"
	"log/slog"

	"github.com/VictoriaMetrics/metrics"
	"golang.org/x/sync/errgroup"
)

// Processor packs and unpacks independent messages in parallel. Each job
// works on its own Message; only the dictionary and codec registry are
// shared, and both are read-only.
type Processor struct {
	dict         FieldDictionary
	msgOpts      []MessageOption
	concurrency  int
	errorHandler func(error)
	logger       *slog.Logger

	metrics      *metrics.Set
	unpacked     *metrics.Counter
	unpackErrors *metrics.Counter
	packed       *metrics.Counter
	packErrors   *metrics.Counter
}

// ProcessorOption defines a function signature for configuring a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency sets the maximum number of concurrent goroutines for the processor.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithMessageOptions sets the options every processed Message is created with.
func WithMessageOptions(opts ...MessageOption) ProcessorOption {
	return func(p *Processor) {
		p.msgOpts = append(p.msgOpts, opts...)
	}
}

// WithErrorHandler sets a custom error handler for errors encountered during
// batch or stream processing.
func WithErrorHandler(handler func(error)) ProcessorOption {
	return func(p *Processor) {
		p.errorHandler = handler
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetricsSet registers the processor counters in set instead of a
// private one.
func WithMetricsSet(set *metrics.Set) ProcessorOption {
	return func(p *Processor) {
		if set != nil {
			p.metrics = set
		}
	}
}

// NewProcessor creates a new Processor with the given dictionary and options.
func NewProcessor(dict FieldDictionary, opts ...ProcessorOption) *Processor {
	p := &Processor{
		dict:        dict,
		concurrency: 4,
		logger:      slog.Default(),
		metrics:     metrics.NewSet(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.errorHandler == nil {
		p.errorHandler = func(err error) {
			p.logger.Warn("processor error", "error", err)
		}
	}

	p.unpacked = p.metrics.GetOrCreateCounter("iso8583_unpacked_total")
	p.unpackErrors = p.metrics.GetOrCreateCounter("iso8583_unpack_errors_total")
	p.packed = p.metrics.GetOrCreateCounter("iso8583_packed_total")
	p.packErrors = p.metrics.GetOrCreateCounter("iso8583_pack_errors_total")
	return p
}

// NewMessage returns an empty message configured like the processed ones.
func (p *Processor) NewMessage() *Message {
	return NewMessage(p.dict, p.msgOpts...)
}

// Process unpacks a single hex message.
func (p *Processor) Process(data string) (*Message, error) {
	msg := p.NewMessage()
	if err := msg.Unpack(data); err != nil {
		p.unpackErrors.Inc()
		return nil, err
	}
	p.unpacked.Inc()
	return msg, nil
}

// ProcessBatch unpacks messages concurrently. Results keep the input order;
// failed entries are nil and the first error by index is returned. No new
// job starts once ctx is done.
func (p *Processor) ProcessBatch(ctx context.Context, data []string) ([]*Message, error) {
	results := make([]*Message, len(data))
	errs := make([]error, len(data))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, d := range data {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			msg, err := p.Process(d)
			if err != nil {
				errs[i] = err
				p.errorHandler(err)
				return nil
			}
			results[i] = msg
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// PackBatch packs messages concurrently, keeping the input order.
func (p *Processor) PackBatch(ctx context.Context, msgs []*Message) ([]string, error) {
	results := make([]string, len(msgs))
	errs := make([]error, len(msgs))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, m := range msgs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			out, err := m.Pack()
			if err != nil {
				p.packErrors.Inc()
				errs[i] = err
				p.errorHandler(err)
				return nil
			}
			p.packed.Inc()
			results[i] = out
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ProcessStream unpacks messages from input and sends them to output until
// input is closed or ctx is done. Failed messages go to the error handler.
func (p *Processor) ProcessStream(ctx context.Context, input <-chan string, output chan<- *Message) error {
	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for {
		select {
		case <-ctx.Done():
			_ = g.Wait()
			return ctx.Err()

		case data, ok := <-input:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				msg, err := p.Process(data)
				if err != nil {
					p.errorHandler(err)
					return nil
				}
				select {
				case output <- msg:
				case <-ctx.Done():
				}
				return nil
			})
		}
	}
}

// WriteMetrics writes the processor counters in Prometheus text format.
func (p *Processor) WriteMetrics(w io.Writer) {
	p.metrics.WritePrometheus(w)
}

// Stats returns the counter values: unpacked, unpack errors, packed, pack errors.
func (p *Processor) Stats() (unpacked, unpackErrors, packed, packErrors uint64) {
	return p.unpacked.Get(), p.unpackErrors.Get(), p.packed.Get(), p.packErrors.Get()
}
