package iso8583

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorProcess(t *testing.T) {
	p := NewProcessor(DefaultProtocol())
	msg, err := p.Process(packed0200)
	require.NoError(t, err)
	assert.Equal(t, testPAN, msg.FieldString(2))

	_, err = p.Process("12a4")
	assert.ErrorIs(t, err, ErrUnpack)

	unpacked, unpackErrors, _, _ := p.Stats()
	assert.Equal(t, uint64(1), unpacked)
	assert.Equal(t, uint64(1), unpackErrors)
}

func TestProcessorBatchOrder(t *testing.T) {
	inputs := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		m := NewMessage(DefaultProtocol(), WithMTI("0200"))
		require.NoError(t, m.SetFieldString(11, fmt.Sprintf("%06d", i)))
		out, err := m.Pack()
		require.NoError(t, err)
		inputs = append(inputs, out)
	}

	p := NewProcessor(DefaultProtocol(), WithConcurrency(8))
	msgs, err := p.ProcessBatch(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, msgs, 50)
	for i, m := range msgs {
		assert.Equal(t, fmt.Sprintf("%06d", i), m.FieldString(11))
	}
}

func TestProcessorBatchErrors(t *testing.T) {
	var mu sync.Mutex
	var handled []error
	p := NewProcessor(DefaultProtocol(), WithErrorHandler(func(err error) {
		mu.Lock()
		handled = append(handled, err)
		mu.Unlock()
	}))

	msgs, err := p.ProcessBatch(context.Background(), []string{packed0200, "zz", packed0200, "12"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnpack)
	require.Len(t, msgs, 4)
	assert.NotNil(t, msgs[0])
	assert.Nil(t, msgs[1])
	assert.NotNil(t, msgs[2])
	assert.Nil(t, msgs[3])
	assert.Len(t, handled, 2)
}

func TestProcessorBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProcessor(DefaultProtocol())
	msgs, err := p.ProcessBatch(ctx, []string{packed0200})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, msgs)
}

func TestProcessorPackBatch(t *testing.T) {
	p := NewProcessor(DefaultProtocol(), WithMessageOptions(WithLengthPrefix(2)))
	good := p.NewMessage()
	require.NoError(t, good.SetMTI("0200"))
	require.NoError(t, good.SetFieldString(3, "000000"))
	bad := p.NewMessage()

	out, err := p.PackBatch(context.Background(), []*Message{good, bad})
	assert.ErrorIs(t, err, ErrPack)
	require.Len(t, out, 2)
	assert.Equal(t, hexOf("18")+hexOf("0200")+"2000000000000000"+hexOf("000000"), out[0])
	assert.Empty(t, out[1])

	_, _, packed, packErrors := p.Stats()
	assert.Equal(t, uint64(1), packed)
	assert.Equal(t, uint64(1), packErrors)
}

func TestProcessorStream(t *testing.T) {
	p := NewProcessor(DefaultProtocol(), WithConcurrency(2), WithErrorHandler(func(error) {}))
	input := make(chan string)
	output := make(chan *Message, 4)

	go func() {
		for _, s := range []string{packed0200, "bad", packed0200} {
			input <- s
		}
		close(input)
	}()

	require.NoError(t, p.ProcessStream(context.Background(), input, output))
	close(output)

	n := 0
	for m := range output {
		assert.Equal(t, "0200", m.MTI())
		n++
	}
	assert.Equal(t, 2, n)
}

func TestProcessorMetrics(t *testing.T) {
	set := metrics.NewSet()
	p := NewProcessor(DefaultProtocol(), WithMetricsSet(set))
	_, _ = p.Process(packed0200)
	_, _ = p.Process("00")

	var buf bytes.Buffer
	p.WriteMetrics(&buf)
	assert.Contains(t, buf.String(), "iso8583_unpacked_total 1")
	assert.Contains(t, buf.String(), "iso8583_unpack_errors_total 1")
}
