package iso8583

import "sync"

// Builder pool for reuse
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{
			errors: make([]error, 0, 4),
		}
	},
}

// Builder assembles a Message and collects the first error of any step.
type Builder struct {
	msg    *Message
	errors []error
}

func NewBuilder(dict FieldDictionary, opts ...MessageOption) *Builder {
	b := builderPool.Get().(*Builder)
	b.msg = NewMessage(dict, opts...)
	b.errors = b.errors[:0]
	return b
}

// Release returns the builder to the pool
func (b *Builder) Release() {
	b.msg = nil
	b.errors = b.errors[:0]
	builderPool.Put(b)
}

func (b *Builder) MTI(mti string) *Builder {
	if err := b.msg.SetMTI(mti); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

func (b *Builder) Field(fieldNum int, value string) *Builder {
	if err := b.msg.SetFieldString(fieldNum, value); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

func (b *Builder) BinaryField(fieldNum int, value []byte) *Builder {
	if err := b.msg.SetField(fieldNum, value); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

func (b *Builder) PAN(pan string) *Builder {
	return b.Field(2, pan)
}

func (b *Builder) ProcessingCode(code string) *Builder {
	return b.Field(3, code)
}

func (b *Builder) Amount(amount string) *Builder {
	return b.Field(4, amount)
}

func (b *Builder) STAN(stan string) *Builder {
	return b.Field(11, stan)
}

func (b *Builder) ResponseCode(code string) *Builder {
	return b.Field(39, code)
}

func (b *Builder) Build() (*Message, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	msg := b.msg
	b.msg = nil // Transfer ownership
	return msg, nil
}

func (b *Builder) MustBuild() *Message {
	if len(b.errors) > 0 {
		panic(b.errors[0])
	}
	msg := b.msg
	b.msg = nil // Transfer ownership
	return msg
}

// Pack builds the message and packs it in one step.
func (b *Builder) Pack() (string, error) {
	msg, err := b.Build()
	if err != nil {
		return "", err
	}
	return msg.Pack()
}
