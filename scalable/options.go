package scalable

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

const serviceName = "fastbloom"

type options struct {
	log           logger.Logger
	maxLayerBytes uint64
	id            uuid.UUID
}

type Option func(*options)

// WithLogger sets the logger used for growth, clear and merge events. By
// default the filter logs through logger.Sugar, if it has been initialized.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMaxLayerBytes caps the bitset size of any single layer. A layer that
// would need more fails to allocate with bloom.ErrAllocation. Zero, the
// default, means no cap.
func WithMaxLayerBytes(n uint64) Option {
	return func(o *options) {
		o.maxLayerBytes = n
	}
}

// WithID sets the identity reported in log lines. A random id is generated
// otherwise.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	if o.log == nil && logger.Sugar != nil {
		o.log = logger.Sugar.WithServiceName(serviceName)
	}
	return o
}
