// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// The level defaults to the lowest level, trce.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetWriter sets the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext adds the context for the logger as a key value pair.
// Pairs are logged in the order they were added. If a key already
// exists, the value is added to the existing values of the key.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		newKV := contextKeyValues{key: key, values: []string{value}}
		s.context = append(s.context, newKV)
	}
}

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	context []contextKeyValues
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		level := *other.level
		s.level = &level
	}

	// the parent context comes first, in order.
	context := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kvs := range other.context {
		values := make([]string, len(kvs.values))
		copy(values, kvs.values)
		context = append(context, contextKeyValues{key: kvs.key, values: values})
	}

	for _, kvs := range s.context {
		merged := false
		for i := range context {
			if context[i].key == kvs.key {
				context[i].values = append(context[i].values, kvs.values...)
				merged = true
				break
			}
		}
		if !merged {
			context = append(context, kvs)
		}
	}

	s.context = context
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = defaultWriter
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}
}
