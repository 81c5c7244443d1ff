// Package storage is the durable key-value cache behind the composer.
package storage

import (
	"context"
	"errors"
)

// Keys used by the composer.
const (
	KeyTags   = "tagcomposer.tags"
	KeyEditor = "tagcomposer.editor"
)

// ErrUnavailable means no durable storage could be reached.
var ErrUnavailable = errors.New("storage unavailable")

// Store gets and sets string values by key. Get reports found=false for an
// absent key. Writes are last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Unavailable is the store used when no backend could be opened. Every call
// fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrUnavailable
}

func (Unavailable) Set(context.Context, string, string) error { return ErrUnavailable }

func (Unavailable) Close() error { return nil }
