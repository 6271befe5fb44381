// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

var (
	// ErrPasswordMismatch is returned by Compare when the password does not
	// produce the stored hash.
	ErrPasswordMismatch = errors.New("password does not match hash")

	// ErrHasherStopped is returned once Stop has been called.
	ErrHasherStopped = errors.New("password hasher is stopped")
)

type hashJobKind int

const (
	jobHash hashJobKind = iota
	jobCompare
)

type hashResult struct {
	hash string
	err  error
}

type hashJob struct {
	kind     hashJobKind
	password string
	hash     string
	result   chan<- hashResult
}

// PasswordHasher runs bcrypt on a fixed pool of goroutines so CPU-bound
// hashing never occupies more than size cores. Callers block until their job
// is done or their context ends.
type PasswordHasher struct {
	jobs chan hashJob
	quit chan struct{}
	cost int
	size int

	wg       sync.WaitGroup
	runOnce  sync.Once
	stopOnce sync.Once

	logger *logger.Logger
}

// NewPasswordHasher creates a pool of size workers hashing with the given
// bcrypt cost. Nothing is processed until Run is called.
func NewPasswordHasher(size, cost int, log *logger.Logger) *PasswordHasher {
	if size < 1 {
		size = 1
	}

	return &PasswordHasher{
		jobs:   make(chan hashJob),
		quit:   make(chan struct{}),
		cost:   cost,
		size:   size,
		logger: log,
	}
}

// Run starts the workers. Calling it more than once has no effect.
func (h *PasswordHasher) Run() {
	h.runOnce.Do(func() {
		h.logger.Debug().Int("workers", h.size).Int("cost", h.cost).Msg("starting password hasher")
		for i := 0; i < h.size; i++ {
			h.wg.Add(1)
			go h.worker()
		}
	})
}

// Stop makes new calls fail with ErrHasherStopped and waits for running
// jobs to finish.
func (h *PasswordHasher) Stop() {
	h.stopOnce.Do(func() {
		close(h.quit)
		h.wg.Wait()
		h.logger.Debug().Msg("password hasher stopped")
	})
}

func (h *PasswordHasher) worker() {
	defer h.wg.Done()

	for {
		select {
		case <-h.quit:
			return
		case job := <-h.jobs:
			job.result <- h.process(job)
		}
	}
}

func (h *PasswordHasher) process(job hashJob) hashResult {
	switch job.kind {
	case jobCompare:
		err := bcrypt.CompareHashAndPassword([]byte(job.hash), []byte(job.password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			err = ErrPasswordMismatch
		}
		return hashResult{err: err}
	default:
		hash, err := bcrypt.GenerateFromPassword([]byte(job.password), h.cost)
		return hashResult{hash: string(hash), err: err}
	}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	res, err := h.submit(ctx, hashJob{kind: jobHash, password: password})
	if err != nil {
		return "", err
	}
	return res.hash, res.err
}

// Compare checks password against a bcrypt hash. A wrong password yields
// ErrPasswordMismatch.
func (h *PasswordHasher) Compare(ctx context.Context, hash, password string) error {
	res, err := h.submit(ctx, hashJob{kind: jobCompare, hash: hash, password: password})
	if err != nil {
		return err
	}
	return res.err
}

func (h *PasswordHasher) submit(ctx context.Context, job hashJob) (hashResult, error) {
	// buffered so a worker never blocks on a caller that gave up
	result := make(chan hashResult, 1)
	job.result = result

	select {
	case <-h.quit:
		return hashResult{}, ErrHasherStopped
	default:
	}

	select {
	case h.jobs <- job:
	case <-h.quit:
		return hashResult{}, ErrHasherStopped
	case <-ctx.Done():
		return hashResult{}, ctx.Err()
	}

	select {
	case res := <-result:
		return res, nil
	case <-ctx.Done():
		return hashResult{}, ctx.Err()
	}
}
