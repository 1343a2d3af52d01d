// Package gogroup provides API to manage goroutines.
package gogroup

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
)

/* Two problems with bare goroutines this package helps solve:
 *
 *   1) When a goroutine panic()s and it is not caught, the entire
 *   application dies.
 *
 *   2) A group of cooperating goroutines should stop together: when
 *   one of them fails, the others must be told to release their
 *   resources instead of stalling forever.
 *
 * A GoGroup is a group of managed goroutines sharing one cancelable
 * context. Panics inside managed routines are caught, converted to
 * errors and recorded; any failure cancels the whole group.
 */
type GoGroup interface {
	context.Context

	// Cancel this group. Try to get all the children to exit
	Cancel(error)

	// Has this group been canceled?
	Canceled() bool

	// Launch a function in a new goroutine, but protected from panic()s
	// crashing everything. If it panic()s or returns an error, cancel
	// this group, causing it to exit. If it exits normally, do nothing.
	Go(func() error)

	// Wait for all group threads to exit. Return all errors they threw
	Wait() []error

	// Create a group which is a child context. Errors/panic()s in this
	// child do not affect the parent.
	Child(string) GoGroup

	Name() string
}

// An error converted from a recover()ed panic()
type PanicError struct {
	Msg   interface{}
	Stack string
}

func (pe PanicError) Error() string {
	if s, ok := pe.Msg.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", pe.Msg)
}

// Create a new group. Both arguments optional
func New(ctxt context.Context, name string) GoGroup {
	if ctxt == nil {
		ctxt = context.Background()
	}
	nctxt, cancel := context.WithCancel(ctxt)

	return &group{
		Context: nctxt,
		name:    name,
		cancel:  cancel,
	}
}

// Default implementation of a GoGroup
type group struct {
	context.Context
	sync.Mutex

	name   string
	cancel context.CancelFunc

	wg     sync.WaitGroup
	errors []error
}

// Cancel this group. Try to get all the children to exit
func (g *group) Cancel(err error) {
	if err != nil {
		g.record(err)
	}
	g.cancel()
}

// Has this group been canceled?
func (g *group) Canceled() bool {
	select {
	case <-g.Done():
		return true
	default:
		return false
	}
}

func (g *group) Go(f func() error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.record(PanicError{
					Msg:   r,
					Stack: string(debug.Stack()),
				})
				g.cancel()
			}
		}()
		if err := f(); err != nil {
			g.record(err)
			g.cancel()
		}
	}()
}

func (g *group) record(err error) {
	g.Lock()
	g.errors = append(g.errors, err)
	g.Unlock()
}

// Wait for all group threads to exit. Return all errors they threw
func (g *group) Wait() []error {
	g.wg.Wait()
	g.Lock()
	defer g.Unlock()
	return g.errors
}

func (g *group) Child(name string) GoGroup {
	if g.name != "" {
		name = g.name + "/" + name
	}
	return New(g, name)
}

func (g *group) Name() string {
	return g.name
}
