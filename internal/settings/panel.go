// Package settings runs the settings panel: a loop, separate from the frame
// loop, that asks the user for new tunables and posts them to a config.Feed.
package settings

import (
	"context"
	"log"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/photon-bounce/internal/config"
)

const title = "Settings"

// Dialogs are the native dialogs the panel uses. Tests replace them.
type Dialogs struct {
	Entry func(text string, options ...zenity.Option) (string, error)
	Error func(text string, options ...zenity.Option) error
}

func NativeDialogs() Dialogs {
	return Dialogs{Entry: zenity.Entry, Error: zenity.Error}
}

// Panel is the only writer of tunables. It keeps its own copy of what it last posted.
type Panel struct {
	feed     *config.Feed
	dialogs  Dialogs
	current  config.Tunables
	requests chan struct{}
}

func New(feed *config.Feed, initial config.Tunables, dialogs Dialogs) *Panel {
	return &Panel{
		feed:     feed,
		dialogs:  dialogs,
		current:  initial,
		requests: make(chan struct{}, 1),
	}
}

// Open asks the panel to show itself. It never blocks; a request made while
// the panel is already open or pending is dropped.
func (p *Panel) Open() {
	select {
	case p.requests <- struct{}{}:
	default:
	}
}

// Run serves Open requests until ctx is done.
func (p *Panel) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.requests:
			if err := p.edit(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("settings: %v", err)
			}
		}
	}
}

// edit asks for every tunable in turn. Values that fail to parse keep their
// previous value and are reported in one error dialog. Canceling any prompt
// discards the whole edit.
func (p *Panel) edit(ctx context.Context) error {
	next := p.current
	var rejected []string
	for _, f := range config.Fields {
		text, err := p.dialogs.Entry(f.String(),
			zenity.Title(title),
			zenity.EntryText(next.Get(f)),
			zenity.Context(ctx),
		)
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "entry dialog")
		}
		if err := next.Set(f, text); err != nil {
			rejected = append(rejected, err.Error())
		}
	}

	if next != p.current {
		if err := p.feed.Post(ctx, next); err != nil {
			return err
		}
		log.Printf("settings: applied %+v", next)
		p.current = next
	}

	if len(rejected) > 0 {
		msg := "Kept previous values:\n" + strings.Join(rejected, "\n")
		if err := p.dialogs.Error(msg, zenity.Title(title), zenity.Context(ctx)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			return errors.Wrap(err, "error dialog")
		}
	}
	return nil
}
