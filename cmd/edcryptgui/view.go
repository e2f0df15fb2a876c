// Command edcryptgui is a minimal GTK front end over the edcrypt package,
// grounded in the teacher repository's MVC split: a WindowCtx holds the
// widgets, controller.go wires buttons to model calls, and this file
// builds the window itself.
package main

import (
	"fmt"

	"github.com/gotk3/gotk3/gtk"

	"github.com/dustin-ray/edcrypt"
)

// WindowCtx is the view's mutable state: the widgets the controller reads
// and writes, plus the keypair from the last "Generate Keypair" click (held
// in memory only; the GUI writes nothing to disk).
type WindowCtx struct {
	win      *gtk.Window
	fixed    *gtk.Fixed
	notePad  *gtk.TextView
	status   *gtk.Label
	buttons  *[]gtk.Button
	loadedKP *edcrypt.KeyPair
}

func (ctx *WindowCtx) updateStatus(msg string) {
	ctx.status.SetText(msg)
}

func newWindow() (*WindowCtx, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	win.SetTitle("edcrypt")
	win.SetDefaultSize(560, 600)
	win.Connect("destroy", func() { gtk.MainQuit() })

	fixed, err := gtk.FixedNew()
	if err != nil {
		return nil, fmt.Errorf("creating layout: %w", err)
	}
	win.Add(fixed)

	notePad, err := gtk.TextViewNew()
	if err != nil {
		return nil, fmt.Errorf("creating notepad: %w", err)
	}
	notePad.SetWrapMode(gtk.WRAP_WORD_CHAR)
	notePad.SetSizeRequest(480, 300)
	fixed.Put(notePad, 40, 280)

	status, err := gtk.LabelNew("ready")
	if err != nil {
		return nil, fmt.Errorf("creating status label: %w", err)
	}
	fixed.Put(status, 40, 600-35)

	ctx := &WindowCtx{win: win, fixed: fixed, notePad: notePad, status: status}
	createButtons(ctx)

	win.ShowAll()
	return ctx, nil
}

func (ctx *WindowCtx) text() string {
	buf, err := ctx.notePad.GetBuffer()
	if err != nil {
		return ""
	}
	start, end := buf.GetStartIter(), buf.GetEndIter()
	text, _ := buf.GetText(start, end, true)
	return text
}

func (ctx *WindowCtx) setText(s string) {
	buf, err := ctx.notePad.GetBuffer()
	if err != nil {
		return
	}
	buf.SetText(s)
}
